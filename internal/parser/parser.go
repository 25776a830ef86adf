package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/slackify-go/internal/converter"
	"github.com/riverfjs/slackify-go/internal/types"
)

// StandardOptions goldmark 扩展配置：GFM（表格、删除线、自动链接、任务列表）
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,
	),
}

// Parse 预处理并解析 Markdown，再映射为 Block Kit blocks
func Parse(markdown string, config *converter.RenderConfig) []types.Block {
	if config == nil {
		config = converter.DefaultRenderConfig()
	}
	source := []byte(converter.PreprocessWrappedLists(markdown))
	doc := parse(source)
	return converter.NewConverter(source, config).Convert(doc)
}

// ParseAST 仅解析为 AST，不做映射。返回的 source 是节点 Segment 所引用的文本
func ParseAST(markdown string) (ast.Node, []byte) {
	source := []byte(converter.PreprocessWrappedLists(markdown))
	return parse(source), source
}

func parse(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader(source))
}
