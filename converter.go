package slackify

import (
	"github.com/riverfjs/slackify-go/internal/parser"
)

// MarkdownToBlocks 将 Markdown 转换为 Slack Block Kit blocks
//
// 参数:
//   - markdown: 原始 Markdown 文本
//   - opts: 转换选项（mentions、颜色识别、section 模式）
//
// 返回:
//   - []Block: 按文档顺序排列的 blocks
//   - error: mention 表中存在格式错误的 ID 时返回 *IDError
func MarkdownToBlocks(markdown string, opts ...Option) ([]Block, error) {
	options := applyOptions(opts...)
	if err := ValidateOptions(options); err != nil {
		return nil, err
	}

	blocks := parser.Parse(markdown, options.renderConfig())
	Logger.Debug().
		Int("input_bytes", len(markdown)).
		Int("blocks", len(blocks)).
		Msg("converted markdown")
	return blocks, nil
}
