package parser

import (
	"testing"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/riverfjs/slackify-go/internal/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"heading and paragraph", "# Title\n\nbody", []string{types.BlockTypeHeader, types.BlockTypeSection}},
		{"table", "| a |\n|---|\n| 1 |", []string{types.BlockTypeTable}},
		{"wrapped list", "**1. item**", []string{types.BlockTypeRichText}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Parse(tt.input, nil)
			if len(blocks) != len(tt.want) {
				t.Fatalf("Parse(%q) = %d blocks, want %d", tt.input, len(blocks), len(tt.want))
			}
			for i, block := range blocks {
				if block.BlockType() != tt.want[i] {
					t.Errorf("Parse(%q)[%d] = %q, want %q", tt.input, i, block.BlockType(), tt.want[i])
				}
			}
		})
	}
}

// TestParseAST 测试 GFM 扩展已启用，且预处理已生效
func TestParseAST(t *testing.T) {
	doc, source := ParseAST("**1. item**\n\n~~gone~~\n\n| a |\n|---|\n| 1 |")
	if string(source) == "**1. item**\n\n~~gone~~\n\n| a |\n|---|\n| 1 |" {
		t.Error("ParseAST() source was not preprocessed")
	}

	kinds := map[ast.NodeKind]bool{}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			kinds[n.Kind()] = true
		}
		return ast.WalkContinue, nil
	})
	for _, kind := range []ast.NodeKind{ast.KindList, east.KindStrikethrough, east.KindTable} {
		if !kinds[kind] {
			t.Errorf("ParseAST() has no %s node", kind)
		}
	}
}
