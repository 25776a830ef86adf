package slackify

import (
	"fmt"
	"strings"
	"testing"
)

// TestSmallCodeBlocksNotSplit 测试小代码块不拆分消息
func TestSmallCodeBlocksNotSplit(t *testing.T) {
	markdown := "完成！配置文件已就绪。\n\n```json\n{\n  \"channel\": \"slack\",\n  \"chat_id\": \"C123\"\n}\n```\n\n下一步见下文。"
	batches, err := Slackify(markdown, SplitOptions{})
	if err != nil {
		t.Fatalf("Slackify() error = %v", err)
	}
	if len(batches) != 1 {
		t.Fatalf("Slackify() = %d batches, want 1", len(batches))
	}
	if !strings.Contains(batches[0].Text, `"chat_id": "C123"`) {
		t.Errorf("Slackify() text = %q, want the code verbatim", batches[0].Text)
	}
}

// TestLargeCodeBlockSplit 测试大代码块按行拆到多个批次且内容不丢失
func TestLargeCodeBlockSplit(t *testing.T) {
	var lines []string
	for i := 0; i < 400; i++ {
		lines = append(lines, fmt.Sprintf("fmt.Println(%d) // <@U%d>", i, i))
	}
	code := strings.Join(lines, "\n")
	markdown := "before\n\n```go\n" + code + "\n```\n\nafter"

	batches, err := Slackify(markdown, SplitOptions{MaxCharacters: 3000})
	if err != nil {
		t.Fatalf("Slackify() error = %v", err)
	}
	if len(batches) < 3 {
		t.Fatalf("Slackify() = %d batches, want at least 3", len(batches))
	}

	var fragments []string
	for i, batch := range batches {
		if size := EncodedSize(batch.Blocks); size > 3000 {
			t.Errorf("batch %d size = %d, want <= 3000", i, size)
		}
		for _, block := range batch.Blocks {
			rt, ok := block.(*RichTextBlock)
			if !ok {
				continue
			}
			for _, el := range rt.Elements {
				if pre, ok := el.(*RichTextPreformatted); ok {
					fragments = append(fragments, pre.Elements[0].(*Text).Text)
				}
			}
		}
	}
	if got := strings.Join(fragments, "\n"); got != code {
		t.Errorf("rejoined code differs from the input (%d vs %d bytes)", len(got), len(code))
	}

	first, last := batches[0].Blocks[0], batches[len(batches)-1].Blocks
	if s, ok := first.(*SectionBlock); !ok || s.Text.Text != "before" {
		t.Errorf("first block = %#v, want the leading paragraph", first)
	}
	if s, ok := last[len(last)-1].(*SectionBlock); !ok || s.Text.Text != "after" {
		t.Errorf("last block = %#v, want the trailing paragraph", last[len(last)-1])
	}
}
