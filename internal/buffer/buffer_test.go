package buffer

import (
	"testing"

	"github.com/riverfjs/slackify-go/internal/types"
)

func TestPendingFlush(t *testing.T) {
	p := New()
	p.Flush()
	if got := len(p.Blocks()); got != 0 {
		t.Fatalf("Blocks() on empty buffer = %d blocks, want 0", got)
	}

	p.Push(types.NewRichTextSection(types.NewText("a", nil)))
	p.Push(types.NewRichTextSection(types.NewText("b", nil)))
	p.Flush()
	p.Emit(types.NewDividerBlock())
	p.Push(types.NewRichTextQuote(types.NewText("c", nil)))

	blocks := p.Blocks()
	if len(blocks) != 3 {
		t.Fatalf("Blocks() = %d blocks, want 3", len(blocks))
	}
	first, ok := blocks[0].(*types.RichTextBlock)
	if !ok || len(first.Elements) != 2 {
		t.Errorf("blocks[0] = %#v, want rich_text with 2 elements", blocks[0])
	}
	if blocks[1].BlockType() != types.BlockTypeDivider {
		t.Errorf("blocks[1].BlockType() = %q, want divider", blocks[1].BlockType())
	}
	if last := blocks[2].(*types.RichTextBlock); last.Elements[0].RichTextType() != types.RichTextTypeQuote {
		t.Errorf("blocks[2] first element = %q, want quote", last.Elements[0].RichTextType())
	}
}

func TestPendingFlushDoesNotAlias(t *testing.T) {
	p := New()
	p.Push(types.NewRichTextSection(types.NewText("a", nil)))
	p.Flush()
	p.Push(types.NewRichTextSection(types.NewText("b", nil)))
	blocks := p.Blocks()
	if got := blocks[0].(*types.RichTextBlock).Elements[0].(*types.RichTextSection).Elements[0].(*types.Text).Text; got != "a" {
		t.Errorf("first block text = %q, want %q", got, "a")
	}
}
