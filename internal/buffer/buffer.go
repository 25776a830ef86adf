package buffer

import "github.com/riverfjs/slackify-go/internal/types"

// Pending accumulates rich text elements until a structural break flushes them into
// one rich_text block.
type Pending struct {
	blocks   []types.Block
	elements []types.RichTextElement
}

// New creates an empty Pending buffer.
func New() *Pending {
	return &Pending{
		blocks:   make([]types.Block, 0),
		elements: make([]types.RichTextElement, 0),
	}
}

// Push appends elements to the pending rich_text block.
func (p *Pending) Push(elements ...types.RichTextElement) {
	p.elements = append(p.elements, elements...)
}

// Flush closes the pending rich_text block. It is a no-op when nothing is pending.
func (p *Pending) Flush() {
	if len(p.elements) == 0 {
		return
	}
	p.blocks = append(p.blocks, types.NewRichTextBlock(p.elements...))
	p.elements = make([]types.RichTextElement, 0)
}

// Emit appends a finished block after whatever has already been flushed. Callers
// flush first when the block must not be merged with pending content.
func (p *Pending) Emit(block types.Block) {
	p.blocks = append(p.blocks, block)
}

// Blocks flushes the remainder and returns every block produced so far.
func (p *Pending) Blocks() []types.Block {
	p.Flush()
	return p.blocks
}
