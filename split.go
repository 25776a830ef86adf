package slackify

import (
	"strings"

	"github.com/riverfjs/slackify-go/internal/util"
)

// SplitBlocks splits blocks into batches that each satisfy the limits in opts.
//
// Section and header text longer than MaxTextLength is first cut into several
// blocks. Batches are then packed greedily in document order. A rich_text block
// too large for a batch of its own is regrouped by its elements, and an oversized
// code block inside it is cut by lines. Blocks that cannot be divided further are
// sent alone in an oversized batch rather than dropped.
//
// An empty input yields exactly one empty batch.
func SplitBlocks(blocks []Block, opts ...SplitOption) [][]Block {
	limits := applySplitOptions(opts...)
	if len(blocks) == 0 {
		return [][]Block{{}}
	}

	blocks = splitLongText(blocks, limits.MaxTextLength)
	b := &batcher{limits: limits}
	for _, block := range blocks {
		b.add(block)
	}
	batches := b.finish()

	Logger.Debug().
		Int("blocks", len(blocks)).
		Int("batches", len(batches)).
		Int("max_blocks", limits.MaxBlocks).
		Int("max_characters", limits.MaxCharacters).
		Msg("split blocks")
	return batches
}

// batcher packs blocks greedily. Each block is encoded once; the size of the open
// batch is kept as the sum of block sizes plus separating commas.
type batcher struct {
	limits  SplitOptions
	batches [][]Block
	current []Block
	size    int
}

// sizeWith returns the serialized array size of the open batch after appending a
// block of size n.
func (b *batcher) sizeWith(n int) int {
	size := 2 + b.size + n
	if len(b.current) > 0 {
		size++
	}
	return size
}

func (b *batcher) fits(n int) bool {
	return len(b.current) < b.limits.MaxBlocks && b.sizeWith(n) <= b.limits.MaxCharacters
}

func (b *batcher) push(block Block, n int) {
	if len(b.current) > 0 {
		b.size++
	}
	b.size += n
	b.current = append(b.current, block)
}

func (b *batcher) close() {
	if len(b.current) == 0 {
		return
	}
	b.batches = append(b.batches, b.current)
	b.current = nil
	b.size = 0
}

func (b *batcher) add(block Block) {
	n := EncodedSize(block)
	if !b.fits(n) {
		b.close()
	}
	if b.fits(n) {
		b.push(block, n)
		return
	}

	if rt, ok := block.(*RichTextBlock); ok && len(rt.Elements) > 0 {
		// 单个 rich_text 超限：按内部元素重新分组
		for _, piece := range splitRichText(rt, b.limits.MaxCharacters-2) {
			b.addPiece(piece)
		}
		return
	}
	b.oversized(block, n)
}

func (b *batcher) addPiece(block Block) {
	n := EncodedSize(block)
	if !b.fits(n) {
		b.close()
	}
	if !b.fits(n) {
		b.oversized(block, n)
		return
	}
	b.push(block, n)
}

// oversized sends a block that cannot be divided further in a batch of its own.
func (b *batcher) oversized(block Block, n int) {
	Logger.Warn().
		Str("block_type", block.BlockType()).
		Int("size", n+2).
		Int("max_characters", b.limits.MaxCharacters).
		Msg("block exceeds the size limit and cannot be split, sending it alone")
	b.close()
	b.push(block, n)
	b.close()
}

func (b *batcher) finish() [][]Block {
	b.close()
	if len(b.batches) == 0 {
		return [][]Block{{}}
	}
	return b.batches
}

// splitRichText regroups the elements of rt into rich_text blocks of at most budget
// serialized units. The blocks carry no block_id.
func splitRichText(rt *RichTextBlock, budget int) []Block {
	base := EncodedSize(NewRichTextBlock())

	var pieces []Block
	var group []RichTextElement
	groupSize := base
	closeGroup := func() {
		if len(group) > 0 {
			pieces = append(pieces, NewRichTextBlock(group...))
			group = nil
			groupSize = base
		}
	}

	for _, el := range rt.Elements {
		n := EncodedSize(el)
		if base+n > budget {
			closeGroup()
			pieces = append(pieces, splitElement(el, budget)...)
			continue
		}
		extra := n
		if len(group) > 0 {
			extra++
		}
		if groupSize+extra > budget {
			closeGroup()
			extra = n
		}
		group = append(group, el)
		groupSize += extra
	}
	closeGroup()
	return pieces
}

// splitElement wraps an element that is too large for one block. Code blocks are
// cut by lines into one rich_text block per fragment; anything else stays whole.
func splitElement(el RichTextElement, budget int) []Block {
	if pre, ok := el.(*RichTextPreformatted); ok {
		if fragments := splitPreformatted(pre, budget); len(fragments) > 0 {
			blocks := make([]Block, 0, len(fragments))
			for _, f := range fragments {
				blocks = append(blocks, NewRichTextBlock(f))
			}
			return blocks
		}
	}
	return []Block{NewRichTextBlock(el)}
}

// splitPreformatted cuts a code block into fragments whose rich_text wrapper fits
// budget. Lines are packed greedily and the newline at a fragment boundary is
// dropped; a single line that is too long is cut at rune boundaries. It returns nil
// when the element mixes styles or non-text elements.
func splitPreformatted(pre *RichTextPreformatted, budget int) []*RichTextPreformatted {
	text, style, ok := preformattedText(pre)
	if !ok {
		return nil
	}
	newFragment := func(s string) *RichTextPreformatted {
		f := NewRichTextPreformatted(NewText(s, style))
		f.Border = pre.Border
		return f
	}
	room := budget - EncodedSize(NewRichTextBlock(newFragment("")))
	if room <= 0 {
		return nil
	}
	newline := escapedSize("\n")

	var fragments []*RichTextPreformatted
	var current strings.Builder
	size, open := 0, false
	flush := func() {
		if current.Len() > 0 {
			fragments = append(fragments, newFragment(current.String()))
		}
		current.Reset()
		size, open = 0, false
	}

	for _, line := range strings.Split(text, "\n") {
		for i, part := range cutToSize(line, room) {
			n := escapedSize(part)
			sep := 0
			if open && i == 0 {
				sep = newline
			}
			if open && size+sep+n > room {
				flush()
				sep = 0
			}
			if sep > 0 {
				current.WriteByte('\n')
			}
			current.WriteString(part)
			size += sep + n
			open = true
		}
	}
	flush()
	return fragments
}

// preformattedText joins the text of pre when every element is a text run with
// the same style.
func preformattedText(pre *RichTextPreformatted) (string, *Style, bool) {
	if len(pre.Elements) == 0 {
		return "", nil, false
	}
	var sb strings.Builder
	var style *Style
	for i, el := range pre.Elements {
		t, ok := el.(*Text)
		if !ok {
			return "", nil, false
		}
		if i == 0 {
			style = t.Style
		} else if !sameStyle(style, t.Style) {
			return "", nil, false
		}
		sb.WriteString(t.Text)
	}
	return sb.String(), style, true
}

func sameStyle(a, b *Style) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	return *a == *b
}

// escapedSize is the size of s inside a JSON string, quotes excluded.
func escapedSize(s string) int {
	return EncodedSize(s) - 2
}

// cutToSize cuts line at rune boundaries into parts of at most room escaped units.
func cutToSize(line string, room int) []string {
	if escapedSize(line) <= room {
		return []string{line}
	}
	var parts []string
	start, size := 0, 0
	for i, r := range line {
		n := escapedSize(string(r))
		if size+n > room && i > start {
			parts = append(parts, line[start:i])
			start, size = i, 0
		}
		size += n
	}
	return append(parts, line[start:])
}

// splitLongText cuts section and header text longer than maxLen into several
// blocks. The input slice is returned as is when nothing needs cutting.
func splitLongText(blocks []Block, maxLen int) []Block {
	var out []Block
	for i, block := range blocks {
		pieces := splitBlockText(block, maxLen)
		if pieces == nil {
			if out != nil {
				out = append(out, block)
			}
			continue
		}
		if out == nil {
			out = append(make([]Block, 0, len(blocks)+len(pieces)), blocks[:i]...)
		}
		out = append(out, pieces...)
	}
	if out == nil {
		return blocks
	}
	return out
}

// splitBlockText returns nil when block needs no cutting. The first piece keeps the
// block's fields, accessory and block_id; later pieces are bare sections.
func splitBlockText(block Block, maxLen int) []Block {
	switch b := block.(type) {
	case *SectionBlock:
		if b.Text == nil || UTF16Len(b.Text.Text) <= maxLen {
			return nil
		}
		chunks := textChunks(b.Text.Text, maxLen)
		first, text := *b, *b.Text
		text.Text = chunks[0]
		first.Text = &text
		pieces := []Block{&first}
		for _, chunk := range chunks[1:] {
			pieces = append(pieces, NewSectionBlock(NewTextObject(b.Text.Type, chunk)))
		}
		return pieces

	case *HeaderBlock:
		if b.Text == nil || UTF16Len(b.Text.Text) <= maxLen {
			return nil
		}
		chunks := textChunks(b.Text.Text, maxLen)
		first, text := *b, *b.Text
		text.Text = chunks[0]
		first.Text = &text
		pieces := []Block{&first}
		for _, chunk := range chunks[1:] {
			// header 不支持 markup，溢出部分改用 plain_text section
			pieces = append(pieces, NewSectionBlock(NewTextObject(TextTypePlainText, chunk)))
		}
		return pieces
	}
	return nil
}

// textChunks drops pieces left empty by consumed separators.
func textChunks(text string, maxLen int) []string {
	var chunks []string
	for _, chunk := range util.ChunkText(text, maxLen) {
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	if len(chunks) == 0 {
		return []string{""}
	}
	return chunks
}
