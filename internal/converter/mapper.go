package converter

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/riverfjs/slackify-go/internal/buffer"
	"github.com/riverfjs/slackify-go/internal/types"
)

// RenderConfig controls how a document maps to blocks.
type RenderConfig struct {
	Mentions     types.Mentions
	DetectColors bool
	// PreferSectionBlocks renders paragraphs and H3+ headings as mrkdwn sections
	// instead of rich_text containers.
	PreferSectionBlocks bool
}

// DefaultRenderConfig returns the defaults: colors detected, compact sections.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{DetectColors: true, PreferSectionBlocks: true}
}

// Converter maps a goldmark document to Block Kit blocks.
type Converter struct {
	source   []byte
	config   *RenderConfig
	resolver *Resolver
	out      *buffer.Pending
}

// NewConverter creates a Converter for a document parsed from source.
func NewConverter(source []byte, config *RenderConfig) *Converter {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &Converter{
		source: source,
		config: config,
		resolver: &Resolver{
			Mentions:     config.Mentions,
			DetectColors: config.DetectColors,
		},
		out: buffer.New(),
	}
}

// breakRule says whether a node kind closes the pending rich_text block before
// and/or after it is mapped.
type breakRule struct {
	before, after bool
}

var breakRules = map[ast.NodeKind]breakRule{
	ast.KindHeading:         {before: true},
	ast.KindThematicBreak:   {before: true},
	east.KindTable:          {before: true},
	ast.KindList:            {after: true},
	ast.KindFencedCodeBlock: {after: true},
	ast.KindCodeBlock:       {after: true},
	ast.KindBlockquote:      {after: true},
	ast.KindHTMLBlock:       {},
}

// paragraphRule: image paragraphs and compact paragraphs stand alone, structured
// paragraphs join the pending block.
func (c *Converter) paragraphRule(p ast.Node) breakRule {
	if soleImage(p) != nil || c.config.PreferSectionBlocks {
		return breakRule{before: true}
	}
	return breakRule{}
}

func (c *Converter) ruleFor(n ast.Node) breakRule {
	if n.Kind() == ast.KindParagraph {
		return c.paragraphRule(n)
	}
	return breakRules[n.Kind()]
}

// Convert maps every top-level node of doc and returns the resulting blocks.
func (c *Converter) Convert(doc ast.Node) []types.Block {
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		rule := c.ruleFor(node)
		if rule.before {
			c.out.Flush()
		}
		c.block(node)
		if rule.after {
			c.out.Flush()
		}
	}
	return c.out.Blocks()
}

func (c *Converter) block(node ast.Node) {
	switch n := node.(type) {
	case *ast.Heading:
		c.heading(n)
	case *ast.Paragraph:
		c.paragraph(n)
	case *ast.List:
		c.out.Push(c.List(n)...)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if code := c.codeText(n); code != "" {
			c.out.Push(types.NewRichTextPreformatted(types.NewText(code, nil)))
		}
	case *ast.Blockquote:
		if elements := c.paragraphInlines(n); len(elements) > 0 {
			c.out.Push(types.NewRichTextQuote(elements...))
		}
	case *ast.ThematicBreak:
		c.out.Emit(types.NewDividerBlock())
	case *east.Table:
		c.out.Emit(c.table(n))
	case *ast.HTMLBlock:
		text := c.linesText(n)
		if n.HasClosure() {
			text += string(n.ClosureLine.Value(c.source))
		}
		text = strings.TrimSuffix(text, "\n")
		if elements := c.resolver.Resolve(text, nil); len(elements) > 0 {
			c.out.Push(types.NewRichTextSection(elements...))
		}
	}
}

func (c *Converter) heading(n *ast.Heading) {
	switch {
	case n.Level <= 2:
		if text := c.plainText(n); text != "" {
			c.out.Emit(types.NewHeaderBlock(text))
		}
	case c.config.PreferSectionBlocks:
		if text := c.Mrkdwn(n); text != "" {
			c.out.Emit(types.NewMrkdwnSection(mrkdwnBold + text + mrkdwnBold))
		}
	default:
		if elements := c.Flatten(n, &types.Style{Bold: true}); len(elements) > 0 {
			c.out.Emit(types.NewRichTextBlock(types.NewRichTextSection(elements...)))
		}
	}
}

func (c *Converter) paragraph(n *ast.Paragraph) {
	if img := soleImage(n); img != nil {
		c.out.Emit(types.NewImageBlock(string(img.Destination), c.imageAlt(img)))
		return
	}
	if c.config.PreferSectionBlocks {
		if text := c.Mrkdwn(n); text != "" {
			c.out.Emit(types.NewMrkdwnSection(text))
		}
		return
	}
	if elements := c.Inlines(n); len(elements) > 0 {
		c.out.Push(types.NewRichTextSection(elements...))
	}
}

// soleImage returns the image when it is the only child of p.
func soleImage(p ast.Node) *ast.Image {
	first := p.FirstChild()
	if first == nil || first.NextSibling() != nil {
		return nil
	}
	img, _ := first.(*ast.Image)
	return img
}

// paragraphInlines joins the inline content of the paragraph children of n with a
// newline. Other children are dropped.
func (c *Converter) paragraphInlines(n ast.Node) []types.Inline {
	var elements []types.Inline
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.Kind() {
		case ast.KindParagraph, ast.KindTextBlock:
			inlines := c.Inlines(child)
			if len(inlines) == 0 {
				continue
			}
			if len(elements) > 0 {
				elements = append(elements, types.NewText("\n", nil))
			}
			elements = append(elements, inlines...)
		}
	}
	return elements
}

func (c *Converter) table(n *east.Table) *types.TableBlock {
	rows := make([][]*types.RichTextBlock, 0)
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		cells := make([]*types.RichTextBlock, 0)
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, types.NewRichTextBlock(types.NewRichTextSection(c.Inlines(cell)...)))
		}
		rows = append(rows, cells)
	}
	return types.NewTableBlock(rows)
}

func (c *Converter) linesText(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(c.source))
	}
	return sb.String()
}

// codeText returns the code block content with a single trailing newline removed.
func (c *Converter) codeText(n ast.Node) string {
	return strings.TrimSuffix(c.linesText(n), "\n")
}
