package converter

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	gmutil "github.com/yuin/goldmark/util"

	"github.com/riverfjs/slackify-go/internal/types"
)

// DefaultImageAlt is used when an image has no alt text.
const DefaultImageAlt = "Image"

const mailtoScheme = "mailto:"

// isTextRun reports whether n is literal text that joins its neighbours before token
// resolution. goldmark splits text at delimiter characters, so "@john_doe" can arrive
// as three nodes.
func isTextRun(n ast.Node, withRaw bool) bool {
	switch n.(type) {
	case *ast.Text, *ast.String:
		return true
	case *ast.RawHTML:
		return withRaw
	}
	return false
}

// appendRaw writes the literal value of a text-like node.
func (c *Converter) appendRaw(sb *strings.Builder, n ast.Node) {
	switch n := n.(type) {
	case *ast.Text:
		sb.Write(gmutil.UnescapePunctuations(n.Segment.Value(c.source)))
		if n.SoftLineBreak() || n.HardLineBreak() {
			sb.WriteByte('\n')
		}
	case *ast.String:
		sb.Write(n.Value)
	case *ast.RawHTML:
		sb.Write(n.Segments.Value(c.source))
	}
}

// Inlines maps the inline children of parent to a flat list of inline elements.
func (c *Converter) Inlines(parent ast.Node) []types.Inline {
	var elements []types.Inline
	for child := parent.FirstChild(); child != nil; {
		if isTextRun(child, true) {
			var sb strings.Builder
			for child != nil && isTextRun(child, true) {
				c.appendRaw(&sb, child)
				child = child.NextSibling()
			}
			elements = append(elements, c.resolver.Resolve(sb.String(), nil)...)
			continue
		}
		elements = append(elements, c.inline(child)...)
		child = child.NextSibling()
	}
	return elements
}

func (c *Converter) inline(n ast.Node) []types.Inline {
	switch n := n.(type) {
	case *ast.Emphasis:
		if n.Level >= 2 {
			return c.Flatten(n, &types.Style{Bold: true})
		}
		return c.Flatten(n, &types.Style{Italic: true})
	case *east.Strikethrough:
		return c.Flatten(n, &types.Style{Strike: true})
	case *ast.CodeSpan:
		return c.resolver.Resolve(codeSpanText(n, c.source), &types.Style{Code: true})
	case *ast.Link:
		return []types.Inline{types.NewLink(string(n.Destination), c.plainText(n))}
	case *ast.AutoLink:
		return []types.Inline{types.NewLink(autoLinkURL(n, c.source), string(n.Label(c.source)))}
	case *ast.Image:
		return []types.Inline{types.NewLink(string(n.Destination), c.imageAlt(n))}
	}
	// 任务列表复选框等节点不产生内容
	return nil
}

// Flatten maps the children of parent and merges style into every resulting
// element. Flags already set on a child survive.
func (c *Converter) Flatten(parent ast.Node, style *types.Style) []types.Inline {
	elements := c.Inlines(parent)
	for _, el := range elements {
		el.SetStyle(el.StyleAttr().Merge(style))
	}
	return elements
}

// plainText concatenates the literal text below n, markup removed.
func (c *Converter) plainText(n ast.Node) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := node.(type) {
		case *ast.Text, *ast.String, *ast.RawHTML:
			c.appendRaw(&sb, node)
		case *ast.CodeSpan:
			sb.WriteString(codeSpanText(node, c.source))
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			sb.Write(node.Label(c.source))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

func (c *Converter) imageAlt(n *ast.Image) string {
	if alt := c.plainText(n); alt != "" {
		return alt
	}
	return DefaultImageAlt
}

// autoLinkURL adds the mailto: scheme to email autolinks, as goldmark's HTML
// renderer does.
func autoLinkURL(n *ast.AutoLink, source []byte) string {
	url := string(n.URL(source))
	if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(url), mailtoScheme) {
		return mailtoScheme + url
	}
	return url
}

func codeSpanText(n *ast.CodeSpan, source []byte) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch child := child.(type) {
		case *ast.Text:
			sb.Write(child.Segment.Value(source))
		case *ast.String:
			sb.Write(child.Value)
		}
	}
	return sb.String()
}
