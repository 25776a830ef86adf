package converter

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// Mrkdwn wraps delimiters used by the compact renderer.
const (
	mrkdwnItalic = "_"
	mrkdwnBold   = "*"
	mrkdwnStrike = "~"
	mrkdwnCode   = "`"
)

// Mrkdwn renders the inline children of parent as a Slack mrkdwn string.
func (c *Converter) Mrkdwn(parent ast.Node) string {
	var sb strings.Builder
	c.writeMrkdwn(&sb, parent)
	return sb.String()
}

func (c *Converter) writeMrkdwn(sb *strings.Builder, parent ast.Node) {
	for child := parent.FirstChild(); child != nil; {
		if isTextRun(child, false) {
			var run strings.Builder
			for child != nil && isTextRun(child, false) {
				c.appendRaw(&run, child)
				child = child.NextSibling()
			}
			sb.WriteString(c.resolver.ConvertText(run.String()))
			continue
		}
		c.mrkdwnNode(sb, child)
		child = child.NextSibling()
	}
}

func (c *Converter) mrkdwnNode(sb *strings.Builder, n ast.Node) {
	switch n := n.(type) {
	case *ast.RawHTML:
		// <!date^...> 之类的 Slack 标记原样输出
		c.appendRaw(sb, n)
	case *ast.Emphasis:
		delim := mrkdwnItalic
		if n.Level >= 2 {
			delim = mrkdwnBold
		}
		c.wrapMrkdwn(sb, n, delim)
	case *east.Strikethrough:
		c.wrapMrkdwn(sb, n, mrkdwnStrike)
	case *ast.CodeSpan:
		sb.WriteString(mrkdwnCode + codeSpanText(n, c.source) + mrkdwnCode)
	case *ast.Link:
		sb.WriteString("<" + string(n.Destination) + "|" + c.plainText(n) + ">")
	case *ast.AutoLink:
		sb.WriteString("<" + autoLinkURL(n, c.source) + "|" + string(n.Label(c.source)) + ">")
	case *ast.Image:
		sb.WriteString("<" + string(n.Destination) + "|" + c.imageAlt(n) + ">")
	}
}

func (c *Converter) wrapMrkdwn(sb *strings.Builder, n ast.Node, delim string) {
	sb.WriteString(delim)
	c.writeMrkdwn(sb, n)
	sb.WriteString(delim)
}
