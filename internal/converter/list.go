package converter

import (
	"github.com/yuin/goldmark/ast"

	"github.com/riverfjs/slackify-go/internal/types"
)

// listFrame is one open list during traversal.
type listFrame struct {
	list    *ast.List
	indent  int
	next    ast.Node   // next item to visit
	nested  []*ast.List // nested lists of the last visited item, not yet entered
	items   []*types.RichTextSection
	emitted int // items already closed into earlier list elements
}

// closeItems turns the items collected so far into one list element.
func (f *listFrame) closeItems(out []types.RichTextElement) []types.RichTextElement {
	if len(f.items) == 0 {
		return out
	}
	style := types.ListStyleBullet
	if f.list.IsOrdered() {
		style = types.ListStyleOrdered
	}
	el := types.NewRichTextList(style, f.indent, f.items...)
	if f.list.IsOrdered() {
		// 嵌套列表打断后续号，offset 让编号接上
		el.Offset = max(f.list.Start-1, 0) + f.emitted
	}
	f.emitted += len(f.items)
	f.items = nil
	return append(out, el)
}

// List flattens a possibly nested list into sibling rich_text_list elements, one per
// run of items at the same depth, tagged with their indent. Traversal is an
// explicit depth-first loop, so nesting depth is bounded only by memory.
func (c *Converter) List(root *ast.List) []types.RichTextElement {
	var out []types.RichTextElement
	stack := []*listFrame{{list: root, next: root.FirstChild()}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]

		if len(f.nested) > 0 {
			child := f.nested[0]
			f.nested = f.nested[1:]
			stack = append(stack, &listFrame{list: child, indent: f.indent + 1, next: child.FirstChild()})
			continue
		}

		if f.next == nil {
			out = f.closeItems(out)
			stack = stack[:len(stack)-1]
			continue
		}

		item := f.next
		f.next = item.NextSibling()

		if elements := c.paragraphInlines(item); len(elements) > 0 {
			f.items = append(f.items, types.NewRichTextSection(elements...))
		}
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			if l, ok := child.(*ast.List); ok {
				f.nested = append(f.nested, l)
			}
		}
		if len(f.nested) > 0 {
			out = f.closeItems(out)
		}
	}
	return out
}
