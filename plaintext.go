package slackify

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Plain-text markers.
const (
	plainBullet    = "• "
	plainQuote     = "> "
	plainDivider   = "---"
	plainIndent    = "  "
	plainCellSep   = " | "
	plainHeaderSep = "-+-"
)

// BlocksToPlainText renders blocks as a plain-text summary suitable for the text
// field of a message. References keep their bracketed form so Slack still renders
// them in notifications. The output is advisory and not lossless.
func BlocksToPlainText(blocks []Block) string {
	var lines []string
	for _, block := range blocks {
		if line := blockPlainText(block); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n\n")
}

func blockPlainText(block Block) string {
	switch b := block.(type) {
	case *HeaderBlock:
		return textObjectPlain(b.Text)
	case *SectionBlock:
		var parts []string
		if b.Text != nil && b.Text.Text != "" {
			parts = append(parts, b.Text.Text)
		}
		for _, field := range b.Fields {
			if field != nil && field.Text != "" {
				parts = append(parts, field.Text)
			}
		}
		return strings.Join(parts, "\n")
	case *RichTextBlock:
		return richTextPlain(b)
	case *TableBlock:
		return tablePlain(b)
	case *DividerBlock:
		return plainDivider
	case *ImageBlock:
		if title := textObjectPlain(b.Title); title != "" {
			return title
		}
		return b.AltText
	case *ContextBlock:
		parts := make([]string, 0, len(b.Elements))
		for _, el := range b.Elements {
			switch el := el.(type) {
			case *TextObject:
				parts = append(parts, el.Text)
			case *ImageElement:
				parts = append(parts, el.AltText)
			}
		}
		return strings.Join(parts, " ")
	}
	return ""
}

func textObjectPlain(t *TextObject) string {
	if t == nil {
		return ""
	}
	return t.Text
}

func richTextPlain(b *RichTextBlock) string {
	parts := make([]string, 0, len(b.Elements))
	for _, el := range b.Elements {
		switch el := el.(type) {
		case *RichTextSection:
			parts = append(parts, inlinesPlain(el.Elements))
		case *RichTextList:
			parts = append(parts, listPlain(el))
		case *RichTextPreformatted:
			parts = append(parts, inlinesPlain(el.Elements))
		case *RichTextQuote:
			lines := strings.Split(inlinesPlain(el.Elements), "\n")
			for i, line := range lines {
				lines[i] = plainQuote + line
			}
			parts = append(parts, strings.Join(lines, "\n"))
		}
	}
	return strings.Join(parts, "\n")
}

func listPlain(l *RichTextList) string {
	indent := strings.Repeat(plainIndent, l.Indent)
	lines := make([]string, 0, len(l.Elements))
	for i, item := range l.Elements {
		marker := plainBullet
		if l.Style == ListStyleOrdered {
			marker = strconv.Itoa(l.Offset+i+1) + ". "
		}
		lines = append(lines, indent+marker+inlinesPlain(item.Elements))
	}
	return strings.Join(lines, "\n")
}

func inlinesPlain(elements []Inline) string {
	var sb strings.Builder
	for _, el := range elements {
		sb.WriteString(inlinePlain(el))
	}
	return sb.String()
}

// inlinePlain renders references in their canonical bracketed form.
func inlinePlain(el Inline) string {
	switch el := el.(type) {
	case *Text:
		return el.Text
	case *Link:
		if el.Text != "" {
			return el.Text
		}
		return el.URL
	case *Emoji:
		return ":" + el.Name + ":"
	case *Date:
		ref := "<!date^" + strconv.FormatInt(el.Timestamp, 10) + "^" + el.Format
		if el.Fallback != "" {
			ref += "|" + el.Fallback
		}
		return ref + ">"
	case *User:
		return "<@" + el.UserID + ">"
	case *UserGroup:
		return "<!subteam^" + el.UserGroupID + ">"
	case *Team:
		return "<!subteam^" + el.TeamID + ">"
	case *Channel:
		return "<#" + el.ChannelID + ">"
	case *Broadcast:
		return "<!" + el.Range + ">"
	case *Color:
		return el.Value
	}
	return ""
}

// tablePlain pads every column to its display width and adds a rule after the
// header row.
func tablePlain(t *TableBlock) string {
	rows := make([][]string, 0, len(t.Rows))
	numCols := 0
	for _, row := range t.Rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			text := ""
			if cell != nil {
				text = strings.ReplaceAll(richTextPlain(cell), "\n", " ")
			}
			cells = append(cells, text)
		}
		numCols = max(numCols, len(cells))
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	for rowIdx, row := range rows {
		cells := make([]string, numCols)
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, plainCellSep), " "))

		if rowIdx == 0 && len(rows) > 1 {
			rule := make([]string, numCols)
			for i, w := range widths {
				rule[i] = strings.Repeat("-", w)
			}
			lines = append(lines, strings.Join(rule, plainHeaderSep))
		}
	}
	return strings.Join(lines, "\n")
}
