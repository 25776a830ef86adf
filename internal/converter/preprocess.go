package converter

import (
	"regexp"
	"strings"
)

var (
	// wrappedListRe 匹配被强调符号整体包住的列表行，例如 "**1. Bold item**"
	wrappedListRe = regexp.MustCompile(`^(\s*)(\*\*|__|~~|\*|_|~)((?:\d+[.)]|[-+*])[ \t]+)(.+?)(\*\*|__|~~|\*|_|~)[ \t]*$`)

	// fenceRe 匹配代码围栏的起止行
	fenceRe = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})")

	listItemRe = regexp.MustCompile(`^[ \t]*(?:\d+[.)]|[-+*])(?:[ \t]|$)`)
)

// codeIndent is the indentation that starts an indented code block.
const codeIndent = 4

// PreprocessWrappedLists moves emphasis that wraps a whole list line inside the list
// marker, so "**1. Bold item**" parses as an ordered item whose content is bold.
// Lines inside fenced or indented code are left alone.
func PreprocessWrappedLists(text string) string {
	lines := strings.Split(text, "\n")
	fence := ""
	prevBlank, inCode, inList := true, false, false
	for i, line := range lines {
		blank := strings.TrimSpace(line) == ""

		// 缩进代码块只能出现在空行之后，且不在列表内
		if fence == "" && !blank && !inList && (inCode || prevBlank) && indentWidth(line) >= codeIndent {
			inCode, prevBlank = true, false
			continue
		}
		if !blank {
			inCode = false
		}

		if m := fenceRe.FindStringSubmatch(line); m != nil {
			switch {
			case fence == "":
				fence = m[1]
			case m[1][0] == fence[0] && len(m[1]) >= len(fence) && strings.TrimSpace(line[len(m[0]):]) == "":
				fence = ""
			}
			prevBlank = false
			continue
		}
		if fence != "" {
			continue
		}

		if !blank {
			lines[i] = unwrapListLine(line)
			switch {
			case listItemRe.MatchString(lines[i]):
				inList = true
			case prevBlank && indentWidth(line) == 0:
				inList = false
			}
		}
		prevBlank = blank
	}
	return strings.Join(lines, "\n")
}

// indentWidth counts leading columns, a tab advancing to the next multiple of four.
func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += codeIndent - width%codeIndent
		default:
			return width
		}
	}
	return width
}

func unwrapListLine(line string) string {
	m := wrappedListRe.FindStringSubmatch(line)
	if m == nil || m[2] != m[5] {
		return line
	}
	indent, delim, marker, content := m[1], m[2], m[3], m[4]
	if delim == "~" {
		delim = "~~"
	}
	return indent + marker + delim + content + delim
}
