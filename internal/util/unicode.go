package util

// SpaceBreakRatio 空格切分点必须落在窗口的这个比例之后，否则直接硬切。
const SpaceBreakRatio = 0.8

// UTF16Len returns the length of text measured in UTF-16 code units.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		count += runeLen(r)
	}
	return count
}

func runeLen(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// ChunkText splits text into pieces of at most limit UTF-16 units.
//
// Each cut prefers the last newline inside the window, then the last space at or
// beyond SpaceBreakRatio of the window, then a hard boundary. The newline or space
// at a cut is consumed; a hard cut loses nothing.
func ChunkText(text string, limit int) []string {
	if limit <= 0 || UTF16Len(text) <= limit {
		return []string{text}
	}

	runes := []rune(text)
	var chunks []string
	for len(runes) > 0 {
		// end 为窗口内可容纳的 rune 数
		end, width := 0, 0
		for end < len(runes) && width+runeLen(runes[end]) <= limit {
			width += runeLen(runes[end])
			end++
		}
		if end == len(runes) {
			chunks = append(chunks, string(runes))
			break
		}
		if end == 0 {
			end = 1
		}

		cut, skip := end, 0
		if i := lastIndex(runes, '\n', 1, end); i >= 0 {
			cut, skip = i, 1
		} else if i := lastIndex(runes, ' ', int(float64(end)*SpaceBreakRatio), end); i > 0 {
			cut, skip = i, 1
		}

		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut+skip:]
	}
	return chunks
}

// lastIndex finds the last r in runes[from:to+1], the rune just past the window
// included, so a separator sitting on the boundary can still be consumed.
func lastIndex(runes []rune, r rune, from, to int) int {
	if to >= len(runes) {
		to = len(runes) - 1
	}
	for i := to; i >= from && i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}
