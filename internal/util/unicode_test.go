package util

import (
	"reflect"
	"strings"
	"testing"
)

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"hello", 5},
		{"你好", 2},
		{"😀", 2},
		{"a😀b", 4},
	}
	for _, tt := range tests {
		if got := UTF16Len(tt.input); got != tt.want {
			t.Errorf("UTF16Len(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestChunkText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  []string
	}{
		{"fits", "short", 10, []string{"short"}},
		{"disabled", "short", 0, []string{"short"}},
		{"hard cut", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"newline", "abc\ndefgh", 6, []string{"abc", "defgh"}},
		{"newline on boundary", "abcd\nefg", 4, []string{"abcd", "efg"}},
		{"late space", "abcdefgh ij", 10, []string{"abcdefgh", "ij"}},
		{"early space ignored", "ab cdefghijkl", 10, []string{"ab cdefghi", "jkl"}},
		{"surrogate pair never split", "😀😀😀", 3, []string{"😀", "😀", "😀"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChunkText(tt.input, tt.limit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ChunkText(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestChunkText3500(t *testing.T) {
	got := ChunkText(strings.Repeat("x", 3500), 3000)
	if len(got) != 2 || len(got[0]) != 3000 || len(got[1]) != 500 {
		t.Fatalf("ChunkText() lengths = %d pieces, want 3000 + 500", len(got))
	}
}

func TestChunkTextRespectsLimit(t *testing.T) {
	input := strings.Repeat("word ", 200) + strings.Repeat("line\n", 100)
	for _, chunk := range ChunkText(input, 37) {
		if UTF16Len(chunk) > 37 {
			t.Errorf("chunk %q exceeds limit", chunk)
		}
	}
}
