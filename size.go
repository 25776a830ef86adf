package slackify

import (
	"github.com/riverfjs/slackify-go/internal/types"
	"github.com/riverfjs/slackify-go/internal/util"
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Slack counts message limits the way JavaScript measures strings, so characters
// outside the BMP (codepoint > 0xFFFF) take 2 units and all others take 1.
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}

// MarshalBlocks encodes blocks as the JSON array Slack receives. HTML characters
// are not escaped.
func MarshalBlocks(blocks []Block) ([]byte, error) {
	if blocks == nil {
		blocks = []Block{}
	}
	return types.Marshal(blocks)
}

// EncodedSize returns the serialized size of v in UTF-16 units, the measure the
// splitter holds batches to. Values that cannot be encoded report 0.
func EncodedSize(v any) int {
	data, err := types.Marshal(v)
	if err != nil {
		Logger.Error().Err(err).Msg("failed to encode value for size estimation")
		return 0
	}
	return util.UTF16Len(string(data))
}
