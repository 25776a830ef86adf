package slackify

import (
	"encoding/json"
	"fmt"

	"github.com/slack-go/slack"
)

// ToSlackBlocks converts blocks into slack-go's block model by round-tripping the
// JSON Slack would receive. Element types slack-go does not know are kept as its
// unknown block and element values.
func ToSlackBlocks(blocks []Block) (slack.Blocks, error) {
	data, err := MarshalBlocks(blocks)
	if err != nil {
		return slack.Blocks{}, fmt.Errorf("marshal blocks: %w", err)
	}
	var out slack.Blocks
	if err := json.Unmarshal(data, &out); err != nil {
		return slack.Blocks{}, fmt.Errorf("decode slack blocks: %w", err)
	}
	return out, nil
}
