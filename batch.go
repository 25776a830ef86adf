package slackify

import (
	"fmt"

	"github.com/slack-go/slack"
)

// Batch is one message worth of blocks together with its fallback text.
type Batch struct {
	Text   string  `json:"text"`
	Blocks []Block `json:"blocks"`
}

// MsgOptions returns the slack-go message options that post b, for use with
// (*slack.Client).PostMessage.
func (b Batch) MsgOptions() ([]slack.MsgOption, error) {
	blocks, err := ToSlackBlocks(b.Blocks)
	if err != nil {
		return nil, fmt.Errorf("batch blocks: %w", err)
	}
	return []slack.MsgOption{
		slack.MsgOptionText(b.Text, false),
		slack.MsgOptionBlocks(blocks.BlockSet...),
	}, nil
}
