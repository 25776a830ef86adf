package slackify

// SplitBlocksWithText splits blocks like SplitBlocks and pairs every batch with its
// plain-text rendering, which Slack shows in notifications and clients without
// Block Kit support.
func SplitBlocksWithText(blocks []Block, opts ...SplitOption) []Batch {
	batches := SplitBlocks(blocks, opts...)
	result := make([]Batch, 0, len(batches))
	for _, batch := range batches {
		result = append(result, Batch{
			Text:   BlocksToPlainText(batch),
			Blocks: batch,
		})
	}
	return result
}
