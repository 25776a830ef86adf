// Package slackify 将 Markdown 转换为 Slack Block Kit blocks
//
// 这个包提供了将 Markdown（包括 LLM 输出、GitHub README 等）转换为
// Slack chat.postMessage 所需 blocks 的功能。
//
// 核心功能：
//   - 将 Markdown 转换为 header、section、rich_text、table 等 blocks
//   - 识别 @user、#channel、<!here>、:emoji:、日期和颜色
//   - 按 Slack 限制（block 数量、JSON 大小、单段文本长度）拆分消息
//   - 为每批 blocks 生成纯文本 fallback
//
// 主要 API：
//   - MarkdownToBlocks(): 转换，返回 []Block
//   - SplitBlocks(): 拆分，返回 [][]Block
//   - Slackify(): 完整处理，返回可发送的 []Batch
//
// 示例：
//
//	batches, err := slackify.Slackify(markdown, slackify.SplitOptions{},
//	    slackify.WithUsers(map[string]string{"jdoe": "U123"}))
//	if err != nil {
//	    return err
//	}
//	for _, batch := range batches {
//	    opts, err := batch.MsgOptions()
//	    if err != nil {
//	        return err
//	    }
//	    api.PostMessage(channelID, opts...)
//	}
package slackify

// Slackify 将 Markdown 转换为可直接发送的消息批次
//
// 参数：
//   - markdown: 原始 Markdown 文本
//   - limits: 拆分限制，零值字段使用默认值
//   - opts: 转换选项
//
// 返回：
//   - []Batch: 按顺序排列的批次，每批包含 blocks 和纯文本 fallback
//   - error: mention 表中存在格式错误的 ID 时返回 *IDError
func Slackify(markdown string, limits SplitOptions, opts ...Option) ([]Batch, error) {
	blocks, err := MarkdownToBlocks(markdown, opts...)
	if err != nil {
		return nil, err
	}
	return SplitBlocksWithText(blocks, WithLimits(limits)), nil
}
