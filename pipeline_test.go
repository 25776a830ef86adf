package slackify

import (
	"strings"
	"testing"
)

// TestSplitBlocksWithText 测试每批附带纯文本
func TestSplitBlocksWithText(t *testing.T) {
	blocks := []Block{NewHeaderBlock("One"), NewMrkdwnSection("first"), NewHeaderBlock("Two"), NewMrkdwnSection("second")}
	batches := SplitBlocksWithText(blocks, WithMaxBlocks(2))
	if len(batches) != 2 {
		t.Fatalf("SplitBlocksWithText() = %d batches, want 2", len(batches))
	}
	if batches[0].Text != "One\n\nfirst" || batches[1].Text != "Two\n\nsecond" {
		t.Errorf("SplitBlocksWithText() texts = %q, %q", batches[0].Text, batches[1].Text)
	}
}

// TestSplitBlocksWithText_Empty 测试空输入返回一个空批次
func TestSplitBlocksWithText_Empty(t *testing.T) {
	batches := SplitBlocksWithText(nil)
	if len(batches) != 1 || len(batches[0].Blocks) != 0 || batches[0].Text != "" {
		t.Errorf("SplitBlocksWithText(nil) = %+v, want one empty batch", batches)
	}
}

// TestSlackify 测试完整流程
func TestSlackify(t *testing.T) {
	markdown := "## 发布说明\n\n@jdoe 请查看 #general\n\n1. 修复问题\n2. 更新文档"
	batches, err := Slackify(markdown, SplitOptions{},
		WithUsers(map[string]string{"jdoe": "U123"}),
		WithChannels(map[string]string{"general": "C123"}),
	)
	if err != nil {
		t.Fatalf("Slackify() error = %v", err)
	}
	if len(batches) != 1 {
		t.Fatalf("Slackify() = %d batches, want 1", len(batches))
	}
	want := "发布说明\n\n<@U123> 请查看 <#C123>\n\n1. 修复问题\n2. 更新文档"
	if batches[0].Text != want {
		t.Errorf("Slackify() text = %q, want %q", batches[0].Text, want)
	}
}

// TestSlackify_InvalidID 测试非法 ID 不产生批次
func TestSlackify_InvalidID(t *testing.T) {
	batches, err := Slackify("hi", SplitOptions{}, WithChannels(map[string]string{"general": "U1"}))
	if err == nil {
		t.Fatal("Slackify() error = nil, want invalid ID")
	}
	if batches != nil {
		t.Errorf("Slackify() batches = %v, want nil", batches)
	}
}

// TestSlackify_Limits 测试拆分限制生效
func TestSlackify_Limits(t *testing.T) {
	markdown := strings.Repeat("paragraph\n\n", 9)
	batches, err := Slackify(markdown, SplitOptions{MaxBlocks: 4})
	if err != nil {
		t.Fatalf("Slackify() error = %v", err)
	}
	if got, want := len(batches), 3; got != want {
		t.Errorf("Slackify() = %d batches, want %d", got, want)
	}
	for i, batch := range batches {
		if len(batch.Blocks) > 4 {
			t.Errorf("batch %d has %d blocks, want <= 4", i, len(batch.Blocks))
		}
	}
}
