package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/wisehub-ai/wisehub/pkg/llm"
	"github.com/wisehub-ai/wisehub/pkg/models"
)

// Smalltalk handles general conversation in the organization's voice. LLM
// outages degrade to a canned friendly line rather than an error.
func (s *Set) Smalltalk(ctx context.Context, params map[string]any, env models.Envelope, mem *models.MemoryContext) (*models.HandlerResult, error) {
	reply := s.smalltalkReply(ctx, env, mem)
	return &models.HandlerResult{
		Success:     true,
		UserMessage: reply,
	}, nil
}

func (s *Set) smalltalkReply(ctx context.Context, env models.Envelope, mem *models.MemoryContext) string {
	if s.deps.LLM == nil {
		return cannedSmalltalk(mem)
	}

	var sb strings.Builder
	sb.WriteString("You are the company's friendly chat assistant. Reply in natural Japanese, 1-3 sentences, warm but professional. Never give orders, never dismiss concerns.\n")
	for _, t := range mem.Teachings {
		fmt.Fprintf(&sb, "Organizational value: %s\n", t.Statement)
	}
	if mem.Summary != "" {
		fmt.Fprintf(&sb, "Conversation so far: %s\n", mem.Summary)
	}

	msgs := make([]llm.Message, 0, 5)
	for _, t := range mem.RecentTurns {
		msgs = append(msgs, llm.Message{Role: t.Role, Content: t.Content})
	}
	if len(msgs) > 4 {
		msgs = msgs[len(msgs)-4:]
	}
	if len(msgs) == 0 || msgs[len(msgs)-1].Role != "user" {
		msgs = append(msgs, llm.Message{Role: "user", Content: "こんにちは"})
	}

	resp, err := s.deps.LLM.Complete(ctx, &llm.Request{
		System:   sb.String(),
		Messages: msgs,
		Class:    llm.ModelFast,
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		return cannedSmalltalk(mem)
	}
	return strings.TrimSpace(resp.Text)
}

func cannedSmalltalk(mem *models.MemoryContext) string {
	if mem.SenderName != "" {
		return mem.SenderName + "さん、お疲れ様です！何かお手伝いできることはありますか？"
	}
	return "お疲れ様です！何かお手伝いできることはありますか？"
}
