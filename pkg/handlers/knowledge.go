package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/wisehub-ai/wisehub/pkg/execerr"
	"github.com/wisehub-ai/wisehub/pkg/flags"
	"github.com/wisehub-ai/wisehub/pkg/llm"
	"github.com/wisehub-ai/wisehub/pkg/models"
)

// KnowledgeQuery answers a question from the ingested knowledge base:
// retrieve through the lazy memory fetcher, then ground the answer with the
// fast model.
func (s *Set) KnowledgeQuery(ctx context.Context, params map[string]any, env models.Envelope, mem *models.MemoryContext) (*models.HandlerResult, error) {
	if s.deps.Flags != nil && !s.deps.Flags.Enabled(ctx, env.TenantID, flags.FlagKnowledgeSearch) {
		return &models.HandlerResult{
			Success:     true,
			UserMessage: "ナレッジ検索は現在利用できません。",
		}, nil
	}
	query, _ := params["query"].(string)

	var snippets []models.KnowledgeSnippet
	if mem.Knowledge != nil {
		var err error
		snippets, err = mem.Knowledge(ctx, query, 5)
		if err != nil {
			return nil, execerr.New(execerr.KindUpstreamUnavailable, err)
		}
	}
	if len(snippets) == 0 {
		return &models.HandlerResult{
			Success:     true,
			UserMessage: "該当する社内ドキュメントが見つかりませんでした。担当部署にお問い合わせください。",
		}, nil
	}

	answer, err := s.groundedAnswer(ctx, query, snippets)
	if err != nil {
		// Retrieval succeeded; fall back to quoting the best chunk.
		answer = "関連するドキュメントが見つかりました。\n---\n" + snippets[0].Content
	}
	return &models.HandlerResult{
		Success:     true,
		UserMessage: answer,
		Data:        map[string]any{"chunks": len(snippets)},
		Suggestions: []string{"関連ドキュメントも検索しますか？"},
	}, nil
}

func (s *Set) groundedAnswer(ctx context.Context, query string, snippets []models.KnowledgeSnippet) (string, error) {
	if s.deps.LLM == nil {
		return "", fmt.Errorf("llm not configured")
	}
	var sb strings.Builder
	sb.WriteString("社内ドキュメントの抜粋だけを根拠に、日本語で簡潔に回答してください。抜粋にない内容は「わかりません」と答えてください。\n\n")
	for i, sn := range snippets {
		fmt.Fprintf(&sb, "[%d] %s\n%s\n\n", i+1, sn.Title, sn.Content)
	}
	fmt.Fprintf(&sb, "質問: %s", query)

	resp, err := s.deps.LLM.Complete(ctx, &llm.Request{
		Messages: []llm.Message{{Role: "user", Content: sb.String()}},
		Class:    llm.ModelFast,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}
