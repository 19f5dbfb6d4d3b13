package brain

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisehub-ai/wisehub/pkg/capability"
	"github.com/wisehub-ai/wisehub/pkg/llm"
	"github.com/wisehub-ai/wisehub/pkg/models"
	"github.com/wisehub-ai/wisehub/pkg/state"
)

type fakeLLM struct {
	resp *llm.Response
	err  error
	last *llm.Request
}

func (f *fakeLLM) Complete(_ context.Context, req *llm.Request) (*llm.Response, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func testRegistry(t *testing.T) *capability.Registry {
	t.Helper()
	r := capability.NewRegistry()
	for _, d := range capability.Builtin() {
		require.NoError(t, r.Register(d))
	}
	return r
}

func memberMemory() *models.MemoryContext {
	return &models.MemoryContext{RoleLevel: 1}
}

func TestUnderstandKeywordFallbackOnLLMError(t *testing.T) {
	u := newUnderstander(testRegistry(t), &fakeLLM{err: fmt.Errorf("service down")}, 0.6, 0.6)

	out := u.Understand(context.Background(), "残っているタスクの一覧を確認", memberMemory(), &state.Snapshot{Type: state.TypeNormal})

	assert.Equal(t, "task_search", out.Intent)
	assert.LessOrEqual(t, out.Confidence, 0.6)
	assert.Contains(t, out.Warnings, "llm_fallback")
	assert.True(t, out.NeedsConfirmHint, "capped confidence must lean toward confirmation")
}

func TestUnderstandAgreementTakesHigherConfidence(t *testing.T) {
	f := &fakeLLM{resp: &llm.Response{
		Text: `{"intent": "task_search", "entities": {}, "urgency": "normal", "confidence": 0.92, "reasoning": "task listing request"}`,
	}}
	u := newUnderstander(testRegistry(t), f, 0.6, 0.6)

	out := u.Understand(context.Background(), "残っているタスクの一覧を確認", memberMemory(), &state.Snapshot{Type: state.TypeNormal})

	assert.Equal(t, "task_search", out.Intent)
	assert.True(t, out.LLMAgrees)
	assert.InDelta(t, 0.92, out.Confidence, 0.01)
	require.NotNil(t, f.last)
	assert.True(t, f.last.JSONOnly)
}

func TestUnderstandRecordsTokenUsage(t *testing.T) {
	f := &fakeLLM{resp: &llm.Response{
		Text:      `{"intent": "task_search", "entities": {}, "urgency": "normal", "confidence": 0.9, "reasoning": "task listing request"}`,
		TokensIn:  412,
		TokensOut: 57,
		ModelID:   "primary-1",
	}}
	u := newUnderstander(testRegistry(t), f, 0.6, 0.6)

	out := u.Understand(context.Background(), "残っているタスクの一覧を確認", memberMemory(), &state.Snapshot{Type: state.TypeNormal})

	// Usage flows through to the decision log row.
	assert.Equal(t, 412, out.TokensIn)
	assert.Equal(t, 57, out.TokensOut)
	assert.Equal(t, "primary-1", out.ModelID)
}

func TestUnderstandConfidentLLMOverridesWeakKeywords(t *testing.T) {
	f := &fakeLLM{resp: &llm.Response{
		Text: `{"intent": "knowledge_query", "entities": {"query": "経費精算"}, "urgency": "normal", "confidence": 0.8, "reasoning": "asks about a procedure"}`,
	}}
	u := newUnderstander(testRegistry(t), f, 0.6, 0.6)

	out := u.Understand(context.Background(), "これどうすればいい？", memberMemory(), &state.Snapshot{Type: state.TypeNormal})

	assert.Equal(t, "knowledge_query", out.Intent)
	assert.Equal(t, "経費精算", out.Entities["query"])
	assert.True(t, out.NeedsConfirmHint, "penalized override stays below the confirm threshold")
}

func TestUnderstandUnknownLLMIntentBecomesSmalltalk(t *testing.T) {
	f := &fakeLLM{resp: &llm.Response{
		Text: `{"intent": "order_pizza", "entities": {}, "urgency": "normal", "confidence": 0.95, "reasoning": ""}`,
	}}
	u := newUnderstander(testRegistry(t), f, 0.6, 0.6)

	out := u.Understand(context.Background(), "よろしく", memberMemory(), &state.Snapshot{Type: state.TypeNormal})

	// An invented capability must never reach Decision.
	assert.Contains(t, []string{"smalltalk", out.KeywordTop}, out.Intent)
	_, err := testRegistry(t).Get(out.Intent)
	assert.NoError(t, err)
}

func TestKeywordScoreAppliesNegativeKeywords(t *testing.T) {
	r := testRegistry(t)
	search, err := r.Get("task_search")
	require.NoError(t, err)

	with := keywordScore("タスクを確認", search)
	against := keywordScore("タスクを作成して", search)
	assert.Greater(t, with, against, "negative keyword must depress the score")
}

func TestResolveAmbiguitiesPriorityOrder(t *testing.T) {
	mem := &models.MemoryContext{
		RecentTurns: []models.Turn{{Role: "assistant", Content: "「月次報告書」のタスクを作成しました"}},
		Tasks:       []models.TaskRef{{ID: "t1", Body: "棚卸しの準備"}},
	}

	withState := resolveAmbiguities("それを完了にして", &state.Snapshot{
		Type: state.TypeTaskPending,
		Data: map[string]any{"subject": "請求書の確認"},
	}, mem)
	require.Len(t, withState, 1)
	assert.Equal(t, "state_data", withState[0].Source)
	assert.Equal(t, "請求書の確認", withState[0].ResolvedTo)

	withoutState := resolveAmbiguities("それを完了にして", &state.Snapshot{Type: state.TypeNormal}, mem)
	require.Len(t, withoutState, 1)
	assert.Equal(t, "last_turn", withoutState[0].Source)
	assert.Equal(t, "月次報告書", withoutState[0].ResolvedTo)
}

func TestConfirmHintMissingRequiredEntity(t *testing.T) {
	u := newUnderstander(testRegistry(t), nil, 0.6, 0.6)
	out := &models.Understanding{
		Intent:     "task_complete",
		Entities:   map[string]string{},
		Confidence: 0.9,
	}
	assert.True(t, u.confirmHint("タスク完了", out, 0.5, memberMemory()))

	out.Entities["task_id"] = "t1"
	assert.False(t, u.confirmHint("タスク完了", out, 0.5, memberMemory()))
}
