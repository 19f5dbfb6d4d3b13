package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisehub-ai/wisehub/pkg/models"
	"github.com/wisehub-ai/wisehub/pkg/state"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in     string
		yes    bool
		no     bool
		choice int
	}{
		{"はい", true, false, 0},
		{"はい、お願いします", true, false, 0},
		{"yes", true, false, 0},
		{"OK", true, false, 0},
		{"いいえ", false, true, 0},
		{"no thanks", false, true, 0},
		{"不要です", false, true, 0},
		{"2", false, false, 2},
		{"5", false, false, 0}, // Out of range
		{"うーん、どうしよう", false, false, 0},
	}
	for _, tt := range tests {
		yes, no, choice := parseChoice(tt.in, 3)
		assert.Equal(t, tt.yes, yes, tt.in)
		assert.Equal(t, tt.no, no, tt.in)
		assert.Equal(t, tt.choice, choice, tt.in)
	}
}

func TestPendingPlanRoundTrip(t *testing.T) {
	snap := &state.Snapshot{
		Type: state.TypeConfirmation,
		Data: map[string]any{
			"plan": `{"capability_key": "task_create", "parameters": {"body": "資料送付"}, "confidence": 0.8}`,
		},
	}
	plan, ok := pendingPlan(snap)
	require.True(t, ok)
	assert.Equal(t, "task_create", plan.CapabilityKey)
	assert.Equal(t, "資料送付", plan.Parameters["body"])

	_, ok = pendingPlan(&state.Snapshot{Type: state.TypeConfirmation, Data: map[string]any{}})
	assert.False(t, ok)

	_, ok = pendingPlan(&state.Snapshot{Type: state.TypeConfirmation, Data: map[string]any{"plan": "{broken"}})
	assert.False(t, ok)
}

func TestStateOptionsHandlesJSONRoundTrip(t *testing.T) {
	// State data goes through JSON persistence, so slices come back as []any.
	snap := &state.Snapshot{Data: map[string]any{
		"options": []any{"はい", "いいえ", "task_search"},
	}}
	assert.Equal(t, []string{"はい", "いいえ", "task_search"}, stateOptions(snap))

	snap.Data["options"] = []string{"はい"}
	assert.Equal(t, []string{"はい"}, stateOptions(snap))

	assert.Nil(t, stateOptions(&state.Snapshot{Data: map[string]any{}}))
}

func TestSuggestionBlockCapsAtThree(t *testing.T) {
	registry := testRegistry(t)
	result := &models.HandlerResult{
		Success:     true,
		Suggestions: []string{"a", "b", "c", "d"},
	}
	block := suggestionBlock(registry, "task_search", result)
	assert.Contains(t, block, "a")
	assert.Contains(t, block, "c")
	assert.NotContains(t, block, "d")
}

func TestSuggestionBlockFillsFromChainHints(t *testing.T) {
	registry := testRegistry(t)

	block := suggestionBlock(registry, "task_search", &models.HandlerResult{Success: true})
	assert.Contains(t, block, "リマインダー", "chain hints stand in when the handler offers none")

	assert.Empty(t, suggestionBlock(registry, "task_search", &models.HandlerResult{}),
		"no suggestions after a failed execution")
}
