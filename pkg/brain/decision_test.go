package brain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisehub-ai/wisehub/pkg/models"
	"github.com/wisehub-ai/wisehub/pkg/state"
)

func testDecider(t *testing.T) *decider {
	t.Helper()
	return newDecider(testRegistry(t), 0.7, 15*time.Minute)
}

func understandingFor(intent string, confidence float64) *models.Understanding {
	return &models.Understanding{
		Intent:     intent,
		Entities:   map[string]string{},
		Confidence: confidence,
		Scores:     map[string]float64{intent: 0.8},
	}
}

func TestDecideRefusesInsufficientRole(t *testing.T) {
	d := testDecider(t)
	out := d.Decide(decideInput{
		text:          "全社にアナウンスして",
		understanding: understandingFor("announcement_create", 0.9),
		mem:           &models.MemoryContext{RoleLevel: 1},
		snap:          &state.Snapshot{Type: state.TypeNormal},
	})

	require.NotNil(t, out.Refusal)
	assert.Equal(t, "role_level_insufficient", out.Refusal.PolicyCode)
	assert.Nil(t, out.Plan)
	assert.Nil(t, out.Confirm)
}

func TestDecideHighRiskCapabilityAlwaysConfirms(t *testing.T) {
	d := testDecider(t)
	u := understandingFor("announcement_create", 0.95)
	u.Entities["message"] = "明日の朝会は中止です"
	out := d.Decide(decideInput{
		text:          "アナウンスをお願い",
		understanding: u,
		mem:           &models.MemoryContext{RoleLevel: 3},
		snap:          &state.Snapshot{Type: state.TypeNormal},
	})

	require.NotNil(t, out.Confirm)
	assert.Equal(t, "requires_confirmation", out.Confirm.Reason)
	assert.Equal(t, "announcement_create", out.Confirm.Pending.CapabilityKey)
	assert.NotEmpty(t, out.Confirm.Question)
}

func TestDecideLowConfidenceConfirms(t *testing.T) {
	d := testDecider(t)
	out := d.Decide(decideInput{
		text:          "タスクの一覧",
		understanding: understandingFor("task_search", 0.4),
		mem:           &models.MemoryContext{RoleLevel: 1},
		snap:          &state.Snapshot{Type: state.TypeNormal},
	})

	require.NotNil(t, out.Confirm)
	assert.Equal(t, "low_confidence", out.Confirm.Reason)
}

func TestDecideRestrictedPatternBlocks(t *testing.T) {
	d := testDecider(t)
	u := understandingFor("announcement_create", 0.95)
	u.Entities["message"] = "文句を言うな、黙ってやれ"
	out := d.Decide(decideInput{
		text:          "これを周知して: 文句を言うな",
		understanding: u,
		mem:           &models.MemoryContext{RoleLevel: 5},
		snap:          &state.Snapshot{Type: state.TypeNormal},
	})

	require.NotNil(t, out.Refusal)
	assert.Contains(t, out.Refusal.PolicyCode, "value_alignment:")
}

func TestDecideSoftViolationConfirms(t *testing.T) {
	d := testDecider(t)
	u := understandingFor("announcement_create", 0.95)
	out := d.Decide(decideInput{
		text:          "やる気がない人にも周知して",
		understanding: u,
		mem:           &models.MemoryContext{RoleLevel: 5},
		snap:          &state.Snapshot{Type: state.TypeNormal},
	})

	require.NotNil(t, out.Confirm)
	assert.Contains(t, out.Confirm.Reason, "value_alignment:")
}

func TestDecideCleanRequestYieldsPlan(t *testing.T) {
	d := testDecider(t)
	out := d.Decide(decideInput{
		text:          "タスクの一覧を見せて",
		understanding: understandingFor("task_search", 0.9),
		mem:           &models.MemoryContext{RoleLevel: 1},
		snap:          &state.Snapshot{Type: state.TypeNormal},
	})

	require.NotNil(t, out.Plan)
	assert.Equal(t, "task_search", out.Plan.CapabilityKey)
	assert.True(t, out.Plan.FollowupsAllowed)
}

func TestDecideMonetaryThresholdConfirms(t *testing.T) {
	d := testDecider(t)
	u := understandingFor("task_create", 0.9)
	u.Entities["assignee"] = "田中"
	u.Entities["body"] = "備品の発注"
	u.Entities["amount"] = "¥200,000"
	out := d.Decide(decideInput{
		text:              "田中さんに備品の発注をお願いして",
		understanding:     u,
		mem:               &models.MemoryContext{RoleLevel: 2},
		snap:              &state.Snapshot{Type: state.TypeNormal},
		monetaryThreshold: 100000,
	})

	require.NotNil(t, out.Confirm)
	assert.Equal(t, "monetary_threshold", out.Confirm.Reason)
}

func TestDecideBroadRecipientsConfirms(t *testing.T) {
	d := testDecider(t)
	u := understandingFor("task_create", 0.9)
	u.Entities["assignee"] = "営業チーム"
	u.Entities["body"] = "週報の提出"
	out := d.Decide(decideInput{
		text:           "営業チームのみんなに週報のタスクをお願い",
		understanding:  u,
		mem:            &models.MemoryContext{RoleLevel: 2},
		snap:           &state.Snapshot{Type: state.TypeNormal},
		recipientCount: countRecipients("営業チームのみんなに週報のタスクをお願い", u.Entities),
	})

	require.NotNil(t, out.Confirm)
	assert.Equal(t, "broad_recipients", out.Confirm.Reason)
}

func TestCountRecipients(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		entities map[string]string
		want     int
	}{
		{
			name: "broad marker",
			text: "全員に周知してください",
			want: 3,
		},
		{
			name: "english broad marker",
			text: "please tell everyone about the meeting",
			want: 3,
		},
		{
			name:     "comma separated assignees",
			text:     "この3人にタスクをお願い",
			entities: map[string]string{"assignees": "田中、佐藤、鈴木"},
			want:     3,
		},
		{
			name:     "single assignee",
			text:     "田中さんにお願い",
			entities: map[string]string{"assignee": "田中"},
			want:     1,
		},
		{
			name: "no recipients",
			text: "タスクの一覧を見せて",
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countRecipients(tt.text, tt.entities))
		})
	}
}

func TestRankPrefersCategoryContinuity(t *testing.T) {
	d := testDecider(t)
	u := &models.Understanding{
		Intent:   "task_search",
		Entities: map[string]string{},
		Scores:   map[string]float64{"task_search": 0.5, "knowledge_query": 0.5},
	}
	winner, _ := d.rank(decideInput{
		understanding: u,
		mem:           &models.MemoryContext{RoleLevel: 1},
		snap:          &state.Snapshot{Type: state.TypeTaskPending},
	})
	require.NotNil(t, winner)
	assert.Equal(t, "task", winner.Category)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12000", 12000, true},
		{"¥12,000", 12000, true},
		{"3000円", 3000, true},
		{"1.2万", 12000, true},
		{"￥500", 500, true},
		{"そのうち", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseAmount(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 0.001, tt.in)
		}
	}
}
