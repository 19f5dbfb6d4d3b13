package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wisehub-ai/wisehub/ent"
)

func TestNameTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			// Katakana runs come out too; the LIKE match against the person
			// table discards non-names.
			name: "kanji name in sentence",
			text: "田中さんにタスクをお願いして",
			want: []string{"田中", "タスク"},
		},
		{
			name: "katakana and latin",
			text: "サトウ and Tanaka please",
			want: []string{"サトウ", "and", "Tanaka", "please"},
		},
		{
			name: "single-rune tokens dropped",
			text: "あ x 木",
			want: nil,
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nameTokens(tt.text))
		})
	}
}

func TestNameTokensCapped(t *testing.T) {
	text := "営業 経理 総務 開発 広報 人事 法務 企画 物流 購買"
	assert.Len(t, nameTokens(text), 8)
}

func TestRelevantTeachings(t *testing.T) {
	// Rows arrive priority-sorted from the query.
	rows := []*ent.CeoTeaching{
		{ID: "t1", Statement: "経費精算は週末までに承認する", Priority: 9},
		{ID: "t2", Statement: "タスクの依頼には期限を必ず付ける", Priority: 5},
		{ID: "t3", Statement: "挨拶は元気よく", Priority: 3},
	}

	got := relevantTeachings(rows, "田中さんにタスクをお願いして", 2)
	assert.Len(t, got, 2)
	assert.Equal(t, "t2", got[0].ID, "statement sharing a message token ranks first")
	assert.Equal(t, "t1", got[1].ID, "remaining slots fill in priority order")

	got = relevantTeachings(rows, "おはようございます", 5)
	assert.Len(t, got, 3, "limit never exceeds the row count")
	assert.Equal(t, "t1", got[0].ID)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c\\d`, escapeLike(`c\d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
