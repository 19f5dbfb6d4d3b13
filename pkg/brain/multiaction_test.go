package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecomposeActions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "japanese sequence marker",
			text: "田中さんにタスクをお願いして、それから私のタスク一覧を見せて",
			want: []string{"田中さんにタスクをお願いして", "私のタスク一覧を見せて"},
		},
		{
			name: "sorekara and atoha",
			text: "経費精算の手順を教えて その後 タスクを確認 あとは目標も見たい",
			want: []string{"経費精算の手順を教えて", "タスクを確認", "目標も見たい"},
		},
		{
			name: "english then",
			text: "create a task for Tanaka, then show my open tasks",
			want: []string{"create a task for Tanaka", "show my open tasks"},
		},
		{
			name: "single request stays whole",
			text: "タスクの一覧を見せて",
			want: nil,
		},
		{
			name: "capped at three segments",
			text: "Aをして それから Bをして それから Cをして それから Dをして",
			want: []string{"Aをして", "Bをして", "Cをして"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decomposeActions(tt.text))
		})
	}
}
