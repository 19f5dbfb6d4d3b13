package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCancelMessage(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"キャンセル", true},
		{"やめる", true},
		{" 中止 ", true},
		{"cancel", true},
		{"Cancel", true},
		{"CANCEL", true},
		{"ｃａｎｃｅｌ", true},
		{"never mind", true},
		{"タスクをキャンセルして", false}, // keyword inside a sentence is not a bare cancel
		{"please cancel the meeting", false},
		{"", false},
		{"ok", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCancelMessage(tt.text))
		})
	}
}

func TestFoldWidth(t *testing.T) {
	assert.Equal(t, "cancel 123", foldWidth("ＣＡＮＣＥＬ　１２３"))
	assert.Equal(t, "abc", foldWidth("abc"))
}
