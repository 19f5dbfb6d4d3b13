package scrub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_RemovesIdentifiers(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"email", "contact taro@example.co.jp please", "contact [email] please"},
		{"phone", "call 03-1234-5678 now", "call [phone] now"},
		{"mention tag", "[To:1234567] please check", "[account] please check"},
		{"long digits", "account 123456789012", "account [number]"},
		{"path", "see /var/log/app/error.log", "see [path]"},
		{"clean text", "create a task for tomorrow", "create a task for tomorrow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Text(tt.in))
		})
	}
}

func TestExcerpt_Truncates(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	long := "あいうえおかきくけこさしすせそたちつてと"
	got := s.Excerpt(long, 10)
	assert.Equal(t, "あいうえおかきくけこ…", got)

	assert.Equal(t, "short", s.Excerpt("  short  ", 120))
}

func TestParams_ScrubsNestedValues(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	in := map[string]any{
		"assignee": "taro@example.com",
		"count":    3,
		"nested":   map[string]any{"phone": "090-1111-2222"},
		"list":     []string{"ok", "mail me at x@y.io"},
	}
	out := s.Params(in)

	assert.Equal(t, "[email]", out["assignee"])
	assert.Equal(t, 3, out["count"])
	assert.Equal(t, "[phone]", out["nested"].(map[string]any)["phone"])
	assert.Equal(t, "mail me at [email]", out["list"].([]string)[1])
}
