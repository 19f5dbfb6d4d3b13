package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPreference(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		tone     string
		settings map[string]any
		ok       bool
	}{
		{
			name: "drop honorifics",
			in:   "今後は敬語はいらないよ",
			tone: "casual",
			ok:   true,
		},
		{
			name: "formal from now on",
			in:   "次からは丁寧な言葉でお願いします",
			tone: "formal",
			ok:   true,
		},
		{
			name:     "shorter replies",
			in:       "これからは簡潔に答えて",
			settings: map[string]any{"reply_length": "short"},
			ok:       true,
		},
		{
			name:     "no emoji",
			in:       "今後、絵文字は不要です",
			settings: map[string]any{"emoji": false},
			ok:       true,
		},
		{
			name: "style word without directive is ignored",
			in:   "敬語の使い方について教えて",
			ok:   false,
		},
		{
			name: "directive without style content is ignored",
			in:   "今後の予定を教えて",
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tone, settings, ok := detectPreference(tt.in)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.tone, tone)
			for k, v := range tt.settings {
				assert.Equal(t, v, settings[k], k)
			}
		})
	}
}
