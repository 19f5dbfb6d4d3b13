package chatwork

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secretB64 string, body []byte) string {
	t.Helper()
	secret, err := base64.StdEncoding.DecodeString(secretB64)
	require.NoError(t, err)
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := base64.StdEncoding.EncodeToString([]byte("webhook-secret"))
	body := []byte(`{"webhook_event_type":"mention_to_me"}`)

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, VerifySignature(secret, body, sign(t, secret, body)))
	})

	t.Run("tampered body", func(t *testing.T) {
		sig := sign(t, secret, body)
		assert.Error(t, VerifySignature(secret, []byte(`{}`), sig))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := base64.StdEncoding.EncodeToString([]byte("other"))
		assert.Error(t, VerifySignature(secret, body, sign(t, other, body)))
	})

	t.Run("garbage signature", func(t *testing.T) {
		assert.Error(t, VerifySignature(secret, body, "!!not-base64!!"))
	})
}

func TestNormalizeBody(t *testing.T) {
	const bot = "999"

	tests := []struct {
		name        string
		body        string
		wantText    string
		wantMention bool
		wantToAll   bool
	}{
		{
			name:        "mention with text",
			body:        "[To:999]WiseHub タスクを教えて",
			wantText:    "タスクを教えて",
			wantMention: true,
		},
		{
			name:      "toall without bot mention",
			body:      "[toall] 皆さんお疲れ様です",
			wantText:  "皆さんお疲れ様です",
			wantToAll: true,
		},
		{
			name:        "toall with bot mention",
			body:        "[toall][To:999]Bot 周知お願い",
			wantText:    "周知お願い",
			wantMention: true,
			wantToAll:   true,
		},
		{
			name:        "reply and quote stripped",
			body:        "[rp aid=123 to=1-1][qt]quoted stuff[/qt] 了解です [To:999]Bot",
			wantText:    "了解です",
			wantMention: true,
		},
		{
			name:        "other user mention",
			body:        "[To:123]Taro これお願い",
			wantText:    "これお願い",
			wantMention: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, mentionsBot, hasToAll := NormalizeBody(tt.body, bot)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantMention, mentionsBot)
			assert.Equal(t, tt.wantToAll, hasToAll)
		})
	}
}
