package chatwork

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// WebhookEvent is the decoded inbound webhook body.
type WebhookEvent struct {
	WebhookEventType string `json:"webhook_event_type"`
	WebhookEvent     struct {
		MessageID string `json:"message_id"`
		RoomID    string `json:"room_id"`
		AccountID string `json:"account_id"`
		Body      string `json:"body"`
		SendTime  int64  `json:"send_time"`
	} `json:"webhook_event"`
}

// VerifySignature checks the webhook signature header: base64(HMAC-SHA256 of
// the raw body keyed by the base64-decoded per-tenant secret). Comparison is
// constant-time.
func VerifySignature(secretB64 string, body []byte, signatureB64 string) error {
	secret, err := base64.StdEncoding.DecodeString(secretB64)
	if err != nil {
		return fmt.Errorf("webhook secret is not valid base64: %w", err)
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	expected := mac.Sum(nil)

	provided, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return fmt.Errorf("signature is not valid base64: %w", err)
	}
	if !hmac.Equal(expected, provided) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}

var (
	mentionTag = regexp.MustCompile(`\[To:(\d+)\]\s*[^\s\[]*`)
	replyTag   = regexp.MustCompile(`\[rp aid=\d+[^\]]*\]`)
	toAllTag   = regexp.MustCompile(`\[toall\]`)
	piconTag   = regexp.MustCompile(`\[picon:\d+\]`)
	quoteBlock = regexp.MustCompile(`(?s)\[qt\].*?\[/qt\]`)
)

// NormalizeBody strips chat markup from a message body and reports mention
// metadata. toall without a direct mention of the bot is rejected upstream.
func NormalizeBody(body, botAccountID string) (text string, mentionsBot, hasToAll bool) {
	hasToAll = toAllTag.MatchString(body)
	for _, m := range mentionTag.FindAllStringSubmatch(body, -1) {
		if m[1] == botAccountID {
			mentionsBot = true
		}
	}

	text = quoteBlock.ReplaceAllString(body, " ")
	text = mentionTag.ReplaceAllString(text, " ")
	text = replyTag.ReplaceAllString(text, " ")
	text = toAllTag.ReplaceAllString(text, " ")
	text = piconTag.ReplaceAllString(text, " ")
	text = strings.Join(strings.Fields(text), " ")
	return text, mentionsBot, hasToAll
}
