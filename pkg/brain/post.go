package brain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wisehub-ai/wisehub/pkg/audit"
	"github.com/wisehub-ai/wisehub/pkg/llm"
	"github.com/wisehub-ai/wisehub/pkg/models"
)

// finishInput is everything the post layer records and sends for one
// invocation.
type finishInput struct {
	intent          string
	und             *models.Understanding
	capabilityKey   string
	params          map[string]any
	guardrail       string
	policy          string
	reply           string
	success         bool
	errCode         string
	confirmNeeded   bool
	confirmQuestion string
	confirmResolved string
	warnings        []string
	timings         map[string]int64
}

// finish is the post layer: send the reply, write exactly one decision log
// row, append the dialogue turns, and trigger summarization past the
// threshold. The decision log write is inline; losing it is worse than adding
// latency.
func (b *Brain) finish(ctx context.Context, in *models.BrainInput, env models.Envelope, fi finishInput) {
	if fi.reply != "" {
		b.reply(ctx, in.TenantID, in.RoomID, fi.reply)
	}

	rec := &audit.DecisionRecord{
		TenantID:             in.TenantID,
		UserID:               in.UserID,
		RoomID:               in.RoomID,
		Message:              in.Text,
		Intent:               fi.intent,
		CapabilityKey:        fi.capabilityKey,
		Parameters:           fi.params,
		GuardrailAction:      fi.guardrail,
		PolicyReason:         fi.policy,
		Success:              fi.success,
		ErrorCode:            fi.errCode,
		TimingsMS:            fi.timings,
		ConfirmationNeeded:   fi.confirmNeeded,
		ConfirmationQuestion: fi.confirmQuestion,
		ConfirmationResolved: fi.confirmResolved,
		Warnings:             fi.warnings,
	}
	if fi.und != nil {
		rec.Confidence = fi.und.Confidence
		rec.IntentConfidence = fi.und.Confidence
		rec.ParameterConfidence = fi.und.KeywordScore
		rec.TokensIn = fi.und.TokensIn
		rec.TokensOut = fi.und.TokensOut
		rec.ModelID = fi.und.ModelID
	}
	if err := b.deps.Audit.WriteDecision(ctx, rec); err != nil {
		b.logger.Error("Failed to write decision log",
			"tenant_id", in.TenantID, "room_id", in.RoomID, "error", err)
	}

	userText, replyText := in.Text, fi.reply
	tenantID, roomID, userID := in.TenantID, in.RoomID, in.UserID
	if tone, settings, ok := detectPreference(userText); ok {
		b.deps.Tracker.Go("post:preference", func(ctx context.Context) error {
			return b.deps.Memory.RecordPreference(ctx, tenantID, userID, tone, settings)
		})
	}
	b.deps.Tracker.Go("post:turns", func(ctx context.Context) error {
		if err := b.deps.Memory.AppendTurn(ctx, tenantID, roomID, userID, "user", userText); err != nil {
			return err
		}
		if replyText != "" {
			if err := b.deps.Memory.AppendTurn(ctx, tenantID, roomID, userID, "assistant", replyText); err != nil {
				return err
			}
		}
		return b.maybeSummarize(ctx, tenantID, roomID, userID)
	})
}

// detectPreference spots explicit style feedback and converts it into a
// durable preference. A directive marker is required so that a passing
// mention of a style word does not rewrite someone's settings.
func detectPreference(text string) (tone string, settings map[string]any, ok bool) {
	folded := strings.ToLower(text)
	directive := false
	for _, marker := range []string{"今後", "次から", "これから", "以後", "いつも", "from now on", "always"} {
		if strings.Contains(folded, marker) {
			directive = true
			break
		}
	}
	if !directive {
		return "", nil, false
	}

	negated := strings.Contains(folded, "いらない") ||
		strings.Contains(folded, "不要") ||
		strings.Contains(folded, "なしで") ||
		strings.Contains(folded, "やめて")

	switch {
	case strings.Contains(folded, "敬語") && negated:
		tone = "casual"
	case strings.Contains(folded, "カジュアル") || strings.Contains(folded, "タメ口") || strings.Contains(folded, "フランク"):
		tone = "casual"
	case strings.Contains(folded, "敬語") || strings.Contains(folded, "丁寧"):
		tone = "formal"
	}

	settings = map[string]any{}
	switch {
	case strings.Contains(folded, "簡潔") || strings.Contains(folded, "短く") || strings.Contains(folded, "手短"):
		settings["reply_length"] = "short"
	case strings.Contains(folded, "詳しく") || strings.Contains(folded, "詳細"):
		settings["reply_length"] = "detailed"
	}
	if strings.Contains(folded, "絵文字") {
		settings["emoji"] = !negated
	}

	if tone == "" && len(settings) == 0 {
		return "", nil, false
	}
	return tone, settings, true
}

// maybeSummarize folds unsummarized turns into the rolling summary once their
// count passes the trigger. Runs on the tracker, never on the request path.
func (b *Brain) maybeSummarize(ctx context.Context, tenantID, roomID, userID string) error {
	n, err := b.deps.Memory.UnsummarizedCount(ctx, tenantID, roomID, userID)
	if err != nil {
		return err
	}
	if n < b.deps.Config.SummaryTriggerTurns {
		return nil
	}

	turns, err := b.deps.Memory.UnsummarizedTurns(ctx, tenantID, roomID, userID, 50)
	if err != nil {
		return err
	}
	if len(turns) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("次の会話を日本語で3文以内に要約してください。決定事項と未解決の依頼を優先してください。\n\n")
	for _, t := range turns {
		fmt.Fprintf(&sb, "%s: %s\n", t.Role, t.Content)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	resp, err := b.deps.LLM.Complete(ctx, &llm.Request{
		Messages: []llm.Message{{Role: "user", Content: sb.String()}},
		Class:    llm.ModelFast,
	})
	if err != nil {
		return fmt.Errorf("summarization failed: %w", err)
	}
	summary := strings.TrimSpace(resp.Text)
	if summary == "" {
		return nil
	}

	ids := make([]string, len(turns))
	for i, t := range turns {
		ids[i] = t.ID
	}
	return b.deps.Memory.ReplaceSummary(ctx, tenantID, roomID, userID, summary, ids)
}
