package brain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wisehub-ai/wisehub/pkg/models"
	"github.com/wisehub-ai/wisehub/pkg/state"
)

// multiMarkers separate sequential requests inside one message.
var multiMarkers = []string{
	"それから", "その後", "あとは", "それと", "また、",
	" and then ", " and also ", ", then ",
}

// decomposeActions splits a message into up to three sequential request
// segments. Returns nil when the message reads as a single request.
func decomposeActions(text string) []string {
	segments := []string{text}
	for _, m := range multiMarkers {
		var next []string
		for _, seg := range segments {
			for _, p := range strings.Split(seg, m) {
				p = strings.Trim(strings.TrimSpace(p), "、。,.")
				if p != "" {
					next = append(next, p)
				}
			}
		}
		segments = next
	}
	if len(segments) < 2 {
		return nil
	}
	if len(segments) > 3 {
		segments = segments[:3]
	}
	return segments
}

// processMultiAction handles a message carrying several sequential requests.
// Each segment gets its own understanding and decision; the chain only forms
// when every segment yields a clean plan, so confirmation gates and refusals
// keep their single-request behavior. Results combine into one numbered
// reply; a failure parks the remaining plans in conversation state and asks
// before continuing.
func (b *Brain) processMultiAction(ctx context.Context, in *models.BrainInput, env models.Envelope, mem *models.MemoryContext, snap *state.Snapshot, notice string, timings map[string]int64, started time.Time) bool {
	segments := decomposeActions(in.Text)
	if segments == nil {
		return false
	}

	lastCap, recentUse := b.recentCapabilities(ctx, in.TenantID, in.UserID)
	cfg, _ := b.deps.AdminCfg.Get(ctx, in.TenantID)
	var monetaryThreshold float64
	if cfg != nil {
		monetaryThreshold = cfg.MonetaryConfirmThreshold
	}

	undStart := time.Now()
	var firstUnd *models.Understanding
	plans := make([]models.ExecutionPlan, 0, len(segments))
	for _, seg := range segments {
		u := b.und.Understand(ctx, seg, mem, snap)
		outcome := b.dec.Decide(decideInput{
			text:              seg,
			understanding:     u,
			mem:               mem,
			snap:              snap,
			lastCapability:    lastCap,
			recentUse:         recentUse,
			recipientCount:    countRecipients(seg, u.Entities),
			monetaryThreshold: monetaryThreshold,
		})
		if outcome.Plan == nil {
			// A segment that needs a confirmation or refusal disqualifies the
			// chain; the full pipeline handles the message as one request.
			return false
		}
		if firstUnd == nil {
			firstUnd = u
		}
		plans = append(plans, *outcome.Plan)
	}
	timings["understanding"] = time.Since(undStart).Milliseconds()

	execStart := time.Now()
	var lines []string
	for i := range plans {
		result, targeted := b.exe.Execute(ctx, &plans[i], env, mem)
		if targeted != nil {
			b.presentParameterQuestionEnv(ctx, env, targeted)
			reply := strings.Join(append(lines, targeted.Question), "\n")
			if i+1 < len(plans) {
				reply += "\n残りのご依頼は、こちらの回答後に改めてお願いします。"
			}
			timings["execution"] = time.Since(execStart).Milliseconds()
			timings["total"] = time.Since(started).Milliseconds()
			b.finish(ctx, in, env, finishInput{
				intent:          "multi_action",
				und:             firstUnd,
				capabilityKey:   targeted.Pending.CapabilityKey,
				guardrail:       "confirm",
				policy:          targeted.Reason,
				reply:           notice + reply,
				success:         true,
				confirmNeeded:   true,
				confirmQuestion: targeted.Question,
				warnings:        mem.Warnings,
				timings:         timings,
			})
			return true
		}

		lines = append(lines, fmt.Sprintf("%d. %s", i+1, result.UserMessage))

		if result.StateDelta != nil {
			// The handler opened its own flow; the rest of the chain would
			// fight it for the conversation state.
			b.applyStateDeltaEnv(ctx, env, result)
			if i+1 < len(plans) {
				lines = append(lines, "残りのご依頼は、こちらが終わってから改めてお願いします。")
			}
			timings["execution"] = time.Since(execStart).Milliseconds()
			timings["total"] = time.Since(started).Milliseconds()
			b.finish(ctx, in, env, finishInput{
				intent:        "multi_action",
				und:           firstUnd,
				capabilityKey: plans[i].CapabilityKey,
				reply:         notice + strings.Join(lines, "\n"),
				success:       result.Success,
				errCode:       result.ErrorKind,
				warnings:      mem.Warnings,
				timings:       timings,
			})
			return true
		}

		if !result.Success {
			if rest := plans[i+1:]; len(rest) > 0 {
				b.queueRemaining(ctx, env, rest)
				lines = append(lines, "残りのご依頼を続けますか？（はい／いいえ）")
			}
			timings["execution"] = time.Since(execStart).Milliseconds()
			timings["total"] = time.Since(started).Milliseconds()
			b.finish(ctx, in, env, finishInput{
				intent:        "multi_action",
				und:           firstUnd,
				capabilityKey: plans[i].CapabilityKey,
				reply:         notice + strings.Join(lines, "\n"),
				success:       false,
				errCode:       result.ErrorKind,
				warnings:      mem.Warnings,
				timings:       timings,
			})
			return true
		}
	}
	timings["execution"] = time.Since(execStart).Milliseconds()

	timings["total"] = time.Since(started).Milliseconds()
	b.finish(ctx, in, env, finishInput{
		intent:        "multi_action",
		und:           firstUnd,
		capabilityKey: plans[0].CapabilityKey,
		reply:         notice + strings.Join(lines, "\n"),
		success:       true,
		warnings:      mem.Warnings,
		timings:       timings,
	})
	return true
}

// queueRemaining parks not-yet-executed plans in conversation state.
func (b *Brain) queueRemaining(ctx context.Context, env models.Envelope, rest []models.ExecutionPlan) {
	restJSON, err := json.Marshal(rest)
	if err == nil {
		err = b.deps.States.TransitionTo(ctx, env.TenantID, env.RoomID, env.UserID, state.Delta{
			Type: state.TypeMultiAction,
			Step: "queued",
			Data: map[string]any{"plans": string(restJSON)},
		})
	}
	if err != nil {
		b.logger.Error("Failed to queue remaining actions", "error", err)
	}
}
