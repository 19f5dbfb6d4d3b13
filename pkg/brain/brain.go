// Package brain is the orchestration pipeline: ingress, memory, state,
// understanding, decision, execution and post, in that order, one invocation
// per inbound webhook.
package brain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/pkg/adminconfig"
	"github.com/wisehub-ai/wisehub/pkg/announce"
	"github.com/wisehub-ai/wisehub/pkg/audit"
	"github.com/wisehub-ai/wisehub/pkg/capability"
	"github.com/wisehub-ai/wisehub/pkg/chatwork"
	"github.com/wisehub-ai/wisehub/pkg/config"
	"github.com/wisehub-ai/wisehub/pkg/execerr"
	"github.com/wisehub-ai/wisehub/pkg/handlers"
	"github.com/wisehub-ai/wisehub/pkg/identity"
	"github.com/wisehub-ai/wisehub/pkg/llm"
	"github.com/wisehub-ai/wisehub/pkg/memory"
	"github.com/wisehub-ai/wisehub/pkg/models"
	"github.com/wisehub-ai/wisehub/pkg/opsalert"
	"github.com/wisehub-ai/wisehub/pkg/state"
	"github.com/wisehub-ai/wisehub/pkg/tracker"
)

// Canonical user lines not tied to a handler error kind.
const (
	lineCannotUnderstand = "すみません、メッセージを理解できませんでした。もう一度お願いします。"
	lineOneMoment        = "少々お待ちください。前のご依頼を処理しています。"
	lineCancelled        = "承知しました。キャンセルしました。"
	lineFlowExpired      = "前回のやり取りから時間が空いたため、最初からお願いします。"
)

// Deps wires the Brain's collaborators.
type Deps struct {
	Config       config.BrainConfig
	Registry     *capability.Registry
	Client       *ent.Client
	Memory       *memory.Loader
	States       *state.Service
	LLM          llm.Client
	Chat         chatwork.API
	AdminCfg     *adminconfig.Service
	Identity     *identity.Service
	Audit        *audit.Service
	Announce     *announce.Service
	Handlers     *handlers.Set
	Alerts       *opsalert.Service
	Tracker      *tracker.Tracker
	Redis        *redis.Client
	BotAccountID string
}

// Brain runs the full pipeline for one normalized inbound message.
type Brain struct {
	deps   Deps
	dedup  *deduper
	locks  *serialLocks
	und    *understander
	dec    *decider
	exe    *executor
	logger *slog.Logger
}

// New assembles the Brain. The registry must already be validated.
func New(deps Deps) *Brain {
	return &Brain{
		deps:   deps,
		dedup:  newDeduper(deps.Redis),
		locks:  newSerialLocks(),
		und:    newUnderstander(deps.Registry, deps.LLM, deps.Config.StrongKeywordThreshold, deps.Config.LLMFallbackCap),
		dec:    newDecider(deps.Registry, deps.Config.ConfirmThreshold, deps.Config.RecencyAffinityWindow.Std()),
		exe:    newExecutor(deps.Registry, deps.Config.HandlerTimeout.Std(), deps.Config.MaxChainDepth),
		logger: slog.Default().With("component", "brain"),
	}
}

// HandleWebhook processes one verified webhook event end to end. Semantic
// failures are absorbed (the user gets a canonical line); only catastrophic
// failures return an error to the HTTP layer.
func (b *Brain) HandleWebhook(ctx context.Context, tenantID string, event *chatwork.WebhookEvent) error {
	ctx, cancel := context.WithTimeout(ctx, b.deps.Config.RequestTimeout.Std())
	defer cancel()

	ev := event.WebhookEvent
	log := b.logger.With("tenant_id", tenantID, "room_id", ev.RoomID, "message_id", ev.MessageID)

	// Dedup precedes every other layer: a redelivery must produce zero side
	// effects and no decision log.
	if !b.dedup.firstDelivery(ctx, tenantID, ev.MessageID) {
		log.Info("Duplicate webhook, skipping")
		return nil
	}

	text, mentionsBot, hasToAll := chatwork.NormalizeBody(ev.Body, b.deps.BotAccountID)
	if !mentionsBot {
		if hasToAll {
			log.Info("toall without direct mention, ignoring")
		}
		return nil
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	user, err := b.deps.Identity.ResolveAccount(ctx, tenantID, ev.AccountID)
	if err != nil {
		if errors.Is(err, identity.ErrUnknownUser) {
			log.Warn("Message from unknown account")
			b.auditAsync(tenantID, "system", "unknown_account_rejected", "user", ev.AccountID)
			b.reply(ctx, tenantID, ev.RoomID, lineCannotUnderstand)
			return nil
		}
		return fmt.Errorf("identity resolution failed: %w", err)
	}

	key := tenantID + "/" + ev.RoomID + "/" + user.ID
	release, ok := b.locks.acquire(ctx, key, b.deps.Config.SerialWaitTimeout.Std())
	if !ok {
		b.reply(ctx, tenantID, ev.RoomID, lineOneMoment)
		return nil
	}
	defer release()

	in := &models.BrainInput{
		TenantID:   tenantID,
		RoomID:     ev.RoomID,
		MessageID:  ev.MessageID,
		AccountID:  ev.AccountID,
		UserID:     user.ID,
		SenderName: user.DisplayName,
		RoleLevel:  user.RoleLevel,
		Text:       text,
		ReceivedAt: time.Unix(ev.SendTime, 0),
	}
	b.process(ctx, in)
	return nil
}

// process runs state, memory, understanding, decision, execution and post for
// one resolved input.
func (b *Brain) process(ctx context.Context, in *models.BrainInput) {
	timings := make(map[string]int64)
	started := time.Now()

	env := models.Envelope{
		TenantID:   in.TenantID,
		RoomID:     in.RoomID,
		UserID:     in.UserID,
		AccountID:  in.AccountID,
		SenderName: in.SenderName,
		RoleLevel:  in.RoleLevel,
		Timezone:   b.deps.AdminCfg.Location(ctx, in.TenantID),
	}

	snap, expired, err := b.deps.States.Current(ctx, in.TenantID, in.RoomID, in.UserID)
	if err != nil {
		b.logger.Error("State read failed", "error", err)
		snap = &state.Snapshot{Type: state.TypeNormal}
	}

	// Cancel keywords bypass Understanding entirely.
	if snap.Type != state.TypeNormal && state.IsCancelMessage(in.Text) {
		if err := b.deps.States.Clear(ctx, in.TenantID, in.RoomID, in.UserID, state.ClearCancelled); err != nil {
			b.logger.Error("State clear failed", "error", err)
		}
		b.auditAsync(in.TenantID, in.UserID, "state_cancelled", "conversation_state", snap.ID)
		timings["total"] = time.Since(started).Milliseconds()
		b.finish(ctx, in, env, finishInput{
			intent:  "cancel",
			reply:   lineCancelled,
			success: true,
			timings: timings,
		})
		return
	}

	memStart := time.Now()
	mem := b.deps.Memory.Load(ctx, in)
	timings["memory"] = time.Since(memStart).Milliseconds()

	var notice string
	if expired {
		notice = lineFlowExpired + "\n"
	}

	// Active-flow continuation short-circuits the full pipeline.
	if snap.Type != state.TypeNormal {
		result, handled := b.continueFlow(ctx, in, env, mem, snap)
		if handled {
			b.applyStateDeltaEnv(ctx, env, result)
			timings["total"] = time.Since(started).Milliseconds()
			resolved, _ := result.Data["confirmation_resolution"].(string)
			b.finish(ctx, in, env, finishInput{
				intent:          "continuation:" + snap.Type,
				reply:           notice + result.UserMessage,
				success:         result.Success,
				errCode:         result.ErrorKind,
				confirmResolved: resolved,
				warnings:        mem.Warnings,
				timings:         timings,
			})
			return
		}
		// Continuation escalated: fall through to the full pipeline.
	}

	// A message chaining several requests runs each through its own
	// understanding and decision before the single-request pipeline sees it.
	if snap.Type == state.TypeNormal && b.processMultiAction(ctx, in, env, mem, snap, notice, timings, started) {
		return
	}

	undStart := time.Now()
	u := b.und.Understand(ctx, in.Text, mem, snap)
	timings["understanding"] = time.Since(undStart).Milliseconds()

	lastCap, recentUse := b.recentCapabilities(ctx, in.TenantID, in.UserID)

	decStart := time.Now()
	cfg, _ := b.deps.AdminCfg.Get(ctx, in.TenantID)
	var monetaryThreshold float64
	if cfg != nil {
		monetaryThreshold = cfg.MonetaryConfirmThreshold
	}
	outcome := b.dec.Decide(decideInput{
		text:              in.Text,
		understanding:     u,
		mem:               mem,
		snap:              snap,
		lastCapability:    lastCap,
		recentUse:         recentUse,
		recipientCount:    countRecipients(in.Text, u.Entities),
		monetaryThreshold: monetaryThreshold,
	})
	timings["decision"] = time.Since(decStart).Milliseconds()

	switch {
	case outcome.Refusal != nil:
		timings["total"] = time.Since(started).Milliseconds()
		b.finish(ctx, in, env, finishInput{
			intent:    u.Intent,
			und:       u,
			guardrail: "block",
			policy:    outcome.Refusal.PolicyCode,
			reply:     notice + outcome.Refusal.UserMessage,
			success:   false,
			errCode:   execerr.KindPolicyBlocked,
			warnings:  append(mem.Warnings, u.Warnings...),
			timings:   timings,
		})

	case outcome.Confirm != nil:
		b.presentConfirmation(ctx, in, outcome.Confirm)
		timings["total"] = time.Since(started).Milliseconds()
		b.finish(ctx, in, env, finishInput{
			intent:          u.Intent,
			und:             u,
			capabilityKey:   outcome.Confirm.Pending.CapabilityKey,
			guardrail:       "confirm",
			policy:          outcome.Confirm.Reason,
			reply:           notice + confirmText(outcome.Confirm),
			success:         true,
			confirmNeeded:   true,
			confirmQuestion: outcome.Confirm.Question,
			warnings:        append(mem.Warnings, u.Warnings...),
			timings:         timings,
		})

	case outcome.Plan != nil:
		execStart := time.Now()
		result, targeted := b.exe.Execute(ctx, outcome.Plan, env, mem)
		timings["execution"] = time.Since(execStart).Milliseconds()
		if targeted != nil {
			b.presentParameterQuestion(ctx, in, targeted)
			timings["total"] = time.Since(started).Milliseconds()
			b.finish(ctx, in, env, finishInput{
				intent:          u.Intent,
				und:             u,
				capabilityKey:   targeted.Pending.CapabilityKey,
				guardrail:       "confirm",
				policy:          targeted.Reason,
				reply:           notice + targeted.Question,
				success:         true,
				confirmNeeded:   true,
				confirmQuestion: targeted.Question,
				warnings:        append(mem.Warnings, u.Warnings...),
				timings:         timings,
			})
			return
		}
		b.applyStateDeltaEnv(ctx, env, result)
		reply := result.UserMessage
		reply += suggestionBlock(b.deps.Registry, outcome.Plan.CapabilityKey, result)
		timings["total"] = time.Since(started).Milliseconds()
		b.finish(ctx, in, env, finishInput{
			intent:        u.Intent,
			und:           u,
			capabilityKey: outcome.Plan.CapabilityKey,
			params:        outcome.Plan.Parameters,
			reply:         notice + reply,
			success:       result.Success,
			errCode:       result.ErrorKind,
			warnings:      append(mem.Warnings, u.Warnings...),
			timings:       timings,
		})
	}
}

// presentConfirmation serializes the pending plan into conversation state so
// it is fully reconstructable from the next message.
func (b *Brain) presentConfirmation(ctx context.Context, in *models.BrainInput, confirm *models.ConfirmationRequest) {
	planJSON, err := json.Marshal(confirm.Pending)
	if err != nil {
		b.logger.Error("Failed to serialize pending plan", "error", err)
		return
	}
	err = b.deps.States.TransitionTo(ctx, in.TenantID, in.RoomID, in.UserID, state.Delta{
		Type: state.TypeConfirmation,
		Step: "await_answer",
		Data: map[string]any{
			"plan":    string(planJSON),
			"options": confirm.Options,
			"reason":  confirm.Reason,
		},
	})
	if err != nil {
		b.logger.Error("Failed to store confirmation state", "error", err)
	}
}

// presentParameterQuestion stores a missing-parameter confirmation: the next
// message is consumed as the parameter value.
func (b *Brain) presentParameterQuestion(ctx context.Context, in *models.BrainInput, confirm *models.ConfirmationRequest) {
	planJSON, err := json.Marshal(confirm.Pending)
	if err != nil {
		b.logger.Error("Failed to serialize pending plan", "error", err)
		return
	}
	paramName := strings.TrimPrefix(confirm.Reason, "missing_parameter:")
	err = b.deps.States.TransitionTo(ctx, in.TenantID, in.RoomID, in.UserID, state.Delta{
		Type: state.TypeTaskPending,
		Step: "await_parameter",
		Data: map[string]any{
			"plan":  string(planJSON),
			"param": paramName,
		},
	})
	if err != nil {
		b.logger.Error("Failed to store parameter state", "error", err)
	}
}

// recentCapabilities loads this user's recent successful capability usage for
// the recency-affinity term.
func (b *Brain) recentCapabilities(ctx context.Context, tenantID, userID string) (string, map[string]time.Time) {
	rows, err := b.deps.Audit.RecentDecisions(ctx, tenantID, userID, b.deps.Config.RecencyAffinityWindow.Std())
	if err != nil {
		b.logger.Warn("Failed to load recent decisions", "error", err)
		return "", nil
	}
	recent := make(map[string]time.Time, len(rows))
	var lastCap string
	for _, row := range rows {
		if row.CapabilityKey == "" {
			continue
		}
		if _, seen := recent[row.CapabilityKey]; !seen {
			recent[row.CapabilityKey] = row.CreatedAt
		}
		if lastCap == "" && row.Success {
			lastCap = row.CapabilityKey
		}
	}
	return lastCap, recent
}

func confirmText(c *models.ConfirmationRequest) string {
	var sb strings.Builder
	sb.WriteString(c.Question)
	if len(c.Options) > 0 {
		sb.WriteString("\n")
		for i, opt := range c.Options {
			fmt.Fprintf(&sb, "\n%d. %s", i+1, opt)
		}
	}
	return sb.String()
}

// suggestionBlock renders up to three follow-up suggestions; chain hints from
// the descriptor fill in when the handler allowed follow-ups but supplied
// none of its own.
func suggestionBlock(registry *capability.Registry, capabilityKey string, result *models.HandlerResult) string {
	if !result.Success {
		return ""
	}
	suggestions := result.Suggestions
	if d, err := registry.Get(capabilityKey); err == nil {
		for _, hint := range d.ChainHints {
			if len(suggestions) >= 3 {
				break
			}
			if !containsStr(suggestions, hint) {
				suggestions = append(suggestions, hint)
			}
		}
	}
	if len(suggestions) == 0 {
		return ""
	}
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	var sb strings.Builder
	sb.WriteString("\n")
	for _, s := range suggestions {
		sb.WriteString("\n💡 " + s)
	}
	return sb.String()
}

func containsStr(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// reply sends a message to the room using the tenant's API token. Send
// failures are logged; there is no user-visible fallback beyond chat.
func (b *Brain) reply(ctx context.Context, tenantID, roomID, text string) {
	cfg, err := b.deps.AdminCfg.Get(ctx, tenantID)
	if err != nil {
		b.logger.Error("Cannot reply, tenant config unavailable", "tenant_id", tenantID, "error", err)
		return
	}
	if _, err := b.deps.Chat.SendMessage(ctx, cfg.ChatAPIToken, roomID, text); err != nil {
		b.logger.Error("Failed to send reply", "tenant_id", tenantID, "room_id", roomID, "error", err)
	}
}

// auditAsync writes an audit row on the tracker; audit rows tolerate seconds
// of latency.
func (b *Brain) auditAsync(tenantID, actor, action, resourceType, resourceID string) {
	b.deps.Tracker.Go("audit:"+action, func(ctx context.Context) error {
		return b.deps.Audit.Write(ctx, tenantID, actor, action, resourceType, resourceID, audit.ClassInternal)
	})
}

// parseChoice interprets a confirmation answer: yes / no / numbered choice.
func parseChoice(text string, optionCount int) (yes, no bool, choice int) {
	folded := strings.ToLower(strings.TrimSpace(text))
	for _, a := range []string{"はい", "yes", "ok", "お願い", "実行", "良い", "いいよ", "承認", "y"} {
		if folded == a || strings.HasPrefix(folded, a) {
			return true, false, 0
		}
	}
	for _, n := range []string{"いいえ", "no", "やめ", "しない", "不要", "n"} {
		if folded == n || strings.HasPrefix(folded, n) {
			return false, true, 0
		}
	}
	if n, err := strconv.Atoi(folded); err == nil && n >= 1 && n <= optionCount {
		return false, false, n
	}
	return false, false, 0
}
