package brain

import (
	"context"
	"encoding/json"

	"github.com/wisehub-ai/wisehub/pkg/execerr"
	"github.com/wisehub-ai/wisehub/pkg/models"
	"github.com/wisehub-ai/wisehub/pkg/state"
)

// continueFlow routes a message into the active flow. The second return is
// false when the flow cannot consume the message and the full pipeline should
// run instead.
func (b *Brain) continueFlow(ctx context.Context, in *models.BrainInput, env models.Envelope, mem *models.MemoryContext, snap *state.Snapshot) (*models.HandlerResult, bool) {
	switch snap.Type {
	case state.TypeConfirmation:
		return b.continueConfirmation(ctx, in, env, mem, snap)
	case state.TypeTaskPending:
		return b.continueParameter(ctx, env, mem, snap, in.Text)
	case state.TypeAnnouncement:
		return b.flowResult(b.deps.Announce.Continue(ctx, env, snap, in.Text))
	case state.TypeGoalSetting:
		return b.flowResult(b.deps.Handlers.ContinueGoalSetting(ctx, env, snap, in.Text))
	case state.TypeMultiAction:
		return b.continueMultiAction(ctx, env, mem, snap, in.Text)
	}
	b.logger.Warn("Unknown state type, clearing", "state_type", snap.Type)
	_ = b.deps.States.Clear(ctx, env.TenantID, env.RoomID, env.UserID, state.ClearSuperseded)
	return nil, false
}

// flowResult normalizes a continuation handler's (result, error) pair into
// the pipeline contract.
func (b *Brain) flowResult(result *models.HandlerResult, err error) (*models.HandlerResult, bool) {
	if err != nil {
		kind := execerr.KindOf(err)
		b.logger.Error("Flow continuation failed", "error", err, "kind", kind)
		return &models.HandlerResult{
			Success:     false,
			UserMessage: execerr.UserLine(kind),
			ErrorKind:   kind,
		}, true
	}
	return result, true
}

// continueConfirmation resolves a pending plan from the stored state: yes
// executes it, no abandons it, a numbered choice picks an option, anything
// else re-asks once and otherwise falls through to the full pipeline.
func (b *Brain) continueConfirmation(ctx context.Context, in *models.BrainInput, env models.Envelope, mem *models.MemoryContext, snap *state.Snapshot) (*models.HandlerResult, bool) {
	plan, ok := pendingPlan(snap)
	if !ok {
		b.logger.Error("Confirmation state without reconstructable plan")
		_ = b.deps.States.Clear(ctx, env.TenantID, env.RoomID, env.UserID, state.ClearSuperseded)
		return nil, false
	}
	options := stateOptions(snap)

	yes, no, choice := parseChoice(in.Text, len(options))
	switch {
	case yes:
		return b.resolveAndExecute(ctx, env, mem, snap, plan, "approved")

	case no:
		if err := b.deps.States.Clear(ctx, env.TenantID, env.RoomID, env.UserID, state.ClearCancelled); err != nil {
			b.logger.Error("State clear failed", "error", err)
		}
		return &models.HandlerResult{
			Success:     true,
			UserMessage: "承知しました。実行せずに終了します。",
		}, true

	case choice > 2 && choice <= len(options):
		// Options beyond yes/no are alternate capability keys.
		alt := options[choice-1]
		altPlan := &models.ExecutionPlan{
			CapabilityKey:    alt,
			Parameters:       plan.Parameters,
			Confidence:       plan.Confidence,
			Reasoning:        "user selected alternate",
			FollowupsAllowed: true,
		}
		return b.resolveAndExecute(ctx, env, mem, snap, altPlan, "alternate")

	case choice == 1:
		return b.resolveAndExecute(ctx, env, mem, snap, plan, "approved")

	case choice == 2:
		if err := b.deps.States.Clear(ctx, env.TenantID, env.RoomID, env.UserID, state.ClearCancelled); err != nil {
			b.logger.Error("State clear failed", "error", err)
		}
		return &models.HandlerResult{
			Success:     true,
			UserMessage: "承知しました。実行せずに終了します。",
		}, true
	}

	// Unclear answer: treat the message as a fresh request. The stale
	// confirmation is superseded so the pipeline starts clean.
	if err := b.deps.States.Clear(ctx, env.TenantID, env.RoomID, env.UserID, state.ClearSuperseded); err != nil {
		b.logger.Error("State clear failed", "error", err)
	}
	return nil, false
}

// resolveAndExecute clears the confirmation and runs the approved plan.
func (b *Brain) resolveAndExecute(ctx context.Context, env models.Envelope, mem *models.MemoryContext, snap *state.Snapshot, plan *models.ExecutionPlan, resolution string) (*models.HandlerResult, bool) {
	if err := b.deps.States.Clear(ctx, env.TenantID, env.RoomID, env.UserID, state.ClearCompleted); err != nil {
		b.logger.Error("State clear failed", "error", err)
	}
	result, targeted := b.exe.Execute(ctx, plan, env, mem)
	if targeted != nil {
		// Approval surfaced a still-missing parameter; ask for it.
		b.presentParameterQuestionEnv(ctx, env, targeted)
		return &models.HandlerResult{
			Success:     true,
			UserMessage: targeted.Question,
		}, true
	}
	result.Data = withResolution(result.Data, resolution)
	return result, true
}

// continueParameter consumes the message as the value of the one missing
// parameter and re-executes the stored plan.
func (b *Brain) continueParameter(ctx context.Context, env models.Envelope, mem *models.MemoryContext, snap *state.Snapshot, text string) (*models.HandlerResult, bool) {
	plan, ok := pendingPlan(snap)
	if !ok {
		b.logger.Error("Parameter state without reconstructable plan")
		_ = b.deps.States.Clear(ctx, env.TenantID, env.RoomID, env.UserID, state.ClearSuperseded)
		return nil, false
	}
	param, _ := snap.Data["param"].(string)
	if param == "" {
		_ = b.deps.States.Clear(ctx, env.TenantID, env.RoomID, env.UserID, state.ClearSuperseded)
		return nil, false
	}
	if plan.Parameters == nil {
		plan.Parameters = map[string]any{}
	}
	plan.Parameters[param] = text
	return b.resolveAndExecute(ctx, env, mem, snap, plan, "parameter_supplied")
}

// continueMultiAction executes the next queued plan and keeps the remainder,
// clearing once the queue drains.
func (b *Brain) continueMultiAction(ctx context.Context, env models.Envelope, mem *models.MemoryContext, snap *state.Snapshot, text string) (*models.HandlerResult, bool) {
	raw, _ := snap.Data["plans"].(string)
	var queue []models.ExecutionPlan
	if raw == "" || json.Unmarshal([]byte(raw), &queue) != nil || len(queue) == 0 {
		_ = b.deps.States.Clear(ctx, env.TenantID, env.RoomID, env.UserID, state.ClearSuperseded)
		return nil, false
	}

	if _, no, _ := parseChoice(text, 0); no {
		if err := b.deps.States.Clear(ctx, env.TenantID, env.RoomID, env.UserID, state.ClearCancelled); err != nil {
			b.logger.Error("State clear failed", "error", err)
		}
		return &models.HandlerResult{
			Success:     true,
			UserMessage: "承知しました。残りの処理は行いません。",
		}, true
	}

	next := queue[0]
	rest := queue[1:]

	result, targeted := b.exe.Execute(ctx, &next, env, mem)
	if targeted != nil {
		b.presentParameterQuestionEnv(ctx, env, targeted)
		return &models.HandlerResult{Success: true, UserMessage: targeted.Question}, true
	}

	if len(rest) > 0 {
		b.queueRemaining(ctx, env, rest)
		result.UserMessage += "\n\n続けて次のご依頼も処理します。よろしければお知らせください。"
	} else {
		result.StateDelta = &models.StateDelta{Clear: true}
	}
	return result, true
}

// pendingPlan reconstructs the serialized plan from state data.
func pendingPlan(snap *state.Snapshot) (*models.ExecutionPlan, bool) {
	raw, _ := snap.Data["plan"].(string)
	if raw == "" {
		return nil, false
	}
	var plan models.ExecutionPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, false
	}
	if plan.CapabilityKey == "" {
		return nil, false
	}
	return &plan, true
}

// stateOptions recovers the presented options; state data round-trips through
// JSON so string slices come back as []any.
func stateOptions(snap *state.Snapshot) []string {
	switch v := snap.Data["options"].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func withResolution(data map[string]any, resolution string) map[string]any {
	if data == nil {
		data = map[string]any{}
	}
	data["confirmation_resolution"] = resolution
	return data
}

// applyStateDeltaEnv mirrors applyStateDelta for paths that carry an Envelope
// instead of the raw input.
func (b *Brain) applyStateDeltaEnv(ctx context.Context, env models.Envelope, result *models.HandlerResult) {
	if result == nil || result.StateDelta == nil {
		return
	}
	d := result.StateDelta
	if d.Clear {
		if err := b.deps.States.Clear(ctx, env.TenantID, env.RoomID, env.UserID, state.ClearCompleted); err != nil {
			b.logger.Error("State clear failed", "error", err)
		}
		return
	}
	err := b.deps.States.TransitionTo(ctx, env.TenantID, env.RoomID, env.UserID, state.Delta{
		Type:          d.StateType,
		Step:          d.Step,
		Data:          d.Data,
		ReferenceType: d.ReferenceType,
		ReferenceID:   d.ReferenceID,
	})
	if err != nil {
		b.logger.Error("State transition failed", "error", err)
	}
}

// presentParameterQuestionEnv mirrors presentParameterQuestion for
// continuation paths.
func (b *Brain) presentParameterQuestionEnv(ctx context.Context, env models.Envelope, confirm *models.ConfirmationRequest) {
	in := &models.BrainInput{TenantID: env.TenantID, RoomID: env.RoomID, UserID: env.UserID}
	b.presentParameterQuestion(ctx, in, confirm)
}
