package brain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/wisehub-ai/wisehub/pkg/capability"
	"github.com/wisehub-ai/wisehub/pkg/execerr"
	"github.com/wisehub-ai/wisehub/pkg/models"
)

// executor validates parameters, invokes handlers, and follows next_action
// chains within the depth bound.
type executor struct {
	registry       *capability.Registry
	handlerTimeout time.Duration
	maxChainDepth  int
	logger         *slog.Logger
}

func newExecutor(registry *capability.Registry, handlerTimeout time.Duration, maxChainDepth int) *executor {
	return &executor{
		registry:       registry,
		handlerTimeout: handlerTimeout,
		maxChainDepth:  maxChainDepth,
		logger:         slog.Default().With("component", "execution"),
	}
}

// Execute runs the plan. A missing required parameter returns a targeted
// confirmation instead of a result; both are never set together.
func (e *executor) Execute(ctx context.Context, plan *models.ExecutionPlan, env models.Envelope, mem *models.MemoryContext) (*models.HandlerResult, *models.ConfirmationRequest) {
	result, confirm := e.executeOne(ctx, plan, env, mem)
	depth := 1
	for result != nil && result.Success && result.NextAction != "" {
		if depth >= e.maxChainDepth {
			e.logger.Warn("Capability chain depth exceeded",
				"capability", plan.CapabilityKey, "next", result.NextAction, "depth", depth)
			result.NextAction = ""
			break
		}
		next := &models.ExecutionPlan{
			CapabilityKey: result.NextAction,
			Parameters:    result.NextParams,
			Confidence:    plan.Confidence,
			Reasoning:     "chained from " + plan.CapabilityKey,
		}
		chained, chainConfirm := e.executeOne(ctx, next, env, mem)
		if chainConfirm != nil {
			return nil, chainConfirm
		}
		// A failed chained step keeps the primary success but carries the
		// follow-up's message.
		if chained != nil {
			result.UserMessage = strings.TrimSpace(result.UserMessage + "\n" + chained.UserMessage)
			result.NextAction = chained.NextAction
			result.NextParams = chained.NextParams
			if chained.StateDelta != nil {
				result.StateDelta = chained.StateDelta
			}
		} else {
			result.NextAction = ""
		}
		depth++
	}
	return result, confirm
}

func (e *executor) executeOne(ctx context.Context, plan *models.ExecutionPlan, env models.Envelope, mem *models.MemoryContext) (*models.HandlerResult, *models.ConfirmationRequest) {
	desc, err := e.registry.Get(plan.CapabilityKey)
	if err != nil {
		return failure(execerr.KindInternal), nil
	}
	handler, err := e.registry.Handler(desc)
	if err != nil {
		return failure(execerr.KindInternal), nil
	}

	params, missing, badParam := coerceParams(desc, plan.Parameters, env.Timezone)
	if missing != nil {
		return nil, &models.ConfirmationRequest{
			Question: missing.Prompt,
			Pending:  *plan,
			Reason:   "missing_parameter:" + missing.Name,
		}
	}
	if badParam != "" {
		res := failure(execerr.KindParameterInvalid)
		res.Data = map[string]any{"parameter": badParam}
		return res, nil
	}

	hctx, cancel := context.WithTimeout(ctx, e.handlerTimeout)
	defer cancel()

	start := time.Now()
	result, err := handler(hctx, params, env, mem)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		kind := execerr.KindOf(err)
		if errors.Is(err, context.DeadlineExceeded) || hctx.Err() != nil {
			kind = execerr.KindTimeout
		}
		e.logger.Error("Handler failed",
			"capability", desc.Key,
			"error_kind", kind,
			"duration_ms", elapsed.Milliseconds(),
			"error", err)
		return failure(kind), nil
	case result == nil:
		return failure(execerr.KindInternal), nil
	}

	e.logger.Info("Handler completed",
		"capability", desc.Key,
		"success", result.Success,
		"duration_ms", elapsed.Milliseconds())
	if result.UserMessage == "" && !result.Success {
		result.UserMessage = execerr.UserLine(result.ErrorKind)
	}
	if len(result.Suggestions) > 3 {
		result.Suggestions = result.Suggestions[:3]
	}
	return result, nil
}

func failure(kind string) *models.HandlerResult {
	return &models.HandlerResult{
		Success:     false,
		UserMessage: execerr.UserLine(kind),
		ErrorKind:   kind,
	}
}

// coerceParams validates and coerces the plan parameters against the
// descriptor schema. Returns the first missing required parameter or the name
// of the first uncoercible one.
func coerceParams(desc *capability.Descriptor, raw map[string]any, tz *time.Location) (map[string]any, *capability.Param, string) {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	for i := range desc.Parameters {
		p := &desc.Parameters[i]
		v, present := out[p.Name]
		if !present || v == nil || v == "" {
			if p.Required {
				return nil, p, ""
			}
			continue
		}
		coerced, ok := coerceValue(p.Type, v, tz)
		if !ok {
			return nil, nil, p.Name
		}
		out[p.Name] = coerced
	}
	return out, nil, ""
}

func coerceValue(t capability.ParamType, v any, tz *time.Location) (any, bool) {
	switch t {
	case capability.ParamString, capability.ParamAccount:
		switch val := v.(type) {
		case string:
			return strings.TrimSpace(val), true
		case float64:
			return strconv.FormatFloat(val, 'f', -1, 64), true
		case int:
			return strconv.Itoa(val), true
		}
		return nil, false
	case capability.ParamNumber:
		switch val := v.(type) {
		case float64:
			return val, true
		case int:
			return float64(val), true
		case string:
			if f, ok := parseAmount(val); ok {
				return f, true
			}
		}
		return nil, false
	case capability.ParamBool:
		switch val := v.(type) {
		case bool:
			return val, true
		case string:
			switch foldText(val) {
			case "true", "yes", "はい", "1":
				return true, true
			case "false", "no", "いいえ", "0":
				return false, true
			}
		}
		return nil, false
	case capability.ParamDate:
		switch val := v.(type) {
		case time.Time:
			return val, true
		case string:
			if ts, ok := parseDate(val, tz); ok {
				return ts, true
			}
		}
		return nil, false
	case capability.ParamList:
		switch val := v.(type) {
		case []any:
			items := make([]string, 0, len(val))
			for _, item := range val {
				items = append(items, fmt.Sprintf("%v", item))
			}
			return items, true
		case []string:
			return val, true
		case string:
			parts := strings.FieldsFunc(val, func(r rune) bool { return r == ',' || r == '、' })
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			return parts, true
		}
		return nil, false
	}
	return v, true
}

// dateLayouts tried in order, interpreted in the tenant timezone.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006/01/02 15:04",
	"2006/01/02",
	"01/02 15:04",
	"1月2日",
}

// parseDate parses absolute layouts plus the relative forms used in chat
// (today/tomorrow and their Japanese equivalents, optionally with a time).
func parseDate(s string, tz *time.Location) (time.Time, bool) {
	if tz == nil {
		tz = time.Local
	}
	s = strings.TrimSpace(s)
	folded := foldText(s)

	relative := map[string]int{
		"today": 0, "今日": 0, "本日": 0,
		"tomorrow": 1, "明日": 1, "あした": 1,
		"day after tomorrow": 2, "明後日": 2,
	}
	for word, days := range relative {
		if !strings.HasPrefix(folded, word) {
			continue
		}
		base := time.Now().In(tz).AddDate(0, 0, days)
		rest := strings.TrimSpace(s[len(word):])
		if rest == "" {
			// Date-only relative forms resolve to local end of day.
			return time.Date(base.Year(), base.Month(), base.Day(), 23, 59, 0, 0, tz), true
		}
		if t, err := time.ParseInLocation("15:04", rest, tz); err == nil {
			return time.Date(base.Year(), base.Month(), base.Day(), t.Hour(), t.Minute(), 0, 0, tz), true
		}
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, tz); err == nil {
			if t.Year() == 0 {
				now := time.Now().In(tz)
				t = time.Date(now.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, tz)
				if t.Before(now) {
					t = t.AddDate(1, 0, 0)
				}
			}
			return t, true
		}
	}
	return time.Time{}, false
}
