package brain

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/wisehub-ai/wisehub/pkg/capability"
	"github.com/wisehub-ai/wisehub/pkg/llm"
	"github.com/wisehub-ai/wisehub/pkg/models"
	"github.com/wisehub-ai/wisehub/pkg/state"
)

// destructiveVerbs trigger the confirmation hint when several plausible
// targets exist.
var destructiveVerbs = []string{
	"削除", "消して", "取り消", "全員に", "キャンセル",
	"delete", "remove", "cancel", "send to all",
}

// pronouns resolved against context, in resolution priority order.
var pronounForms = []string{"それ", "あれ", "さっきの", "例の", "that", "the one", "it"}

// understander merges keyword scoring with one structured LLM call.
type understander struct {
	registry *capability.Registry
	llm      llm.Client
	strong   float64 // Strong keyword threshold
	fallback float64 // Confidence cap when the LLM is unavailable
	logger   *slog.Logger
}

func newUnderstander(registry *capability.Registry, client llm.Client, strongThreshold, fallbackCap float64) *understander {
	return &understander{
		registry: registry,
		llm:      client,
		strong:   strongThreshold,
		fallback: fallbackCap,
		logger:   slog.Default().With("component", "understanding"),
	}
}

// llmIntent is the JSON shape the model is asked for.
type llmIntent struct {
	Intent     string            `json:"intent"`
	Entities   map[string]string `json:"entities"`
	Urgency    string            `json:"urgency"`
	Confidence float64           `json:"confidence"`
	Reasoning  string            `json:"reasoning"`
}

// Understand produces the Understanding for one message.
func (u *understander) Understand(ctx context.Context, text string, mem *models.MemoryContext, snap *state.Snapshot) *models.Understanding {
	scores, top, topScore, margin := u.keywordPass(text, mem.RoleLevel)

	out := &models.Understanding{
		Intent:       top,
		Entities:     map[string]string{},
		Urgency:      "normal",
		KeywordTop:   top,
		KeywordScore: topScore,
		Scores:       scores,
	}

	inferred, usage, err := u.llmPass(ctx, text, mem)
	switch {
	case err != nil:
		// Keyword-only fallback, confidence capped so the Decision layer
		// forces a confirmation.
		u.logger.Warn("LLM understanding unavailable, keyword fallback", "error", err)
		out.Confidence = minF(topScore, u.fallback)
		out.Reasoning = "keyword-only"
		out.Warnings = append(out.Warnings, "llm_fallback")
	case inferred.Intent == top && topScore > u.strong:
		out.Confidence = maxF(topScore, inferred.Confidence)
		out.LLMAgrees = true
	case inferred.Intent != top && inferred.Confidence >= 0.6:
		out.Intent = inferred.Intent
		out.Confidence = minF(topScore, inferred.Confidence) - 0.1
	case inferred.Intent == top:
		out.Confidence = maxF(topScore, inferred.Confidence)
		out.LLMAgrees = true
	default:
		// Disagreement with a hesitant model: keyword wins, penalized.
		out.Confidence = minF(topScore, inferred.Confidence) - 0.1
	}
	if inferred != nil {
		if len(inferred.Entities) > 0 {
			out.Entities = inferred.Entities
		}
		if inferred.Urgency != "" {
			out.Urgency = inferred.Urgency
		}
		if out.Reasoning == "" {
			out.Reasoning = inferred.Reasoning
		}
	}
	if usage != nil {
		out.TokensIn = usage.TokensIn
		out.TokensOut = usage.TokensOut
		out.ModelID = usage.ModelID
	}
	out.Confidence = clamp01(out.Confidence)

	out.Resolved = resolveAmbiguities(text, snap, mem)
	for _, r := range out.Resolved {
		if _, exists := out.Entities[r.Expression]; !exists {
			out.Entities[r.Expression] = r.ResolvedTo
		}
	}

	out.NeedsConfirmHint = u.confirmHint(text, out, margin, mem)
	return out
}

// keywordPass scores every capability available to the role.
func (u *understander) keywordPass(text string, roleLevel int) (scores map[string]float64, top string, topScore, margin float64) {
	folded := foldText(text)
	scores = make(map[string]float64)

	type scored struct {
		key  string
		norm float64
		prio int
	}
	var ranked []scored
	for _, d := range u.registry.Enabled(roleLevel) {
		raw := keywordScore(folded, d)
		norm := normalizeScore(raw)
		scores[d.Key] = norm
		ranked = append(ranked, scored{key: d.Key, norm: norm, prio: d.Priority})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].norm != ranked[j].norm {
			return ranked[i].norm > ranked[j].norm
		}
		return ranked[i].prio > ranked[j].prio
	})
	if len(ranked) > 0 {
		top, topScore = ranked[0].key, ranked[0].norm
		margin = topScore
		if len(ranked) > 1 {
			margin = topScore - ranked[1].norm
		}
	}
	return scores, top, topScore, margin
}

// keywordScore computes the raw score: primary 1.0 weighted by priority,
// secondary 0.4, negative −0.6.
func keywordScore(folded string, d *capability.Descriptor) float64 {
	var raw float64
	primaryWeight := 1.0 + float64(d.Priority)/10.0
	for _, kw := range d.IntentKeywords.Primary {
		if strings.Contains(folded, foldText(kw)) {
			raw += primaryWeight
		}
	}
	for _, kw := range d.IntentKeywords.Secondary {
		if strings.Contains(folded, foldText(kw)) {
			raw += 0.4
		}
	}
	for _, kw := range d.IntentKeywords.Negative {
		if strings.Contains(folded, foldText(kw)) {
			raw -= 0.6
		}
	}
	if raw < 0 {
		raw = 0
	}
	return raw
}

// normalizeScore maps a raw keyword score into [0,1).
func normalizeScore(raw float64) float64 {
	return raw / (raw + 1.5)
}

func foldText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// llmPass issues the single structured understanding call. The response is
// returned alongside the parsed intent so token usage reaches the decision log.
func (u *understander) llmPass(ctx context.Context, text string, mem *models.MemoryContext) (*llmIntent, *llm.Response, error) {
	if u.llm == nil {
		return nil, nil, fmt.Errorf("llm client not configured")
	}
	resp, err := u.llm.Complete(ctx, &llm.Request{
		System:   understandingSystemPrompt(u.registry, mem),
		Messages: []llm.Message{{Role: "user", Content: text}},
		Class:    llm.ModelPrimary,
		JSONOnly: true,
	})
	if err != nil {
		return nil, nil, err
	}
	var inferred llmIntent
	if err := json.Unmarshal([]byte(resp.Text), &inferred); err != nil {
		return nil, resp, fmt.Errorf("understanding response was not valid JSON: %w", err)
	}
	if _, err := u.registry.Get(inferred.Intent); err != nil {
		inferred.Intent = "smalltalk"
		inferred.Confidence = minF(inferred.Confidence, 0.5)
	}
	inferred.Confidence = clamp01(inferred.Confidence)
	return &inferred, resp, nil
}

func understandingSystemPrompt(registry *capability.Registry, mem *models.MemoryContext) string {
	var sb strings.Builder
	sb.WriteString("You classify one corporate chat message into a capability and extract entities.\n")
	sb.WriteString("Capabilities:\n")
	for _, d := range registry.Enabled(mem.RoleLevel) {
		fmt.Fprintf(&sb, "- %s: %s\n", d.Key, d.Description)
	}
	sb.WriteString("\nContext:\n")
	if mem.Summary != "" {
		fmt.Fprintf(&sb, "Conversation summary: %s\n", mem.Summary)
	}
	for _, t := range lastTurns(mem.RecentTurns, 4) {
		fmt.Fprintf(&sb, "%s: %s\n", t.Role, t.Content)
	}
	if len(mem.Tasks) > 0 {
		sb.WriteString("Open tasks:\n")
		for i, t := range mem.Tasks {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&sb, "- %s\n", t.Body)
		}
	}
	sb.WriteString(`
Return JSON: {"intent": "<capability key>", "entities": {"name": "value"}, "urgency": "low|normal|high", "confidence": 0.0-1.0, "reasoning": "<one line>"}`)
	return sb.String()
}

func lastTurns(turns []models.Turn, n int) []models.Turn {
	if len(turns) <= n {
		return turns
	}
	return turns[len(turns)-n:]
}

// resolveAmbiguities maps pronouns and elided objects to concrete referents:
// active state scratch data first, then the last turn, then recent tasks.
func resolveAmbiguities(text string, snap *state.Snapshot, mem *models.MemoryContext) []models.ResolvedAmbiguity {
	folded := foldText(text)
	var found []string
	for _, p := range pronounForms {
		if strings.Contains(folded, p) {
			found = append(found, p)
		}
	}
	if len(found) == 0 {
		return nil
	}

	var resolved []models.ResolvedAmbiguity
	for _, expr := range found {
		if snap != nil && snap.Data != nil {
			if ref, ok := snap.Data["subject"].(string); ok && ref != "" {
				resolved = append(resolved, models.ResolvedAmbiguity{
					Expression: expr, ResolvedTo: ref, Source: "state_data",
				})
				continue
			}
		}
		if ref := lastTurnNoun(mem.RecentTurns); ref != "" {
			resolved = append(resolved, models.ResolvedAmbiguity{
				Expression: expr, ResolvedTo: ref, Source: "last_turn",
			})
			continue
		}
		if len(mem.Tasks) > 0 {
			resolved = append(resolved, models.ResolvedAmbiguity{
				Expression: expr, ResolvedTo: mem.Tasks[0].Body, Source: "recent_task",
			})
		}
	}
	return resolved
}

// lastTurnNoun returns a crude referent from the most recent turn: its first
// quoted span, else its trailing clause.
func lastTurnNoun(turns []models.Turn) string {
	if len(turns) == 0 {
		return ""
	}
	content := turns[len(turns)-1].Content
	if start := strings.IndexAny(content, "「\""); start >= 0 {
		_, size := utf8.DecodeRuneInString(content[start:])
		rest := content[start+size:]
		if end := strings.IndexAny(rest, "」\""); end > 0 {
			return rest[:end]
		}
	}
	fields := strings.Fields(content)
	if len(fields) > 6 {
		fields = fields[len(fields)-6:]
	}
	return strings.Join(fields, " ")
}

// confirmHint decides whether Decision should lean toward confirmation.
func (u *understander) confirmHint(text string, out *models.Understanding, margin float64, mem *models.MemoryContext) bool {
	if out.Confidence < 0.7 {
		return true
	}
	if margin < 0.1 {
		return true
	}
	if d, err := u.registry.Get(out.Intent); err == nil {
		for _, p := range d.Parameters {
			if p.Required {
				if _, ok := out.Entities[p.Name]; !ok {
					return true
				}
			}
		}
	}
	folded := foldText(text)
	for _, v := range destructiveVerbs {
		if strings.Contains(folded, foldText(v)) && len(mem.Tasks) > 1 {
			return true
		}
	}
	return false
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
