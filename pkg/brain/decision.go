package brain

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/wisehub-ai/wisehub/pkg/capability"
	"github.com/wisehub-ai/wisehub/pkg/models"
	"github.com/wisehub-ai/wisehub/pkg/state"
)

// Outcome is the single decision result: exactly one field is set.
type Outcome struct {
	Plan    *models.ExecutionPlan
	Confirm *models.ConfirmationRequest
	Refusal *models.Refusal
}

// noGoPatterns are organizational red lines. A match downgrades the plan to a
// confirmation; restricted ones block outright.
type noGoPattern struct {
	phrase     string
	restricted bool
	reason     string
}

var noGoPatterns = []noGoPattern{
	{phrase: "やる気がない", reason: "dismisses autonomy"},
	{phrase: "黙ってやれ", restricted: true, reason: "negates psychological safety"},
	{phrase: "文句を言うな", restricted: true, reason: "negates psychological safety"},
	{phrase: "give up", reason: "conflicts with mission language"},
	{phrase: "全員解雇", restricted: true, reason: "restricted topic"},
}

// decider selects and gates the execution plan.
type decider struct {
	registry         *capability.Registry
	confirmThreshold float64
	recencyWindow    time.Duration
	logger           *slog.Logger
}

func newDecider(registry *capability.Registry, confirmThreshold float64, recencyWindow time.Duration) *decider {
	return &decider{
		registry:         registry,
		confirmThreshold: confirmThreshold,
		recencyWindow:    recencyWindow,
		logger:           slog.Default().With("component", "decision"),
	}
}

// decideInput carries the decision context beyond the Understanding itself.
type decideInput struct {
	text              string
	understanding     *models.Understanding
	mem               *models.MemoryContext
	snap              *state.Snapshot
	lastCapability    string               // Last successful capability for this user
	recentUse         map[string]time.Time // Capability → last use by this user
	recipientCount    int
	monetaryThreshold float64
}

// Decide scores role-eligible capabilities, applies confirmation gates and
// the value-alignment check, and returns exactly one outcome.
func (d *decider) Decide(in decideInput) Outcome {
	u := in.understanding

	// A capability the sender's role cannot reach is a refusal, never a
	// silent downgrade.
	if full, err := d.registry.Get(u.Intent); err == nil {
		if full.RequiredRoleLevel > in.mem.RoleLevel {
			return Outcome{Refusal: &models.Refusal{
				UserMessage: "この操作を行う権限がありません。管理者にご相談ください。",
				PolicyCode:  "role_level_insufficient",
			}}
		}
	}

	winner, alternates := d.rank(in)
	if winner == nil {
		return Outcome{Refusal: &models.Refusal{
			UserMessage: "すみません、ご依頼の内容を処理できませんでした。",
			PolicyCode:  "no_capability",
		}}
	}

	plan := &models.ExecutionPlan{
		CapabilityKey:    winner.Key,
		Parameters:       entitiesToParams(u.Entities),
		Confidence:       u.Confidence,
		Reasoning:        u.Reasoning,
		Alternates:       alternates,
		FollowupsAllowed: true,
	}

	// Value alignment precedes confirmation gating: a restricted violation
	// must block even when the user would have confirmed.
	if violation := d.checkAlignment(in.text, plan, in.mem.Teachings); violation != nil {
		if violation.restricted {
			d.logger.Info("Plan blocked by value alignment",
				"capability", winner.Key, "reason", violation.reason)
			return Outcome{Refusal: &models.Refusal{
				UserMessage: "この依頼には対応できません。",
				PolicyCode:  "value_alignment:" + violation.reason,
			}}
		}
		return Outcome{Confirm: &models.ConfirmationRequest{
			Question: "この内容は組織の方針に合わない可能性があります。本当に実行しますか？",
			Options:  []string{"はい", "いいえ"},
			Pending:  *plan,
			Reason:   "value_alignment:" + violation.reason,
		}}
	}

	if reason := d.confirmationReason(winner, in, plan); reason != "" {
		return Outcome{Confirm: &models.ConfirmationRequest{
			Question: confirmationQuestion(winner, plan, u),
			Options:  confirmationOptions(alternates, u),
			Pending:  *plan,
			Reason:   reason,
		}}
	}

	return Outcome{Plan: plan}
}

// rank scores every role-eligible capability:
// 0.4·keyword + 0.3·intent + 0.2·continuity + 0.1·recency, priority tie-break.
func (d *decider) rank(in decideInput) (*capability.Descriptor, []string) {
	u := in.understanding
	type scored struct {
		d     *capability.Descriptor
		score float64
	}
	var ranked []scored
	for _, desc := range d.registry.Enabled(in.mem.RoleLevel) {
		keyword := u.Scores[desc.Key]

		intent := 0.0
		if desc.Key == u.Intent {
			intent = 1.0
		} else if intentDesc, err := d.registry.Get(u.Intent); err == nil && intentDesc.Category == desc.Category {
			intent = 0.3
		}

		continuity := 0.0
		if in.snap != nil && in.snap.Type != state.TypeNormal && flowCategory(in.snap.Type) == desc.Category {
			continuity = 1.0
		} else if in.lastCapability != "" {
			if last, err := d.registry.Get(in.lastCapability); err == nil && last.Category == desc.Category {
				continuity = 1.0
			}
		}

		recency := 0.0
		if at, ok := in.recentUse[desc.Key]; ok && time.Since(at) <= d.recencyWindow {
			recency = 1.0
		}

		ranked = append(ranked, scored{
			d:     desc,
			score: 0.4*keyword + 0.3*intent + 0.2*continuity + 0.1*recency,
		})
	}
	if len(ranked) == 0 {
		return nil, nil
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].d.Priority > ranked[j].d.Priority
	})

	var alternates []string
	for _, s := range ranked[1:] {
		if len(alternates) == 3 {
			break
		}
		if s.score > 0 {
			alternates = append(alternates, s.d.Key)
		}
	}
	return ranked[0].d, alternates
}

// flowCategory maps a state type to the capability category it belongs to.
func flowCategory(stateType string) string {
	switch stateType {
	case state.TypeGoalSetting:
		return "goal"
	case state.TypeAnnouncement:
		return "announcement"
	case state.TypeTaskPending:
		return "task"
	}
	return ""
}

// confirmationReason returns the first triggered gate, empty when none.
func (d *decider) confirmationReason(desc *capability.Descriptor, in decideInput, plan *models.ExecutionPlan) string {
	switch {
	case desc.RequiresConfirmation:
		return "requires_confirmation"
	case desc.RiskLevel == capability.RiskHigh:
		return "high_risk"
	case plan.Confidence < d.confirmThreshold:
		return "low_confidence"
	case in.understanding.NeedsConfirmHint:
		return "ambiguous"
	case in.recipientCount >= 3:
		return "broad_recipients"
	}
	if amount, ok := monetaryAmount(plan.Parameters); ok && in.monetaryThreshold > 0 && amount >= in.monetaryThreshold {
		return "monetary_threshold"
	}
	for _, v := range destructiveVerbs {
		if strings.Contains(foldText(in.text), foldText(v)) {
			return "destructive_verb"
		}
	}
	return ""
}

type alignmentViolation struct {
	restricted bool
	reason     string
}

// checkAlignment evaluates the planned text against the closed no-go set and
// active teachings whose category covers communication and staff guidance.
func (d *decider) checkAlignment(text string, plan *models.ExecutionPlan, teachings []models.TeachingExcerpt) *alignmentViolation {
	haystack := foldText(text)
	if msg, ok := plan.Parameters["message"].(string); ok {
		haystack += " " + foldText(msg)
	}
	for _, p := range noGoPatterns {
		if strings.Contains(haystack, foldText(p.phrase)) {
			return &alignmentViolation{restricted: p.restricted, reason: p.reason}
		}
	}
	// Teachings with a negated form: a statement like 「〜しない」 that the
	// plan's message directly contains is treated as a soft violation.
	for _, t := range teachings {
		if t.Category != "communication" && t.Category != "staff_guidance" && t.Category != "psych_safety" {
			continue
		}
		if negation := negatedForm(t.Statement); negation != "" && strings.Contains(haystack, negation) {
			return &alignmentViolation{reason: "teaching:" + t.ID}
		}
	}
	return nil
}

// negatedForm extracts a short prohibited phrase from teachings written as
// 「...は禁止」 or "never ...".
func negatedForm(statement string) string {
	folded := foldText(statement)
	if idx := strings.Index(folded, "は禁止"); idx > 0 {
		start := idx - 12
		if start < 0 {
			start = 0
		}
		return strings.TrimSpace(folded[start:idx])
	}
	if strings.HasPrefix(folded, "never ") {
		return strings.TrimSpace(strings.TrimPrefix(folded, "never "))
	}
	return ""
}

// monetaryAmount finds a monetary parameter. Accepts "12000", "12,000",
// "¥12000", "1.2万".
func monetaryAmount(params map[string]any) (float64, bool) {
	for _, key := range []string{"amount", "金額", "price", "budget"} {
		v, ok := params[key]
		if !ok {
			continue
		}
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
	}
	return 0, false
}

// parseAmount parses a locale-aware monetary string.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "¥")
	s = strings.TrimPrefix(s, "￥")
	s = strings.ReplaceAll(s, ",", "")
	multiplier := 1.0
	if strings.HasSuffix(s, "万") {
		multiplier = 10000
		s = strings.TrimSuffix(s, "万")
	}
	s = strings.TrimSuffix(s, "円")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f * multiplier, true
}

// broadMarkers flag messages addressed to everyone; they count as three
// recipients for gating purposes.
var broadMarkers = []string{"全員", "みんな", "みなさん", "皆さん", "everyone", "all members"}

// countRecipients estimates how many people a request targets from the raw
// text and the extracted entities.
func countRecipients(text string, entities map[string]string) int {
	folded := foldText(text)
	for _, m := range broadMarkers {
		if strings.Contains(folded, foldText(m)) {
			return 3
		}
	}
	count := 0
	for _, key := range []string{"assignees", "recipients", "assignee", "to", "宛先"} {
		v, ok := entities[key]
		if !ok {
			continue
		}
		if n := len(splitRecipients(v)); n > count {
			count = n
		}
	}
	return count
}

func splitRecipients(v string) []string {
	parts := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == '、' || r == '，'
	})
	var out []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, strings.TrimSpace(p))
		}
	}
	return out
}

func entitiesToParams(entities map[string]string) map[string]any {
	params := make(map[string]any, len(entities))
	for k, v := range entities {
		params[k] = v
	}
	return params
}

func confirmationQuestion(desc *capability.Descriptor, plan *models.ExecutionPlan, u *models.Understanding) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "「%s」を実行してよろしいですか？", desc.DisplayName)
	if len(plan.Parameters) > 0 {
		sb.WriteString("\n内容:")
		keys := make([]string, 0, len(plan.Parameters))
		for k := range plan.Parameters {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "\n・%s: %v", k, plan.Parameters[k])
		}
	}
	return sb.String()
}

func confirmationOptions(alternates []string, u *models.Understanding) []string {
	options := []string{"はい", "いいえ"}
	if len(alternates) > 0 {
		options = append(options, alternates[0])
	}
	return options
}
