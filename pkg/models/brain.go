// Package models contains the transient types that flow through the Brain
// pipeline. Nothing here is persisted directly; persisted entities live in
// the ent schemas.
package models

import (
	"context"
	"time"
)

// BrainInput is the normalized inbound message produced by ingress.
// The chat adapter's wire format never crosses this boundary.
type BrainInput struct {
	TenantID   string
	RoomID     string
	MessageID  string
	AccountID  string // Sender's chat-service account id
	UserID     string // Resolved internal user id
	SenderName string
	RoleLevel  int
	Text       string // Mention markup already stripped
	ReceivedAt time.Time
}

// Envelope identifies the request scope handed to capability handlers.
type Envelope struct {
	TenantID   string
	RoomID     string
	UserID     string
	AccountID  string
	SenderName string
	RoleLevel  int
	Timezone   *time.Location
}

// TeachingExcerpt is a CEO teaching rendered into the memory context.
type TeachingExcerpt struct {
	ID        string
	Statement string
	Category  string
	Priority  int
}

// PersonRef is a known person relevant to the current message.
type PersonRef struct {
	ID            string
	Name          string
	Relation      string
	ChatAccountID string
}

// TaskRef is an active task of the sender.
type TaskRef struct {
	ID       string
	RoomID   string
	Body     string
	Deadline *time.Time
}

// GoalRef is an active goal of the sender.
type GoalRef struct {
	ID    string
	Title string
}

// InsightRef is a recent high-priority insight.
type InsightRef struct {
	ID      string
	Kind    string
	Summary string
}

// Turn is a single prior conversation turn.
type Turn struct {
	Role    string // "user" or "assistant"
	Content string
	At      time.Time
}

// KnowledgeSnippet is a retrieved knowledge chunk.
type KnowledgeSnippet struct {
	ChunkID string
	Title   string
	Content string
	Score   float64
}

// KnowledgeFetcher retrieves knowledge snippets on demand. The memory loader
// returns one instead of eagerly embedding every message; only Decision or a
// handler forces it.
type KnowledgeFetcher func(ctx context.Context, query string, topK int) ([]KnowledgeSnippet, error)

// MemoryContext is the read-only, request-scoped snapshot assembled by the
// memory loader. Missing sections are empty, never nil-panicking; Warnings
// records which sub-fetches timed out.
type MemoryContext struct {
	TenantID    string
	UserID      string
	RoomID      string
	SenderName  string
	RoleLevel   int
	RecentTurns []Turn
	Summary     string
	Preferences map[string]any
	Locale      string
	Teachings   []TeachingExcerpt
	Persons     []PersonRef
	Tasks       []TaskRef
	Goals       []GoalRef
	Insights    []InsightRef
	Knowledge   KnowledgeFetcher
	Warnings    []string
}

// ResolvedAmbiguity records one pronoun/ellipsis resolution with its source.
type ResolvedAmbiguity struct {
	Expression string `json:"expression"`
	ResolvedTo string `json:"resolved_to"`
	Source     string `json:"source"` // state_data | last_turn | recent_task
}

// Understanding is the output of the understanding layer.
type Understanding struct {
	Intent           string
	Entities         map[string]string
	Urgency          string // low | normal | high
	Resolved         []ResolvedAmbiguity
	Confidence       float64
	Reasoning        string
	NeedsConfirmHint bool
	KeywordTop       string             // Top capability by keyword score
	KeywordScore     float64            // Normalized top keyword score
	Scores           map[string]float64 // Normalized keyword score per capability
	LLMAgrees        bool
	Warnings         []string
	TokensIn         int
	TokensOut        int
	ModelID          string
}

// ExecutionPlan is a fully decided, validated action.
type ExecutionPlan struct {
	CapabilityKey    string         `json:"capability_key"`
	Parameters       map[string]any `json:"parameters"`
	Confidence       float64        `json:"confidence"`
	Reasoning        string         `json:"reasoning"`
	Alternates       []string       `json:"alternates,omitempty"` // Capability keys, at most 3
	FollowupsAllowed bool           `json:"followups_allowed"`
}

// ConfirmationRequest asks the user to approve a pending plan. The pending
// plan is serialized into conversation state data so it is fully
// reconstructable on the next message.
type ConfirmationRequest struct {
	Question string
	Options  []string // At most 3 concrete choices
	Pending  ExecutionPlan
	Reason   string // Which gate triggered the confirmation
}

// Refusal is a policy-blocked outcome with a user-safe reason.
type Refusal struct {
	UserMessage string
	PolicyCode  string // Internal code for the decision log, never shown
}

// StateDelta is a handler's requested state transition, applied by the Brain
// rather than by the handler itself.
type StateDelta struct {
	StateType      string
	Step           string
	Data           map[string]any
	ReferenceType  string
	ReferenceID    string
	TimeoutMinutes int
	Clear          bool // Clear back to normal instead of transitioning
}

// HandlerResult is the uniform outcome contract for capability handlers.
type HandlerResult struct {
	Success     bool
	UserMessage string
	Data        map[string]any
	NextAction  string // Optional chained capability key
	NextParams  map[string]any
	StateDelta  *StateDelta
	Suggestions []string // At most 3 follow-up suggestions
	ErrorKind   string   // One of the execerr kinds when Success is false
}
