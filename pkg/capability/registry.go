// Package capability defines the declarative capability catalog and the
// handler table the Brain selects from. Adding a capability is a descriptor
// entry plus a handler function; the Brain layers never change.
package capability

import (
	"context"
	"fmt"
	"sort"

	"github.com/wisehub-ai/wisehub/pkg/models"
)

// RiskLevel classifies how dangerous a capability is when misfired.
type RiskLevel string

// Risk levels.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ParamType is the declared type of a capability parameter.
type ParamType string

// Parameter types. Coercion rules live in the execution layer.
const (
	ParamString  ParamType = "string"
	ParamDate    ParamType = "date"
	ParamNumber  ParamType = "number"
	ParamBool    ParamType = "bool"
	ParamAccount ParamType = "account"
	ParamList    ParamType = "list"
)

// Param declares one named parameter.
type Param struct {
	Name     string
	Type     ParamType
	Required bool
	Prompt   string // Targeted confirmation question when missing
}

// Keywords holds the scoring keyword sets.
type Keywords struct {
	Primary   []string
	Secondary []string
	Negative  []string
}

// Descriptor is the static definition of one capability.
type Descriptor struct {
	Key                  string
	DisplayName          string
	Description          string
	Category             string
	Enabled              bool
	Priority             int // Tie-break, higher wins
	RequiredRoleLevel    int // 1–6
	RiskLevel            RiskLevel
	RequiresConfirmation bool
	IntentKeywords       Keywords
	DecisionKeywords     Keywords
	Parameters           []Param
	HandlerKey           string
	ModelID              string   // Empty = brain default
	Temperature          float64  // Used only when ModelID is set
	ChainHints           []string // Follow-up suggestion templates
}

// Handler is the uniform capability handler contract. Handlers make no
// policy decisions, write no state and send no chat messages; they return
// directives through HandlerResult.
type Handler func(ctx context.Context, params map[string]any, env models.Envelope, mem *models.MemoryContext) (*models.HandlerResult, error)

// Registry holds descriptors and handlers. Immutable after Validate; safe
// for concurrent reads.
type Registry struct {
	descriptors map[string]*Descriptor
	handlers    map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[string]*Descriptor),
		handlers:    make(map[string]Handler),
	}
}

// Register adds a descriptor. Duplicate keys are a programming error.
func (r *Registry) Register(d *Descriptor) error {
	if d.Key == "" {
		return fmt.Errorf("capability descriptor missing key")
	}
	if _, exists := r.descriptors[d.Key]; exists {
		return fmt.Errorf("duplicate capability key %q", d.Key)
	}
	r.descriptors[d.Key] = d
	return nil
}

// RegisterHandler binds a handler function to a handler key.
func (r *Registry) RegisterHandler(key string, h Handler) error {
	if key == "" {
		return fmt.Errorf("handler key is required")
	}
	if _, exists := r.handlers[key]; exists {
		return fmt.Errorf("duplicate handler key %q", key)
	}
	r.handlers[key] = h
	return nil
}

// Get returns the descriptor for key.
func (r *Registry) Get(key string) (*Descriptor, error) {
	d, ok := r.descriptors[key]
	if !ok {
		return nil, fmt.Errorf("unknown capability %q", key)
	}
	return d, nil
}

// Handler returns the handler bound to a descriptor.
func (r *Registry) Handler(d *Descriptor) (Handler, error) {
	h, ok := r.handlers[d.HandlerKey]
	if !ok {
		return nil, fmt.Errorf("capability %q has no handler %q", d.Key, d.HandlerKey)
	}
	return h, nil
}

// All returns every descriptor sorted by key for deterministic iteration.
func (r *Registry) All() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Enabled returns enabled descriptors usable at the given role level.
func (r *Registry) Enabled(roleLevel int) []*Descriptor {
	out := make([]*Descriptor, 0, len(r.descriptors))
	for _, d := range r.All() {
		if d.Enabled && d.RequiredRoleLevel <= roleLevel {
			out = append(out, d)
		}
	}
	return out
}

// Validate enforces the catalog invariants at startup: every descriptor has
// a bound handler, every handler is referenced, and enabled descriptors
// carry non-empty keyword sets.
func (r *Registry) Validate() error {
	referenced := make(map[string]bool, len(r.handlers))
	for _, d := range r.descriptors {
		if d.HandlerKey == "" {
			return fmt.Errorf("capability %q has no handler key", d.Key)
		}
		if _, ok := r.handlers[d.HandlerKey]; !ok {
			return fmt.Errorf("capability %q references unknown handler %q", d.Key, d.HandlerKey)
		}
		referenced[d.HandlerKey] = true
		if d.Enabled && len(d.IntentKeywords.Primary) == 0 {
			return fmt.Errorf("enabled capability %q has no primary intent keywords", d.Key)
		}
		if d.RequiredRoleLevel < 1 || d.RequiredRoleLevel > 6 {
			return fmt.Errorf("capability %q has invalid role level %d", d.Key, d.RequiredRoleLevel)
		}
	}
	for key := range r.handlers {
		if !referenced[key] {
			return fmt.Errorf("handler %q is not referenced by any capability", key)
		}
	}
	return nil
}
