// Package handlers implements the capability handlers. Handlers follow one
// contract: they receive validated parameters, the request envelope and the
// memory context, and return a HandlerResult. They never send chat messages,
// never write conversation state, and never make policy decisions.
package handlers

import (
	"fmt"

	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/pkg/adminconfig"
	"github.com/wisehub-ai/wisehub/pkg/announce"
	"github.com/wisehub-ai/wisehub/pkg/capability"
	"github.com/wisehub-ai/wisehub/pkg/chatwork"
	"github.com/wisehub-ai/wisehub/pkg/flags"
	"github.com/wisehub-ai/wisehub/pkg/llm"
	"github.com/wisehub-ai/wisehub/pkg/opsalert"
)

// Deps carries the services handlers are allowed to touch.
type Deps struct {
	Client   *ent.Client
	Chat     chatwork.API
	AdminCfg *adminconfig.Service
	LLM      llm.Client
	Announce *announce.Service
	Alerts   *opsalert.Service
	Flags    *flags.Service
}

// Set binds the handler functions to their dependencies.
type Set struct {
	deps Deps
}

// NewSet creates the handler set.
func NewSet(deps Deps) (*Set, error) {
	if deps.Client == nil || deps.Chat == nil || deps.AdminCfg == nil || deps.Announce == nil {
		return nil, fmt.Errorf("handlers: client, chat, admin config and announce are required")
	}
	return &Set{deps: deps}, nil
}

// Register binds every handler to its key in the registry.
func (s *Set) Register(registry *capability.Registry) error {
	bindings := map[string]capability.Handler{
		"task_search":         s.TaskSearch,
		"task_create":         s.TaskCreate,
		"task_complete":       s.TaskComplete,
		"announcement_create": s.AnnouncementCreate,
		"knowledge_query":     s.KnowledgeQuery,
		"goal_set":            s.GoalSet,
		"teaching_record":     s.TeachingRecord,
		"smalltalk":           s.Smalltalk,
	}
	for key, h := range bindings {
		if err := registry.RegisterHandler(key, h); err != nil {
			return err
		}
	}
	return nil
}
