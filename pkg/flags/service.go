// Package flags reads feature flags with per-tenant overrides. A row with an
// empty tenant_id is the global default; a tenant row wins over it.
package flags

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/featureflag"
)

// Flag names used by the Brain. Missing rows mean disabled.
const (
	FlagKnowledgeSearch   = "knowledge_search"
	FlagMultiAction       = "multi_action"
	FlagProactiveInsights = "proactive_insights"
	FlagLLMFallback       = "llm_fallback"
)

// Known returns every flag name the Brain consults.
func Known() []string {
	return []string{FlagKnowledgeSearch, FlagMultiAction, FlagProactiveInsights, FlagLLMFallback}
}

const cacheTTL = 30 * time.Second

type cacheEntry struct {
	enabled   bool
	fetchedAt time.Time
}

// Service resolves flags against the database through a short TTL cache, so
// flipping a flag takes effect within seconds without a restart.
type Service struct {
	client *ent.Client

	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

// NewService creates a flag service.
func NewService(client *ent.Client) *Service {
	if client == nil {
		panic("flags.NewService: client must not be nil")
	}
	return &Service{
		client:  client,
		entries: make(map[string]*cacheEntry),
	}
}

// Enabled reports whether a flag is on for the tenant. Lookup errors resolve
// to false so a database hiccup degrades features instead of failing requests.
func (s *Service) Enabled(ctx context.Context, tenantID, name string) bool {
	key := tenantID + "/" + name
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if ok && time.Since(entry.fetchedAt) <= cacheTTL {
		return entry.enabled
	}

	enabled, err := s.resolve(ctx, tenantID, name)
	if err != nil {
		if ok {
			// Stale cache beats failing closed on transient DB errors.
			return entry.enabled
		}
		return false
	}

	s.mu.Lock()
	s.entries[key] = &cacheEntry{enabled: enabled, fetchedAt: time.Now()}
	s.mu.Unlock()
	return enabled
}

func (s *Service) resolve(ctx context.Context, tenantID, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Tenant override first, then the global default row.
	f, err := s.client.FeatureFlag.Query().
		Where(
			featureflag.TenantID(tenantID),
			featureflag.Name(name),
		).
		Only(ctx)
	if err == nil {
		return f.Enabled, nil
	}
	if !ent.IsNotFound(err) {
		return false, fmt.Errorf("failed to query feature flag: %w", err)
	}

	f, err = s.client.FeatureFlag.Query().
		Where(
			featureflag.TenantID(""),
			featureflag.Name(name),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to query feature flag default: %w", err)
	}
	return f.Enabled, nil
}

// Invalidate drops the cached value for one tenant/flag pair (admin writes).
func (s *Service) Invalidate(tenantID, name string) {
	s.mu.Lock()
	delete(s.entries, tenantID+"/"+name)
	s.mu.Unlock()
}
