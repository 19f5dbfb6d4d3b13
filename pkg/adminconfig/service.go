// Package adminconfig reads per-tenant operator settings (webhook secret,
// chat API token, admin rooms, matching thresholds).
package adminconfig

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/tenantconfig"
)

// ErrTenantNotConfigured is returned when no config row exists for a tenant.
var ErrTenantNotConfigured = errors.New("tenant not configured")

const cacheTTL = time.Hour

type cacheEntry struct {
	cfg       *ent.TenantConfig
	fetchedAt time.Time
}

// Service reads tenant configuration through a 1h TTL cache. Config changes
// are rare; operators can force a refresh through the admin API.
type Service struct {
	client *ent.Client

	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

// NewService creates a tenant config service.
func NewService(client *ent.Client) *Service {
	if client == nil {
		panic("adminconfig.NewService: client must not be nil")
	}
	return &Service{
		client:  client,
		entries: make(map[string]*cacheEntry),
	}
}

// Get returns the tenant's configuration, from cache when fresh.
func (s *Service) Get(ctx context.Context, tenantID string) (*ent.TenantConfig, error) {
	s.mu.RLock()
	entry, ok := s.entries[tenantID]
	s.mu.RUnlock()
	if ok && time.Since(entry.fetchedAt) <= cacheTTL {
		return entry.cfg, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cfg, err := s.client.TenantConfig.Query().
		Where(tenantconfig.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTenantNotConfigured
		}
		if ok {
			return entry.cfg, nil
		}
		return nil, fmt.Errorf("failed to load tenant config: %w", err)
	}

	s.mu.Lock()
	s.entries[tenantID] = &cacheEntry{cfg: cfg, fetchedAt: time.Now()}
	s.mu.Unlock()
	return cfg, nil
}

// Location resolves the tenant's timezone, falling back to Asia/Tokyo when
// the stored name does not load.
func (s *Service) Location(ctx context.Context, tenantID string) *time.Location {
	cfg, err := s.Get(ctx, tenantID)
	if err == nil {
		if loc, lerr := time.LoadLocation(cfg.Timezone); lerr == nil {
			return loc
		}
	}
	loc, _ := time.LoadLocation("Asia/Tokyo")
	return loc
}

// Invalidate drops the cached row for a tenant (admin writes, secret rotation).
func (s *Service) Invalidate(tenantID string) {
	s.mu.Lock()
	delete(s.entries, tenantID)
	s.mu.Unlock()
}
