// Package identity resolves chat accounts to internal users. The identity
// subsystem owns the tables; this service is read-only.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/department"
	"github.com/wisehub-ai/wisehub/ent/user"
)

// ErrUnknownUser is returned when no active user matches the chat account.
var ErrUnknownUser = errors.New("unknown user")

// Service reads users and departments.
type Service struct {
	client *ent.Client
}

// NewService creates an identity service.
func NewService(client *ent.Client) *Service {
	if client == nil {
		panic("identity.NewService: client must not be nil")
	}
	return &Service{client: client}
}

// ResolveAccount maps a chat account id to the internal user, tenant-scoped.
func (s *Service) ResolveAccount(ctx context.Context, tenantID, chatAccountID string) (*ent.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	u, err := s.client.User.Query().
		Where(
			user.TenantID(tenantID),
			user.ChatAccountID(chatAccountID),
			user.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}
	return u, nil
}

// Department returns a department by id, tenant-scoped.
func (s *Service) Department(ctx context.Context, tenantID, departmentID string) (*ent.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	d, err := s.client.Department.Query().
		Where(
			department.TenantID(tenantID),
			department.ID(departmentID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("department %s not found", departmentID)
		}
		return nil, fmt.Errorf("failed to load department: %w", err)
	}
	return d, nil
}

// DepartmentChain walks parent links up to maxDepth levels, returning the
// department and its ancestors. The parent graph lives only in the database;
// this read is always a bounded list.
func (s *Service) DepartmentChain(ctx context.Context, tenantID, departmentID string, maxDepth int) ([]*ent.Department, error) {
	chain := make([]*ent.Department, 0, maxDepth)
	id := departmentID
	for i := 0; i < maxDepth && id != ""; i++ {
		d, err := s.Department(ctx, tenantID, id)
		if err != nil {
			return chain, err
		}
		chain = append(chain, d)
		if d.ParentID == nil {
			break
		}
		id = *d.ParentID
	}
	return chain, nil
}
