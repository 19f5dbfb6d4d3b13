package database

import (
	"context"
	"fmt"

	"github.com/wisehub-ai/wisehub/ent"
)

// TenantTx runs fn inside a transaction whose connection carries the tenant
// variable matched by the row-level security policies. SET LOCAL scopes the
// setting to the transaction, so the pooled connection is clean on return.
//
// Application queries still include explicit tenant predicates; RLS is the
// backstop, not the filter. Request-scoped services call the package function
// with their own ent client; background sweeps (cleanup, the job worker) stay
// on the maintenance path, which the policies admit when no tenant variable
// is set.
func (c *Client) TenantTx(ctx context.Context, tenantID string, fn func(tx *ent.Tx) error) error {
	return TenantTx(ctx, c.Client, tenantID, fn)
}

// TenantTx is the package form for services that hold a bare *ent.Client.
func TenantTx(ctx context.Context, client *ent.Client, tenantID string, fn func(tx *ent.Tx) error) error {
	if tenantID == "" {
		return fmt.Errorf("tenant tx: tenant id is required")
	}

	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// set_config parameterizes the value; SET LOCAL itself cannot.
	if _, err := tx.ExecContext(ctx,
		"SELECT set_config('app.tenant_id', $1, true)", tenantID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to set tenant variable: %w", err)
	}

	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
