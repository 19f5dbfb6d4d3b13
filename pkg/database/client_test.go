package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/conversationstate"
)

// newTestClient connects to an external PostgreSQL when CI_DATABASE_URL is
// set, otherwise starts a throwaway container. Schema comes from ent
// auto-migration; the SQL migrations (indexes, RLS policies) are covered by
// the migration files themselves.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)
		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))
	require.NoError(t, entClient.Schema.Create(ctx))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestClientConnectionAndHealth(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
}

func TestTenantTxSetsAndResetsTenantVariable(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.TenantTx(ctx, "tenant-a", func(tx *ent.Tx) error {
		rows, err := tx.QueryContext(ctx, "SELECT current_setting('app.tenant_id', true)")
		if err != nil {
			return err
		}
		defer rows.Close()
		require.True(t, rows.Next())
		var v string
		require.NoError(t, rows.Scan(&v))
		assert.Equal(t, "tenant-a", v)

		_, err = tx.ConversationState.Create().
			SetID("state-1").
			SetTenantID("tenant-a").
			SetRoomID("room-1").
			SetUserID("user-1").
			SetExpiresAt(time.Now().Add(time.Hour)).
			Save(ctx)
		return err
	})
	require.NoError(t, err)

	// SET LOCAL must not leak past the transaction.
	var after stdsql.NullString
	require.NoError(t, client.DB().QueryRowContext(ctx,
		"SELECT current_setting('app.tenant_id', true)").Scan(&after))
	assert.Empty(t, after.String)

	n, err := client.ConversationState.Query().
		Where(conversationstate.TenantID("tenant-a")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTenantTxRollsBackOnError(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.TenantTx(ctx, "tenant-b", func(tx *ent.Tx) error {
		if _, err := tx.ConversationState.Create().
			SetID("state-rb").
			SetTenantID("tenant-b").
			SetRoomID("room-1").
			SetUserID("user-1").
			SetExpiresAt(time.Now().Add(time.Hour)).
			Save(ctx); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	n, err := client.ConversationState.Query().
		Where(conversationstate.TenantID("tenant-b")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// TestRLSIsolatesTenants runs the real SQL migrations and exercises the
// row-level security backstop through a non-superuser application role, which
// is what production connects as. The container's default user is a superuser
// and would bypass the policies.
func TestRLSIsolatesTenants(t *testing.T) {
	if os.Getenv("CI_DATABASE_URL") != "" {
		t.Skip("needs a dedicated container with role management")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("owner"),
		postgres.WithPassword("owner"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	ownerStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	ownerDB, err := stdsql.Open("pgx", ownerStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ownerDB.Close() })

	require.NoError(t, runMigrations(ownerDB, Config{Database: "test"}))

	for _, stmt := range []string{
		"CREATE ROLE app_rw LOGIN PASSWORD 'app_rw'",
		"GRANT USAGE ON SCHEMA public TO app_rw",
		"GRANT SELECT, INSERT, UPDATE, DELETE ON ALL TABLES IN SCHEMA public TO app_rw",
		"GRANT USAGE, SELECT ON ALL SEQUENCES IN SCHEMA public TO app_rw",
	} {
		_, err = ownerDB.ExecContext(ctx, stmt)
		require.NoError(t, err, stmt)
	}

	appDB, err := stdsql.Open("pgx", strings.Replace(ownerStr, "owner:owner", "app_rw:app_rw", 1))
	require.NoError(t, err)
	appClient := NewClientFromEnt(
		ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, appDB))), appDB)
	t.Cleanup(func() { _ = appClient.Close() })

	require.NoError(t, appClient.TenantTx(ctx, "tenant-a", func(tx *ent.Tx) error {
		_, err := tx.ConversationState.Create().
			SetID("rls-1").
			SetTenantID("tenant-a").
			SetRoomID("room-1").
			SetUserID("user-1").
			SetExpiresAt(time.Now().Add(time.Hour)).
			Save(ctx)
		return err
	}))

	// Another tenant's transaction must not see the row even without an
	// explicit tenant predicate.
	require.NoError(t, appClient.TenantTx(ctx, "tenant-b", func(tx *ent.Tx) error {
		n, err := tx.ConversationState.Query().Count(ctx)
		if err != nil {
			return err
		}
		assert.Zero(t, n)
		return nil
	}))

	// The maintenance path runs without the tenant variable and sees all rows.
	n, err := appClient.ConversationState.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTenantTxRequiresTenant(t *testing.T) {
	client := &Client{}
	err := client.TenantTx(context.Background(), "", func(*ent.Tx) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tenant id is required")
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clear := func() {
		for _, k := range envKeys {
			os.Unsetenv(k)
		}
	}
	t.Cleanup(clear)

	t.Run("defaults", func(t *testing.T) {
		clear()
		os.Setenv("DB_PASSWORD", "secret")
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "wisehub", cfg.Database)
		assert.Equal(t, 10, cfg.MaxOpenConns)
	})

	t.Run("custom values", func(t *testing.T) {
		clear()
		os.Setenv("DB_HOST", "db.internal")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_PASSWORD", "secret")
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
	})

	t.Run("invalid port", func(t *testing.T) {
		clear()
		os.Setenv("DB_PORT", "not-a-port")
		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}
