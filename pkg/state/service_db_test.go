package state

import (
	"context"
	stdsql "database/sql"
	"os"
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

func newStateClient(t *testing.T) *ent.Client {
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
	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	require.NoError(t, client.Schema.Create(ctx))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCurrentActiveFlowRoundTrip(t *testing.T) {
	client := newStateClient(t)
	svc := NewService(client, time.Hour, nil)
	ctx := context.Background()

	require.NoError(t, svc.TransitionTo(ctx, "tenant-rt", "room-1", "user-1", Delta{
		Type: TypeConfirmation,
		Step: "await_answer",
		Data: map[string]any{"plan": "{}"},
	}))

	snap, expired, err := svc.Current(ctx, "tenant-rt", "room-1", "user-1")
	require.NoError(t, err)
	assert.False(t, expired)
	assert.Equal(t, TypeConfirmation, snap.Type)
	assert.Equal(t, "await_answer", snap.Step)

	// Reading an active flow never consumes it.
	snap, _, err = svc.Current(ctx, "tenant-rt", "room-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, TypeConfirmation, snap.Type)
}

func TestCurrentDeletesExpiredRowOnRead(t *testing.T) {
	client := newStateClient(t)
	// Negative timeout makes every transition land already expired.
	svc := NewService(client, -time.Minute, nil)
	ctx := context.Background()

	require.NoError(t, svc.TransitionTo(ctx, "tenant-exp", "room-1", "user-1", Delta{
		Type: TypeGoalSetting,
		Step: "title",
	}))

	snap, expired, err := svc.Current(ctx, "tenant-exp", "room-1", "user-1")
	require.NoError(t, err)
	assert.True(t, expired)
	assert.Equal(t, TypeNormal, snap.Type)

	n, err := client.ConversationState.Query().
		Where(conversationstate.TenantID("tenant-exp")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "expired row is removed by the read")
}

func TestTransitionSupersedesPreviousFlow(t *testing.T) {
	client := newStateClient(t)
	svc := NewService(client, time.Hour, nil)
	ctx := context.Background()

	require.NoError(t, svc.TransitionTo(ctx, "tenant-sup", "room-1", "user-1", Delta{
		Type: TypeGoalSetting, Step: "title",
	}))
	require.NoError(t, svc.TransitionTo(ctx, "tenant-sup", "room-1", "user-1", Delta{
		Type: TypeAnnouncement, Step: "pending_room",
		Data: map[string]any{"announcement_id": "a1"},
	}))

	snap, _, err := svc.Current(ctx, "tenant-sup", "room-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, TypeAnnouncement, snap.Type)

	n, err := client.ConversationState.Query().
		Where(conversationstate.TenantID("tenant-sup")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "flows never stack")

	require.NoError(t, svc.Clear(ctx, "tenant-sup", "room-1", "user-1", ClearCompleted))
	snap, expired, err := svc.Current(ctx, "tenant-sup", "room-1", "user-1")
	require.NoError(t, err)
	assert.False(t, expired)
	assert.Equal(t, TypeNormal, snap.Type)
}
