package capability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisehub-ai/wisehub/pkg/models"
)

func noopHandler(context.Context, map[string]any, models.Envelope, *models.MemoryContext) (*models.HandlerResult, error) {
	return &models.HandlerResult{Success: true}, nil
}

func builtinRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, d := range Builtin() {
		require.NoError(t, r.Register(d))
		if _, ok := r.handlers[d.HandlerKey]; !ok {
			require.NoError(t, r.RegisterHandler(d.HandlerKey, noopHandler))
		}
	}
	return r
}

func TestBuiltinCatalog_Validates(t *testing.T) {
	r := builtinRegistry(t)
	require.NoError(t, r.Validate())
}

func TestValidate_MissingHandler(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Descriptor{
		Key:               "x",
		Enabled:           true,
		RequiredRoleLevel: 1,
		HandlerKey:        "missing",
		IntentKeywords:    Keywords{Primary: []string{"x"}},
	}))
	assert.ErrorContains(t, r.Validate(), "unknown handler")
}

func TestValidate_UnreferencedHandler(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterHandler("orphan", noopHandler))
	assert.ErrorContains(t, r.Validate(), "not referenced")
}

func TestValidate_EnabledWithoutKeywords(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterHandler("h", noopHandler))
	require.NoError(t, r.Register(&Descriptor{
		Key:               "silent",
		Enabled:           true,
		RequiredRoleLevel: 1,
		HandlerKey:        "h",
	}))
	assert.ErrorContains(t, r.Validate(), "no primary intent keywords")
}

func TestEnabled_FiltersByRoleLevel(t *testing.T) {
	r := builtinRegistry(t)

	low := r.Enabled(1)
	for _, d := range low {
		assert.LessOrEqual(t, d.RequiredRoleLevel, 1)
	}
	// announcement_create requires role 3
	keys := make(map[string]bool)
	for _, d := range low {
		keys[d.Key] = true
	}
	assert.False(t, keys["announcement_create"])

	exec := r.Enabled(6)
	keys = make(map[string]bool)
	for _, d := range exec {
		keys[d.Key] = true
	}
	assert.True(t, keys["announcement_create"])
	assert.True(t, keys["teaching_record"])
}

func TestRegister_Duplicate(t *testing.T) {
	r := NewRegistry()
	d := &Descriptor{Key: "dup", RequiredRoleLevel: 1, HandlerKey: "h"}
	require.NoError(t, r.Register(d))
	assert.Error(t, r.Register(d))
}
