package brain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisehub-ai/wisehub/pkg/capability"
	"github.com/wisehub-ai/wisehub/pkg/execerr"
	"github.com/wisehub-ai/wisehub/pkg/models"
)

func executorWith(t *testing.T, desc *capability.Descriptor, h capability.Handler) *executor {
	t.Helper()
	r := capability.NewRegistry()
	require.NoError(t, r.Register(desc))
	require.NoError(t, r.RegisterHandler(desc.HandlerKey, h))
	return newExecutor(r, time.Second, 3)
}

func paramDesc() *capability.Descriptor {
	return &capability.Descriptor{
		Key:               "note_create",
		DisplayName:       "メモ作成",
		Category:          "note",
		Enabled:           true,
		RequiredRoleLevel: 1,
		IntentKeywords:    capability.Keywords{Primary: []string{"メモ"}},
		Parameters: []capability.Param{
			{Name: "body", Type: capability.ParamString, Required: true, Prompt: "内容を教えてください。"},
			{Name: "due", Type: capability.ParamDate, Required: false},
		},
		HandlerKey: "note_create",
	}
}

func TestExecuteMissingRequiredParamAsksTargetedQuestion(t *testing.T) {
	e := executorWith(t, paramDesc(), func(_ context.Context, _ map[string]any, _ models.Envelope, _ *models.MemoryContext) (*models.HandlerResult, error) {
		t.Fatal("handler must not run with a missing required parameter")
		return nil, nil
	})

	plan := &models.ExecutionPlan{CapabilityKey: "note_create", Parameters: map[string]any{}}
	result, confirm := e.Execute(context.Background(), plan, models.Envelope{}, &models.MemoryContext{})

	assert.Nil(t, result)
	require.NotNil(t, confirm)
	assert.Equal(t, "内容を教えてください。", confirm.Question)
	assert.Equal(t, "missing_parameter:body", confirm.Reason)
	assert.Equal(t, "note_create", confirm.Pending.CapabilityKey)
}

func TestExecuteCoercesParameters(t *testing.T) {
	var got map[string]any
	e := executorWith(t, paramDesc(), func(_ context.Context, params map[string]any, _ models.Envelope, _ *models.MemoryContext) (*models.HandlerResult, error) {
		got = params
		return &models.HandlerResult{Success: true, UserMessage: "ok"}, nil
	})

	tz, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	plan := &models.ExecutionPlan{
		CapabilityKey: "note_create",
		Parameters:    map[string]any{"body": 42, "due": "2026-09-01 18:00"},
	}
	result, confirm := e.Execute(context.Background(), plan, models.Envelope{Timezone: tz}, &models.MemoryContext{})

	assert.Nil(t, confirm)
	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, "42", got["body"])
	due, ok := got["due"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 18, due.Hour())
	assert.Equal(t, "Asia/Tokyo", due.Location().String())
}

func TestExecuteUncoercibleParamFails(t *testing.T) {
	e := executorWith(t, paramDesc(), func(_ context.Context, _ map[string]any, _ models.Envelope, _ *models.MemoryContext) (*models.HandlerResult, error) {
		t.Fatal("handler must not run with an invalid parameter")
		return nil, nil
	})

	plan := &models.ExecutionPlan{
		CapabilityKey: "note_create",
		Parameters:    map[string]any{"body": "買い出し", "due": "そのうち"},
	}
	result, confirm := e.Execute(context.Background(), plan, models.Envelope{}, &models.MemoryContext{})

	assert.Nil(t, confirm)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, execerr.KindParameterInvalid, result.ErrorKind)
	assert.Equal(t, "due", result.Data["parameter"])
}

func TestExecuteHandlerErrorMapsToKind(t *testing.T) {
	e := executorWith(t, paramDesc(), func(_ context.Context, _ map[string]any, _ models.Envelope, _ *models.MemoryContext) (*models.HandlerResult, error) {
		return nil, execerr.Newf(execerr.KindNotFound, "no such note")
	})

	plan := &models.ExecutionPlan{CapabilityKey: "note_create", Parameters: map[string]any{"body": "x"}}
	result, confirm := e.Execute(context.Background(), plan, models.Envelope{}, &models.MemoryContext{})

	assert.Nil(t, confirm)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, execerr.KindNotFound, result.ErrorKind)
	assert.Equal(t, execerr.UserLine(execerr.KindNotFound), result.UserMessage)
}

func TestExecuteChainDepthBounded(t *testing.T) {
	calls := 0
	desc := paramDesc()
	e := executorWith(t, desc, func(_ context.Context, _ map[string]any, _ models.Envelope, _ *models.MemoryContext) (*models.HandlerResult, error) {
		calls++
		return &models.HandlerResult{
			Success:     true,
			UserMessage: "step",
			NextAction:  "note_create",
			NextParams:  map[string]any{"body": "again"},
		}, nil
	})

	plan := &models.ExecutionPlan{CapabilityKey: "note_create", Parameters: map[string]any{"body": "start"}}
	result, confirm := e.Execute(context.Background(), plan, models.Envelope{}, &models.MemoryContext{})

	assert.Nil(t, confirm)
	require.NotNil(t, result)
	assert.Equal(t, 3, calls, "one primary call plus chained calls up to the depth bound")
	assert.Empty(t, result.NextAction)
}

func TestParseDateRelativeForms(t *testing.T) {
	tz, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	today, ok := parseDate("今日", tz)
	require.True(t, ok)
	now := time.Now().In(tz)
	assert.Equal(t, now.Day(), today.Day())
	assert.Equal(t, 23, today.Hour())
	assert.Equal(t, 59, today.Minute())

	tomorrow, ok := parseDate("明日 09:30", tz)
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, 1).Day(), tomorrow.Day())
	assert.Equal(t, 9, tomorrow.Hour())
	assert.Equal(t, 30, tomorrow.Minute())
}

func TestParseDateYearInference(t *testing.T) {
	tz := time.UTC
	parsed, ok := parseDate("1月2日", tz)
	require.True(t, ok)
	assert.False(t, parsed.Before(time.Now().In(tz)), "year-less dates resolve to the next occurrence")
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 2, parsed.Day())
}

func TestParseDateAbsolute(t *testing.T) {
	parsed, ok := parseDate("2026-12-24", time.UTC)
	require.True(t, ok)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.December, parsed.Month())

	_, ok = parseDate("not a date", time.UTC)
	assert.False(t, ok)
}
