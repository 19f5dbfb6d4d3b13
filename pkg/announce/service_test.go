package announce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/announcement"
	"github.com/wisehub-ai/wisehub/pkg/chatwork"
)

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"はい", true},
		{"はい、お願いします", true},
		{"OK", true},
		{"承認します", true},
		{"いいえ", false},
		{"タスクはいらないです", false}, // Contains はい but declines
		{"実行しないでください", false},
		{"それは違うと思います", false},
		{"うーん", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isAffirmative(tt.in), tt.in)
	}
}

func TestPickPresentedIndexesShownCandidates(t *testing.T) {
	rooms := []chatwork.Room{
		{RoomID: "10", Name: "営業部"},
		{RoomID: "20", Name: "営業2課"},
		{RoomID: "30", Name: "開発部"},
	}
	// Presentation order differs from any fresh ranking of the reply text.
	presented := []string{"20", "10", "30"}

	picked, ok := pickPresented("2", presented, rooms)
	require.True(t, ok)
	assert.Equal(t, "10", picked.RoomID)
	assert.Equal(t, "営業部", picked.Name)
	assert.Equal(t, 1.0, picked.Similarity)

	picked, ok = pickPresented("1", presented, rooms)
	require.True(t, ok)
	assert.Equal(t, "20", picked.RoomID)

	_, ok = pickPresented("4", presented, rooms)
	assert.False(t, ok, "out-of-range number")

	_, ok = pickPresented("営業部", presented, rooms)
	assert.False(t, ok, "non-numeric reply falls back to name matching")

	_, ok = pickPresented("1", []string{"99"}, rooms)
	assert.False(t, ok, "candidate no longer in the room list")
}

func TestCandidateRoomIDs(t *testing.T) {
	matches := []RoomMatch{
		{RoomID: "a", Similarity: 0.9},
		{RoomID: "b", Similarity: 0.8},
		{RoomID: "c", Similarity: 0.7},
		{RoomID: "d", Similarity: 0.6},
	}
	assert.Equal(t, []string{"a", "b", "c"}, candidateRoomIDs(matches))
	assert.Equal(t, []string{"a"}, candidateRoomIDs(matches[:1]))
}

func TestFirstRun(t *testing.T) {
	loc := tokyo(t)
	now := time.Date(2026, 8, 24, 10, 0, 0, 0, loc)

	t.Run("immediate lands strictly in the future", func(t *testing.T) {
		got, err := firstRun(&ent.Announcement{
			ScheduleType: announcement.ScheduleTypeImmediate,
		}, now, loc)
		require.NoError(t, err)
		assert.True(t, got.After(now))
		assert.Equal(t, now.Add(immediateDelay), got)
	})

	t.Run("one time uses the scheduled instant", func(t *testing.T) {
		at := now.Add(2 * time.Hour)
		got, err := firstRun(&ent.Announcement{
			ScheduleType: announcement.ScheduleTypeOneTime,
			ScheduledAt:  &at,
		}, now, loc)
		require.NoError(t, err)
		assert.Equal(t, at, got)
	})

	t.Run("one time in the past is rejected", func(t *testing.T) {
		at := now.Add(-time.Minute)
		_, err := firstRun(&ent.Announcement{
			ID:           "a1",
			ScheduleType: announcement.ScheduleTypeOneTime,
			ScheduledAt:  &at,
		}, now, loc)
		assert.Error(t, err)
	})

	t.Run("recurring follows the cron expression", func(t *testing.T) {
		expr := "30 18 * * *"
		got, err := firstRun(&ent.Announcement{
			ScheduleType:   announcement.ScheduleTypeRecurring,
			CronExpression: &expr,
		}, now, loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 24, 18, 30, 0, 0, loc), got)
	})

	t.Run("recurring without cron is rejected", func(t *testing.T) {
		_, err := firstRun(&ent.Announcement{
			ID:           "a2",
			ScheduleType: announcement.ScheduleTypeRecurring,
		}, now, loc)
		assert.Error(t, err)
	})
}

func TestStateStringsRoundTrip(t *testing.T) {
	// State data goes through JSON persistence, so slices come back as []any.
	assert.Equal(t, []string{"1", "2"}, stateStrings([]any{"1", "2"}))
	assert.Equal(t, []string{"1"}, stateStrings([]string{"1"}))
	assert.Nil(t, stateStrings(nil))
	assert.Nil(t, stateStrings("1"))
}
