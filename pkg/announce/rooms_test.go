package announce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisehub-ai/wisehub/pkg/chatwork"
)

func TestMatchRooms(t *testing.T) {
	rooms := []chatwork.Room{
		{RoomID: "1", Name: "【研修】新人チャット"},
		{RoomID: "2", Name: "営業部"},
		{RoomID: "3", Name: "研修"},
	}

	t.Run("exact after normalization", func(t *testing.T) {
		matches := MatchRooms("研修", rooms)
		require.NotEmpty(t, matches)
		assert.Equal(t, "3", matches[0].RoomID)
		assert.Equal(t, 1.0, matches[0].Similarity)
	})

	t.Run("substring scores above threshold", func(t *testing.T) {
		matches := MatchRooms("営業", rooms)
		require.NotEmpty(t, matches)
		assert.Equal(t, "2", matches[0].RoomID)
		assert.GreaterOrEqual(t, matches[0].Similarity, 0.5)
	})

	t.Run("unrelated name scores low", func(t *testing.T) {
		matches := MatchRooms("経理のへや", rooms)
		require.NotEmpty(t, matches)
		assert.Less(t, matches[0].Similarity, 0.8)
	})

	t.Run("empty request", func(t *testing.T) {
		assert.Nil(t, MatchRooms("", rooms))
	})
}

func TestSimilarityBounds(t *testing.T) {
	assert.Equal(t, 1.0, similarity("a", "a"))
	assert.Equal(t, 0.0, similarity("", "abc"))
	s := similarity("kickoff", "standup")
	assert.GreaterOrEqual(t, s, 0.0)
	assert.Less(t, s, 0.8)
}
