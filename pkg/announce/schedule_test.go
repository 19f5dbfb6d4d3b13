package announce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokyo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	return loc
}

func TestSkipReason(t *testing.T) {
	loc := tokyo(t)
	saturday := time.Date(2026, 8, 22, 9, 0, 0, 0, loc)
	monday := time.Date(2026, 8, 24, 9, 0, 0, 0, loc)
	newYear := time.Date(2026, 1, 1, 9, 0, 0, 0, loc)

	assert.Equal(t, "weekend", skipReason(saturday, true, false))
	assert.Equal(t, "", skipReason(saturday, false, false))
	assert.Equal(t, "", skipReason(monday, true, true))
	assert.Equal(t, "holiday", skipReason(newYear, false, true))
	assert.Equal(t, "", skipReason(newYear, false, false))
}

func TestNextCronRun(t *testing.T) {
	loc := tokyo(t)
	// Monday 2026-08-24 10:00 JST
	from := time.Date(2026, 8, 24, 10, 0, 0, 0, loc)

	t.Run("weekday morning", func(t *testing.T) {
		// 09:00 every Monday; next run is the following Monday
		next, err := nextCronRun("0 9 * * 1", from, loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 31, 9, 0, 0, 0, loc), next)
	})

	t.Run("same day later", func(t *testing.T) {
		next, err := nextCronRun("30 18 * * *", from, loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 24, 18, 30, 0, 0, loc), next)
	})

	t.Run("invalid expression", func(t *testing.T) {
		_, err := nextCronRun("not a cron", from, loc)
		assert.Error(t, err)
	})
}

func TestValidateCron(t *testing.T) {
	assert.NoError(t, ValidateCron("0 9 * * 1-5"))
	assert.Error(t, ValidateCron("99 99 * * *"))
}

func TestNormalizeRequestStableAcrossDates(t *testing.T) {
	a := requestHash("明日の朝会は9時から、全員参加")
	b := requestHash("今日の朝会は10時から、全員参加")
	assert.Equal(t, a, b)

	c := requestHash("経費精算の締切リマインド")
	assert.NotEqual(t, a, c)
}
