package announce

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// jpFixedHolidays is the fixed-date national holiday subset used by weekend
// and holiday skipping. Moving holidays (equinoxes, happy-monday shifts) are
// not covered; tenants that need them can disable holiday delivery instead.
var jpFixedHolidays = map[string]string{
	"01-01": "元日",
	"02-11": "建国記念の日",
	"02-23": "天皇誕生日",
	"04-29": "昭和の日",
	"05-03": "憲法記念日",
	"05-04": "みどりの日",
	"05-05": "こどもの日",
	"08-11": "山の日",
	"11-03": "文化の日",
	"11-23": "勤労感謝の日",
}

// isWeekend reports Saturday/Sunday in the given location.
func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// isHoliday reports a fixed-date Japanese national holiday.
func isHoliday(t time.Time) bool {
	_, ok := jpFixedHolidays[t.Format("01-02")]
	return ok
}

// skipReason returns why an execution at t should be skipped, or empty.
func skipReason(t time.Time, skipWeekend, skipHoliday bool) string {
	if skipWeekend && isWeekend(t) {
		return "weekend"
	}
	if skipHoliday && isHoliday(t) {
		return "holiday"
	}
	return ""
}

// nextCronRun computes the next execution after from for a standard 5-field
// cron expression, in the given location.
func nextCronRun(expr string, from time.Time, loc *time.Location) (time.Time, error) {
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return sched.Next(from.In(loc)), nil
}

// ValidateCron checks a recurring schedule expression at request time.
func ValidateCron(expr string) error {
	_, err := cron.ParseStandard(expr)
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return nil
}
