package scheduleutil

import "time"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	// DefaultClock is applied when a post gains a scheduled date
	// without an explicit time.
	DefaultClock = "09:00"
)

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

func ValidClock(s string) bool {
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// MonthIndex flattens a date to a linear month count, for month-window
// comparisons.
func MonthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// FirstOfMonth truncates a date to the first day of its month in UTC.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
