package rental

import "time"

// DateLayout is the on-disk and command-line format for calendar dates.
const DateLayout = "2006-01-02"

// Date truncates t to a calendar date at midnight UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a yyyy-MM-dd calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders a calendar date as yyyy-MM-dd.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddMonths adds n calendar months to t. When the day of month does not
// exist in the target month the result is clamped to that month's last day,
// so Jan 31 plus one month is Feb 28 (or 29).
func AddMonths(t time.Time, n int) time.Time {
	t = Date(t)
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}
