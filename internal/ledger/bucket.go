package ledger

import (
	"fmt"
	"time"
)

// BucketKey maps a timestamp to its bucket label. Labels sort
// lexicographically in chronological order within one period:
// daily "2025-06-13", weekly "2025-06-08" (start of week), quarterly
// "2025-Q2", yearly "2025".
func BucketKey(p Period, t time.Time) string {
	switch p {
	case Daily:
		return t.Format("2006-01-02")
	case Weekly:
		return WeekStart(t).Format("2006-01-02")
	case Quarterly:
		return fmt.Sprintf("%04d-Q%d", t.Year(), (int(t.Month())-1)/3+1)
	case Yearly:
		return fmt.Sprintf("%04d", t.Year())
	default:
		return t.Format("2006-01-02")
	}
}

// WeekStart returns the Sunday starting the week that contains t, at midnight.
func WeekStart(t time.Time) time.Time {
	d := t.AddDate(0, 0, -int(t.Weekday()))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}
