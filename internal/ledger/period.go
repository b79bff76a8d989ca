package ledger

import (
	"fmt"
	"strings"
	"time"
)

// Period is the bucket granularity of a profit series.
type Period int

const (
	Daily Period = iota
	Weekly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return fmt.Sprintf("period(%d)", int(p))
	}
}

// ParsePeriod reads a period name, case-insensitively.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q (want daily, weekly, quarterly, or yearly)", s)
	}
}

// Filter selects which ledger sources contribute to a series.
type Filter int

const (
	// FilterAll merges live sessions and online transactions into one series.
	FilterAll Filter = iota
	// FilterLive uses completed live sessions only.
	FilterLive
	// FilterOnline uses external (real-money) imported transactions only.
	FilterOnline
)

func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterLive:
		return "live"
	case FilterOnline:
		return "online"
	default:
		return fmt.Sprintf("filter(%d)", int(f))
	}
}

// ParseFilter reads a source filter name, case-insensitively.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(s) {
	case "all", "":
		return FilterAll, nil
	case "live":
		return FilterLive, nil
	case "online":
		return FilterOnline, nil
	default:
		return FilterAll, fmt.Errorf("unknown filter %q (want all, live, or online)", s)
	}
}

// Range bounds a series by date. A zero Start or End leaves that side open.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// ParseRelativeRange converts a relative window name (1m, 3m, 6m, 12m, all)
// into a concrete range ending at now.
func ParseRelativeRange(s string, now time.Time) (Range, error) {
	switch strings.ToLower(s) {
	case "1m":
		return Range{Start: now.AddDate(0, -1, 0), End: now}, nil
	case "3m":
		return Range{Start: now.AddDate(0, -3, 0), End: now}, nil
	case "6m":
		return Range{Start: now.AddDate(0, -6, 0), End: now}, nil
	case "12m":
		return Range{Start: now.AddDate(-1, 0, 0), End: now}, nil
	case "all", "":
		return Range{}, nil
	default:
		return Range{}, fmt.Errorf("unknown range %q (want 1m, 3m, 6m, 12m, or all)", s)
	}
}

// YearRange bounds a series to one calendar year, local time.
func YearRange(year int) Range {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	return Range{Start: start, End: start.AddDate(1, 0, 0).Add(-time.Nanosecond)}
}
