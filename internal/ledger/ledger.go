// Package ledger merges the two bankroll sources (completed live sessions and
// imported external transactions) into unified profit views: global totals and
// time-bucketed series with running cumulative profit.
package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/balkashynov/stax/internal/classify"
	"github.com/balkashynov/stax/internal/db"
)

// Totals is the global profit split by source.
type Totals struct {
	All    decimal.Decimal `json:"all"`
	Live   decimal.Decimal `json:"live"`
	Online decimal.Decimal `json:"online"`
}

// Point is one bucket of a profit series. CumulativeProfit is the running sum
// of PeriodProfit across the series in ascending bucket order.
type Point struct {
	Bucket           string          `json:"bucket"`
	PeriodProfit     decimal.Decimal `json:"period_profit"`
	CumulativeProfit decimal.Decimal `json:"cumulative_profit"`
}

// A contribution is one dated profit amount from either source.
type contribution struct {
	date   time.Time
	amount decimal.Decimal
}

// GetTotals returns overall profit: live (completed session profits), online
// (real-money deltas of external transactions), and their sum.
func GetTotals() (*Totals, error) {
	live, err := liveContributions()
	if err != nil {
		return nil, err
	}
	online, err := onlineContributions()
	if err != nil {
		return nil, err
	}

	totals := Totals{}
	for _, c := range live {
		totals.Live = totals.Live.Add(c.amount)
	}
	for _, c := range online {
		totals.Online = totals.Online.Add(c.amount)
	}
	totals.All = totals.Live.Add(totals.Online)

	return &totals, nil
}

// TimeSeries buckets profit by period over the given range. Contributions from
// both sources landing in the same bucket merge into one point; buckets with no
// activity are omitted, so the series is sparse.
func TimeSeries(period Period, filter Filter, r Range) ([]Point, error) {
	contribs, err := contributions(filter)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]decimal.Decimal)
	for _, c := range contribs {
		if !r.Contains(c.date) {
			continue
		}
		key := BucketKey(period, c.date)
		buckets[key] = buckets[key].Add(c.amount)
	}

	return accumulate(buckets), nil
}

// YearProgress is the daily series for one calendar year.
func YearProgress(year int, filter Filter) ([]Point, error) {
	if year < 1900 || year > 2100 {
		return nil, fmt.Errorf("invalid year %d", year)
	}
	return TimeSeries(Daily, filter, YearRange(year))
}

// WeeklyProgress is the weekly series over a relative window ending now.
func WeeklyProgress(relRange string, filter Filter) ([]Point, error) {
	r, err := ParseRelativeRange(relRange, time.Now())
	if err != nil {
		return nil, err
	}
	return TimeSeries(Weekly, filter, r)
}

// AvailableYears lists the years that have session activity, newest first. An
// empty ledger reports the current year so callers always have something to
// render.
func AvailableYears() ([]int, error) {
	sessions, err := db.GetSessions()
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	var years []int
	for _, s := range sessions {
		y := s.StartedAt.Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	if len(years) == 0 {
		return []int{time.Now().Year()}, nil
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

// contributions gathers dated profit amounts for the requested sources. For
// FilterAll both sources are combined before bucketing, so a shared bucket
// sums to a single row.
func contributions(filter Filter) ([]contribution, error) {
	switch filter {
	case FilterLive:
		return liveContributions()
	case FilterOnline:
		return onlineContributions()
	case FilterAll:
		live, err := liveContributions()
		if err != nil {
			return nil, err
		}
		online, err := onlineContributions()
		if err != nil {
			return nil, err
		}
		return append(live, online...), nil
	default:
		return nil, fmt.Errorf("unknown filter %v", filter)
	}
}

// liveContributions reads completed sessions; each contributes its stored
// profit at its start time.
func liveContributions() ([]contribution, error) {
	sessions, err := db.GetCompletedSessions()
	if err != nil {
		return nil, err
	}

	contribs := make([]contribution, 0, len(sessions))
	for _, s := range sessions {
		if s.Profit == nil {
			continue
		}
		contribs = append(contribs, contribution{date: s.StartedAt, amount: *s.Profit})
	}
	return contribs, nil
}

// onlineContributions reads external transactions; each contributes its
// classifier real-money delta, not its raw amount.
func onlineContributions() ([]contribution, error) {
	txns, err := db.GetExternalTransactions()
	if err != nil {
		return nil, err
	}

	contribs := make([]contribution, 0, len(txns))
	for _, t := range txns {
		contribs = append(contribs, contribution{
			date:   t.Date,
			amount: classify.RealMoneyDelta(t.Type, t.Amount),
		})
	}
	return contribs, nil
}

// accumulate orders buckets ascending and threads the running total through
// them. The cumulative sum is recomputed from scratch on every call.
func accumulate(buckets map[string]decimal.Decimal) []Point {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]Point, 0, len(keys))
	var running decimal.Decimal
	for _, k := range keys {
		running = running.Add(buckets[k])
		points = append(points, Point{
			Bucket:           k,
			PeriodProfit:     buckets[k],
			CumulativeProfit: running,
		})
	}
	return points
}
