package db

import (
	"github.com/shopspring/decimal"
)

// SessionStats is the rollup across all live sessions. Averages and win rate
// only consider completed sessions, since active ones have no result yet.
type SessionStats struct {
	TotalSessions  int             `json:"total_sessions"`
	ActiveSessions int             `json:"active_sessions"`
	TotalBuyIns    decimal.Decimal `json:"total_buy_ins"`
	TotalCashOuts  decimal.Decimal `json:"total_cash_outs"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
	WinRate        float64         `json:"win_rate"` // percent of completed sessions won
	AvgBuyIn       decimal.Decimal `json:"avg_buy_in"`
	AvgCashOut     decimal.Decimal `json:"avg_cash_out"`
	AvgProfit      decimal.Decimal `json:"avg_profit"`
	BiggestWin     decimal.Decimal `json:"biggest_win"`
	BiggestLoss    decimal.Decimal `json:"biggest_loss"`
	TotalHours     float64         `json:"total_hours"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
}

// GetSessionStats computes the live-session rollup.
func GetSessionStats() (*SessionStats, error) {
	sessions, err := GetSessions()
	if err != nil {
		return nil, err
	}

	stats := SessionStats{}
	var completed, wins, totalMinutes int
	var completedCashOuts, completedProfit decimal.Decimal
	first := true

	for _, s := range sessions {
		stats.TotalSessions++
		if s.IsActive {
			stats.ActiveSessions++
		}
		stats.TotalBuyIns = stats.TotalBuyIns.Add(s.BuyIn)
		totalMinutes += s.DurationMinutes

		if s.CashOut != nil {
			stats.TotalCashOuts = stats.TotalCashOuts.Add(*s.CashOut)
			completedCashOuts = completedCashOuts.Add(*s.CashOut)
		}
		if s.Profit == nil {
			continue
		}

		completed++
		profit := *s.Profit
		stats.TotalProfit = stats.TotalProfit.Add(profit)
		completedProfit = completedProfit.Add(profit)
		if profit.IsPositive() {
			wins++
		}
		if first || profit.GreaterThan(stats.BiggestWin) {
			stats.BiggestWin = profit
		}
		if first || profit.LessThan(stats.BiggestLoss) {
			stats.BiggestLoss = profit
		}
		first = false
	}

	if stats.TotalSessions > 0 {
		stats.AvgBuyIn = stats.TotalBuyIns.Div(decimal.NewFromInt(int64(stats.TotalSessions))).Round(2)
	}
	if completed > 0 {
		n := decimal.NewFromInt(int64(completed))
		stats.AvgCashOut = completedCashOuts.Div(n).Round(2)
		stats.AvgProfit = completedProfit.Div(n).Round(2)
		stats.WinRate = float64(wins) * 100.0 / float64(completed)
	}

	stats.TotalHours = float64(totalMinutes) / 60.0
	if stats.TotalHours > 0 {
		stats.HourlyRate = stats.TotalProfit.Div(decimal.NewFromFloat(stats.TotalHours)).Round(2)
	}

	return &stats, nil
}
