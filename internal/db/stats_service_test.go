package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/stax/internal/models"
)

func TestGetSessionStatsEmpty(t *testing.T) {
	setupTestDB(t)

	stats, err := GetSessionStats()
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalSessions)
	assert.Equal(t, float64(0), stats.WinRate)
	assert.True(t, stats.TotalProfit.IsZero())
	assert.True(t, stats.HourlyRate.IsZero())
}

func TestGetSessionStats(t *testing.T) {
	setupTestDB(t)

	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.Local)

	// Win: +200 over 2h.
	_, err := CreateCompletedSession(CreateCompletedSessionRequest{
		GameType: models.GameTypeCash, BuyIn: money("300"), CashOut: money("500"),
		StartedAt: start, EndedAt: start.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	// Loss: -100 over 4h.
	_, err = CreateCompletedSession(CreateCompletedSessionRequest{
		GameType: models.GameTypeCash, BuyIn: money("200"), CashOut: money("100"),
		StartedAt: start.AddDate(0, 0, 1), EndedAt: start.AddDate(0, 0, 1).Add(4 * time.Hour),
	})
	require.NoError(t, err)

	// Active session, no result yet.
	_, err = CreateSession(CreateSessionRequest{
		GameType: models.GameTypeCash, BuyIn: money("100"),
	})
	require.NoError(t, err)

	stats, err := GetSessionStats()
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalSessions)
	assert.Equal(t, 1, stats.ActiveSessions)
	assert.True(t, stats.TotalBuyIns.Equal(money("600")))
	assert.True(t, stats.TotalCashOuts.Equal(money("600")))
	assert.True(t, stats.TotalProfit.Equal(money("100")))

	// Two completed sessions, one win.
	assert.Equal(t, float64(50), stats.WinRate)
	assert.True(t, stats.AvgBuyIn.Equal(money("200")), "avg over all three sessions")
	assert.True(t, stats.AvgCashOut.Equal(money("300")))
	assert.True(t, stats.AvgProfit.Equal(money("50")))
	assert.True(t, stats.BiggestWin.Equal(money("200")))
	assert.True(t, stats.BiggestLoss.Equal(money("-100")))

	assert.Equal(t, float64(6), stats.TotalHours)
	assert.True(t, stats.HourlyRate.Equal(money("16.67")), "100 profit over 6 hours")
}

func TestGetSessionStatsAllLosses(t *testing.T) {
	setupTestDB(t)

	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.Local)
	_, err := CreateCompletedSession(CreateCompletedSessionRequest{
		GameType: models.GameTypeCash, BuyIn: money("300"), CashOut: money("200"),
		StartedAt: start, EndedAt: start.Add(time.Hour),
	})
	require.NoError(t, err)

	stats, err := GetSessionStats()
	require.NoError(t, err)

	assert.Equal(t, float64(0), stats.WinRate)
	// With one losing session, the single profit value is both extremes.
	assert.True(t, stats.BiggestWin.Equal(money("-100")))
	assert.True(t, stats.BiggestLoss.Equal(money("-100")))
}
