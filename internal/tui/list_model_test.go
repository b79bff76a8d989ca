package tui

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/stax/internal/models"
)

func testSession(profit string) models.Session {
	p := decimal.RequireFromString(profit)
	ended := time.Date(2025, 6, 13, 22, 0, 0, 0, time.Local)
	return models.Session{
		ID:        1,
		StartedAt: time.Date(2025, 6, 13, 18, 0, 0, 0, time.Local),
		EndedAt:   &ended,
		GameType:  models.GameTypeCash,
		BuyIn:     decimal.RequireFromString("300"),
		Profit:    &p,
	}
}

func TestDetailViewMoneyFormat(t *testing.T) {
	m := NewSessionListModel([]models.Session{testSession("-150")})
	m.showingDetails = true

	view := m.View()
	assert.Contains(t, view, "-$150.00")
	assert.NotContains(t, view, "$-150.00")

	m = NewSessionListModel([]models.Session{testSession("225.50")})
	m.showingDetails = true
	assert.Contains(t, m.View(), "$225.50")
}

func TestTableViewMoneyFormat(t *testing.T) {
	m := NewSessionListModel([]models.Session{testSession("-150")})

	view := m.View()
	assert.Contains(t, view, "-$150.00")
	assert.NotContains(t, view, "$-150.00")
}

func TestViewEmptyList(t *testing.T) {
	m := NewSessionListModel(nil)
	assert.Contains(t, m.View(), "No sessions yet")
}
