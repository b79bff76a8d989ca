package db

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/stax/internal/models"
)

func TestGetOrCreateAccount(t *testing.T) {
	setupTestDB(t)

	a, err := GetOrCreateAccount("main", "Global Poker")
	require.NoError(t, err)
	assert.NotZero(t, a.ID)

	again, err := GetOrCreateAccount("main", "Global Poker")
	require.NoError(t, err)
	assert.Equal(t, a.ID, again.ID)

	other, err := GetOrCreateAccount("main", "Other Site")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, other.ID, "same name on another platform is a new account")
}

func TestGetAccountByIDNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := GetAccountByID(77)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTransactionExistsComparesDecimals(t *testing.T) {
	setupTestDB(t)

	account, err := GetOrCreateAccount("main", "Global Poker")
	require.NoError(t, err)

	date := time.Date(2025, 6, 13, 16, 58, 0, 0, time.Local)
	require.NoError(t, InsertTransaction(&models.Transaction{
		AccountID: account.ID,
		Date:      date,
		Type:      "Purchase - Credit Card",
		Amount:    money("20"),
		Balance:   money("45.25"),
	}))

	// Same value, different lexical representation.
	exists, err := TransactionExists(account.ID, date, "Purchase - Credit Card", money("20.00"), money("45.25"))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = TransactionExists(account.ID, date, "Purchase - Credit Card", money("20.01"), money("45.25"))
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = TransactionExists(account.ID, date, "Redemption", money("20"), money("45.25"))
	require.NoError(t, err)
	assert.False(t, exists, "type is part of the key")

	exists, err = TransactionExists(account.ID, date.Add(time.Minute), "Purchase - Credit Card", money("20"), money("45.25"))
	require.NoError(t, err)
	assert.False(t, exists, "timestamp is part of the key")
}

func TestGetExternalTransactions(t *testing.T) {
	setupTestDB(t)

	account, err := GetOrCreateAccount("main", "Global Poker")
	require.NoError(t, err)

	base := time.Date(2025, 6, 13, 12, 0, 0, 0, time.Local)
	rows := []models.Transaction{
		{AccountID: account.ID, Date: base.Add(2 * time.Hour), Type: "Redemption", Amount: money("150"), Balance: money("0"), IsExternal: true},
		{AccountID: account.ID, Date: base, Type: "Purchase - Credit Card", Amount: money("20"), Balance: money("45.25"), IsExternal: true},
		{AccountID: account.ID, Date: base.Add(time.Hour), Type: "Daily Bonus", Amount: money("0.25"), Balance: money("45.50"), IsExternal: false},
	}
	for i := range rows {
		require.NoError(t, InsertTransaction(&rows[i]))
	}

	external, err := GetExternalTransactions()
	require.NoError(t, err)
	require.Len(t, external, 2)
	assert.Equal(t, "Purchase - Credit Card", external[0].Type, "date ascending")
	assert.Equal(t, "Redemption", external[1].Type)
}

func TestGetAccountTransactions(t *testing.T) {
	setupTestDB(t)

	account, err := GetOrCreateAccount("main", "Global Poker")
	require.NoError(t, err)

	base := time.Date(2025, 6, 13, 12, 0, 0, 0, time.Local)
	for i := 0; i < 3; i++ {
		require.NoError(t, InsertTransaction(&models.Transaction{
			AccountID: account.ID,
			Date:      base.Add(time.Duration(i) * time.Hour),
			Type:      "Daily Bonus",
			Amount:    money("0.25"),
			Balance:   money("1"),
		}))
	}

	txns, err := GetAccountTransactions(account.ID)
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.True(t, txns[0].Date.After(txns[1].Date), "newest first")

	_, err = GetAccountTransactions(999)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListAccountSummaries(t *testing.T) {
	setupTestDB(t)

	account, err := GetOrCreateAccount("main", "Global Poker")
	require.NoError(t, err)
	_, err = GetOrCreateAccount("empty", "Global Poker")
	require.NoError(t, err)

	base := time.Date(2025, 6, 13, 12, 0, 0, 0, time.Local)
	rows := []models.Transaction{
		{AccountID: account.ID, Date: base, Type: "Purchase - Credit Card", Amount: money("20"), Balance: money("45.25"), IsExternal: true},
		{AccountID: account.ID, Date: base.Add(time.Hour), Type: "Daily Bonus", Amount: money("0.25"), Balance: money("45.50"), IsExternal: false},
		{AccountID: account.ID, Date: base.Add(2 * time.Hour), Type: "Redemption", Amount: money("150"), Balance: money("10"), IsExternal: true},
	}
	for i := range rows {
		require.NoError(t, InsertTransaction(&rows[i]))
	}

	summaries, err := ListAccountSummaries()
	require.NoError(t, err)
	require.Len(t, summaries, 1, "accounts with no transactions are omitted")

	s := summaries[0]
	assert.Equal(t, account.ID, s.Account.ID)
	assert.Equal(t, 3, s.TransactionCount)
	require.NotNil(t, s.FirstTransaction)
	require.NotNil(t, s.LastTransaction)
	assert.True(t, base.Equal(*s.FirstTransaction))
	assert.True(t, base.Add(2*time.Hour).Equal(*s.LastTransaction))

	// -20 spent, +150 redeemed; the internal bonus doesn't count.
	assert.True(t, s.RealMoneyFlow.Equal(money("130")))
	require.NotNil(t, s.CurrentBalance)
	assert.True(t, s.CurrentBalance.Equal(money("10")))
}

func TestImportBatches(t *testing.T) {
	setupTestDB(t)

	account, err := GetOrCreateAccount("main", "Global Poker")
	require.NoError(t, err)

	require.NoError(t, CreateImportBatch(&models.ImportBatch{
		BatchID: "batch-1", AccountID: account.ID, FileName: "a.csv", Imported: 3,
	}))
	require.NoError(t, CreateImportBatch(&models.ImportBatch{
		BatchID: "batch-2", AccountID: account.ID, FileName: "b.csv", Skipped: 3,
	}))

	batches, err := GetImportBatches()
	require.NoError(t, err)
	require.Len(t, batches, 2)
}
