package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/balkashynov/stax/internal/classify"
	"github.com/balkashynov/stax/internal/models"
)

// GetOrCreateAccount looks up an account by name within a platform, creating it
// on first use.
func GetOrCreateAccount(name, platform string) (*models.Account, error) {
	var account models.Account

	err := DB.Where("name = ? AND platform = ?", name, platform).First(&account).Error
	if err == nil {
		return &account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account = models.Account{Name: name, Platform: platform}
	if err := DB.Create(&account).Error; err != nil {
		return nil, err
	}

	return &account, nil
}

// GetAccountByID retrieves an account by ID
func GetAccountByID(id uint) (*models.Account, error) {
	var account models.Account

	err := DB.First(&account, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("account #%d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// TransactionExists checks the idempotence key (account, timestamp, type,
// amount, balance). Amounts are compared as decimals in Go rather than as
// stored strings, so "20" and "20.00" match.
func TransactionExists(accountID uint, date time.Time, txnType string, amount, balance decimal.Decimal) (bool, error) {
	var candidates []models.Transaction

	err := DB.Where("account_id = ? AND date = ? AND type = ?", accountID, date, txnType).
		Find(&candidates).Error
	if err != nil {
		return false, err
	}

	for _, c := range candidates {
		if c.Amount.Equal(amount) && c.Balance.Equal(balance) {
			return true, nil
		}
	}
	return false, nil
}

// InsertTransaction persists one imported transaction.
func InsertTransaction(txn *models.Transaction) error {
	return DB.Create(txn).Error
}

// GetExternalTransactions returns all real-money transactions in date order,
// the read the aggregation engine works from.
func GetExternalTransactions() ([]models.Transaction, error) {
	var txns []models.Transaction

	err := DB.Where("is_external = ?", true).
		Order("date ASC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}

	return txns, nil
}

// GetAccountTransactions returns an account's transactions, newest first.
func GetAccountTransactions(accountID uint) ([]models.Transaction, error) {
	if _, err := GetAccountByID(accountID); err != nil {
		return nil, err
	}

	var txns []models.Transaction
	err := DB.Where("account_id = ?", accountID).
		Order("date DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}

	return txns, nil
}

// GetAccounts returns all import accounts ordered by name
func GetAccounts() ([]models.Account, error) {
	var accounts []models.Account

	if err := DB.Order("name ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}

	return accounts, nil
}

// ListAccountSummaries returns a rollup per imported account: transaction
// count, first/last transaction, net external flow, and the most recent
// reported balance.
func ListAccountSummaries() ([]models.AccountSummary, error) {
	var accounts []models.Account
	if err := DB.Order("name ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}

	var summaries []models.AccountSummary
	for _, account := range accounts {
		var txns []models.Transaction
		err := DB.Where("account_id = ?", account.ID).
			Order("date ASC").
			Find(&txns).Error
		if err != nil {
			return nil, err
		}
		if len(txns) == 0 {
			continue
		}

		summary := models.AccountSummary{
			Account:          account,
			TransactionCount: len(txns),
		}
		firstDate := txns[0].Date
		lastDate := txns[len(txns)-1].Date
		summary.FirstTransaction = &firstDate
		summary.LastTransaction = &lastDate

		for _, t := range txns {
			if t.IsExternal {
				summary.RealMoneyFlow = summary.RealMoneyFlow.Add(classify.RealMoneyDelta(t.Type, t.Amount))
			}
		}
		latestBalance := txns[len(txns)-1].Balance
		summary.CurrentBalance = &latestBalance

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// CreateImportBatch records one import run
func CreateImportBatch(batch *models.ImportBatch) error {
	return DB.Create(batch).Error
}

// GetImportBatches returns import history, newest first
func GetImportBatches() ([]models.ImportBatch, error) {
	var batches []models.ImportBatch

	if err := DB.Order("created_at DESC").Find(&batches).Error; err != nil {
		return nil, err
	}

	return batches, nil
}
