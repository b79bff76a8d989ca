package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account identifies an online platform account that transactions were imported for.
// Name is unique per platform, not globally.
type Account struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name     string `gorm:"not null;uniqueIndex:idx_accounts_name_platform" json:"name"`
	Platform string `gorm:"not null;default:Manual;uniqueIndex:idx_accounts_name_platform" json:"platform"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}

// Transaction is one imported platform ledger entry.
// The unique index on (account, date, type, amount, balance) is the idempotence
// key backstop: the importer checks for duplicates before inserting, and the
// index catches anything that slips through a concurrent import.
type Transaction struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ImportedAt time.Time `gorm:"autoCreateTime" json:"imported_at"`

	AccountID   uint            `gorm:"not null;index;uniqueIndex:idx_txns_dedup" json:"account_id"`
	Date        time.Time       `gorm:"not null;uniqueIndex:idx_txns_dedup" json:"date"`
	Type        string          `gorm:"not null;uniqueIndex:idx_txns_dedup" json:"type"`
	Amount      decimal.Decimal `gorm:"not null;type:decimal(10,2);uniqueIndex:idx_txns_dedup" json:"amount"`
	Balance     decimal.Decimal `gorm:"type:decimal(10,2);uniqueIndex:idx_txns_dedup" json:"balance"`
	Description string          `json:"description"`
	IsExternal  bool            `gorm:"default:false;index" json:"is_external"`
	BatchID     string          `gorm:"index" json:"batch_id"`
}

// ImportBatch records one CSV import run for auditing.
type ImportBatch struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	BatchID   string `gorm:"not null;uniqueIndex" json:"batch_id"` // uuid
	AccountID uint   `gorm:"not null;index" json:"account_id"`
	FileName  string `json:"file_name"`
	Imported  int    `json:"imported"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
}

// AccountSummary is the per-account rollup shown in import history views.
type AccountSummary struct {
	Account          Account          `json:"account"`
	TransactionCount int              `json:"transaction_count"`
	FirstTransaction *time.Time       `json:"first_transaction"`
	LastTransaction  *time.Time       `json:"last_transaction"`
	RealMoneyFlow    decimal.Decimal  `json:"real_money_flow"`
	CurrentBalance   *decimal.Decimal `json:"current_balance"`
}
