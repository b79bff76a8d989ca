// Package importer loads parsed platform transactions into the ledger without
// double-counting. Re-importing a file, or an overlapping export, only inserts
// rows that weren't seen before.
package importer

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/balkashynov/stax/internal/classify"
	"github.com/balkashynov/stax/internal/db"
	"github.com/balkashynov/stax/internal/gpcsv"
	"github.com/balkashynov/stax/internal/models"
)

// Result reports one import run. The batch is best-effort: a failing record is
// reported in Errors and the rest of the batch is still attempted.
type Result struct {
	Success  bool     `json:"success"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
	BatchID  string   `json:"batch_id"`
}

// Import inserts the records that aren't already in the account's ledger.
// Records are processed oldest first so ties on the same timestamp keep a
// deterministic order and running balances read in source order.
func Import(accountID uint, records []gpcsv.Record) Result {
	sorted := make([]gpcsv.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	result := Result{Success: true, BatchID: uuid.NewString()}

	for _, rec := range sorted {
		exists, err := db.TransactionExists(accountID, rec.Date, rec.Type, rec.Amount, rec.Balance)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("error importing transaction: %v", err))
			result.Success = false
			continue
		}
		if exists {
			result.Skipped++
			continue
		}

		txn := models.Transaction{
			AccountID:   accountID,
			Date:        rec.Date,
			Type:        rec.Type,
			Amount:      rec.Amount,
			Balance:     rec.Balance,
			Description: rec.Description,
			IsExternal:  classify.IsExternal(rec.Type),
			BatchID:     result.BatchID,
		}
		if err := db.InsertTransaction(&txn); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("error importing transaction: %v", err))
			result.Success = false
			continue
		}
		result.Imported++
	}

	return result
}

// ImportFile parses a CSV export and imports it for the named account on the
// given platform, creating the account on first use. An unreadable or empty
// file is a hard failure before any import attempt; row-level failures are
// reported in the Result instead.
func ImportFile(accountName, platform, path string) (*models.Account, Result, error) {
	records, err := gpcsv.ParseFile(path)
	if err != nil {
		return nil, Result{}, err
	}
	if len(records) == 0 {
		return nil, Result{}, fmt.Errorf("no valid transactions found in %s", filepath.Base(path))
	}

	account, err := db.GetOrCreateAccount(accountName, platform)
	if err != nil {
		return nil, Result{}, fmt.Errorf("failed to resolve account %q: %w", accountName, err)
	}

	result := Import(account.ID, records)

	batch := models.ImportBatch{
		BatchID:   result.BatchID,
		AccountID: account.ID,
		FileName:  filepath.Base(path),
		Imported:  result.Imported,
		Skipped:   result.Skipped,
		Failed:    len(result.Errors),
	}
	if err := db.CreateImportBatch(&batch); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("error recording import batch: %v", err))
		result.Success = false
	}

	return account, result, nil
}
