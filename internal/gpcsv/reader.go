// Package gpcsv reads Global Poker transaction history exports. The format is
// a quoted CSV with columns Date, Type, Amount, Balance and an optional header
// row. Rows are consumed in a single streaming pass.
package gpcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Record is one normalized transaction row.
type Record struct {
	Date        time.Time
	Type        string
	Amount      decimal.Decimal
	Balance     decimal.Decimal
	Description string
}

// Reader streams records out of a Global Poker CSV export. It is a single-pass
// reader: once Read returns io.EOF the underlying input is exhausted.
type Reader struct {
	csv  *csv.Reader
	line int
}

// NewReader wraps an input stream in a Global Poker CSV reader.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	return &Reader{csv: cr}
}

// Read returns the next valid transaction record, or io.EOF when the input is
// exhausted. The header row, short rows, and rows with unparseable dates or
// amounts are skipped with a logged warning rather than failing the stream.
func (r *Reader) Read() (Record, error) {
	for {
		row, err := r.csv.Read()
		if err != nil {
			return Record{}, err
		}
		r.line++

		// Header row detection: literal "Date" in the first column.
		if len(row) > 0 && strings.TrimSpace(row[0]) == "Date" {
			continue
		}
		if len(row) < 4 {
			log.Printf("gpcsv: skipping row %d: has %d columns, need 4", r.line, len(row))
			continue
		}

		rec, err := parseRow(row)
		if err != nil {
			log.Printf("gpcsv: skipping row %d: %v", r.line, err)
			continue
		}
		return rec, nil
	}
}

// ReadAll drains the reader. Row-level problems have already been skipped by
// Read; an error here means the file itself is unreadable.
func (r *Reader) ReadAll() ([]Record, error) {
	var records []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// ParseFile reads a whole export file. Failure to open or read the file is a
// hard error; malformed rows inside it are not.
func ParseFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	records, err := NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file %s: %w", path, err)
	}
	return records, nil
}

func parseRow(row []string) (Record, error) {
	date, err := ParseDate(strings.TrimSpace(row[0]))
	if err != nil {
		return Record{}, err
	}

	txnType := strings.TrimSpace(row[1])

	amount, err := decimal.NewFromString(strings.TrimSpace(row[2]))
	if err != nil {
		return Record{}, fmt.Errorf("invalid amount %q: %w", row[2], err)
	}
	balance, err := decimal.NewFromString(strings.TrimSpace(row[3]))
	if err != nil {
		return Record{}, fmt.Errorf("invalid balance %q: %w", row[3], err)
	}

	return Record{
		Date:        date,
		Type:        txnType,
		Amount:      amount,
		Balance:     balance,
		Description: txnType, // the export carries no separate description
	}, nil
}

// tzSuffix matches the trailing timezone abbreviation, e.g. " CDT".
var tzSuffix = regexp.MustCompile(`\s+[A-Z]{3}$`)

// ParseDate parses the export's date dialect, e.g. "06/13/25, 4:58 PM CDT".
// The timezone abbreviation is discarded and the remainder is read as local
// time; two-digit years below 50 land in the 2000s, the rest in the 1900s.
// Both are heuristics inherited from the source format and kept as-is: the
// true UTC offset is lost, so bucketing near midnight can be off by the
// source's offset.
func ParseDate(s string) (time.Time, error) {
	clean := tzSuffix.ReplaceAllString(s, "")

	parts := strings.SplitN(clean, ", ", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid date %q: missing time part", s)
	}
	datePart, timePart := parts[0], parts[1]

	dmy := strings.Split(datePart, "/")
	if len(dmy) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: want MM/DD/YY", s)
	}
	month, err := strconv.Atoi(dmy[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month in %q: %w", s, err)
	}
	day, err := strconv.Atoi(dmy[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in %q: %w", s, err)
	}
	year, err := strconv.Atoi(dmy[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in %q: %w", s, err)
	}
	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}

	stamp := fmt.Sprintf("%04d-%02d-%02d %s", year, month, day, timePart)
	t, err := time.ParseInLocation("2006-01-02 3:04 PM", stamp, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// SampleCSV is an example of the expected input, shown by `stax import --sample`.
const SampleCSV = `"Date","Type","Amount","Balance"
"06/13/25, 4:58 PM CDT","Tournament Registration",-33,12.25
"06/13/25, 4:58 PM CDT","Purchase - Credit Card",20,45.25
"06/13/25, 4:57 PM CDT","Daily Bonus",0.25,25.25`
