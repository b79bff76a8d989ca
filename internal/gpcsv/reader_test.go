package gpcsv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			"standard export stamp",
			"06/13/25, 4:58 PM CDT",
			time.Date(2025, 6, 13, 16, 58, 0, 0, time.Local),
		},
		{
			"morning time",
			"01/02/25, 9:05 AM EST",
			time.Date(2025, 1, 2, 9, 5, 0, 0, time.Local),
		},
		{
			"no timezone suffix",
			"06/13/25, 4:58 PM",
			time.Date(2025, 6, 13, 16, 58, 0, 0, time.Local),
		},
		{
			"two-digit year below 50 lands in the 2000s",
			"12/31/49, 11:59 PM CST",
			time.Date(2049, 12, 31, 23, 59, 0, 0, time.Local),
		},
		{
			"two-digit year 50 and up lands in the 1900s",
			"12/31/50, 11:59 PM CST",
			time.Date(1950, 12, 31, 23, 59, 0, 0, time.Local),
		},
		{
			"four-digit year passes through",
			"06/13/2025, 4:58 PM CDT",
			time.Date(2025, 6, 13, 16, 58, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseDateInvalid(t *testing.T) {
	inputs := []string{
		"",
		"06/13/25",            // no time part
		"2025-06-13, 4:58 PM", // wrong date separator
		"06/13/25, 25:00 PM",  // impossible time
		"not a date at all",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input)
			assert.Error(t, err)
		})
	}
}

func TestReaderSkipsHeaderAndBadRows(t *testing.T) {
	input := `"Date","Type","Amount","Balance"
"06/13/25, 4:58 PM CDT","Tournament Registration",-33,12.25
"garbage date","Tournament Payout",10,22.25
"06/13/25, 4:58 PM CDT","Purchase - Credit Card",20,45.25
"06/13/25, 4:57 PM CDT","Daily Bonus"
"06/12/25, 1:00 PM CDT","Redemption",not-a-number,10
"06/13/25, 4:57 PM CDT","Daily Bonus",0.25,25.25`

	records, err := NewReader(strings.NewReader(input)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Tournament Registration", records[0].Type)
	assert.True(t, records[0].Amount.Equal(decimal.RequireFromString("-33")))
	assert.True(t, records[0].Balance.Equal(decimal.RequireFromString("12.25")))

	assert.Equal(t, "Purchase - Credit Card", records[1].Type)
	assert.Equal(t, "Daily Bonus", records[2].Type)
}

func TestReaderDescriptionFallsBackToType(t *testing.T) {
	input := `"06/13/25, 4:58 PM CDT","Redemption",100,0`

	records, err := NewReader(strings.NewReader(input)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Redemption", records[0].Description)
}

func TestReaderEmptyInput(t *testing.T) {
	records, err := NewReader(strings.NewReader("")).ReadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReaderHeaderOnly(t *testing.T) {
	records, err := NewReader(strings.NewReader(`"Date","Type","Amount","Balance"`)).ReadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(SampleCSV), 0644))

	records, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Tournament Registration", records[0].Type)
	assert.Equal(t, "Purchase - Credit Card", records[1].Type)
	assert.Equal(t, "Daily Bonus", records[2].Type)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}
