package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBucketKey(t *testing.T) {
	// 2025-06-13 is a Friday; its week starts Sunday 2025-06-08.
	friday := time.Date(2025, 6, 13, 16, 58, 0, 0, time.Local)

	tests := []struct {
		name   string
		period Period
		t      time.Time
		want   string
	}{
		{"daily", Daily, friday, "2025-06-13"},
		{"weekly aligns to sunday", Weekly, friday, "2025-06-08"},
		{"weekly on a sunday is itself", Weekly, time.Date(2025, 6, 8, 23, 0, 0, 0, time.Local), "2025-06-08"},
		{"quarterly q1", Quarterly, time.Date(2025, 3, 31, 0, 0, 0, 0, time.Local), "2025-Q1"},
		{"quarterly q2", Quarterly, friday, "2025-Q2"},
		{"quarterly q4", Quarterly, time.Date(2025, 10, 1, 0, 0, 0, 0, time.Local), "2025-Q4"},
		{"yearly", Yearly, friday, "2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BucketKey(tt.period, tt.t))
		})
	}
}

func TestWeekStartCrossesMonthBoundary(t *testing.T) {
	// 2025-07-01 is a Tuesday; its week starts Sunday 2025-06-29.
	tuesday := time.Date(2025, 7, 1, 12, 0, 0, 0, time.Local)
	want := time.Date(2025, 6, 29, 0, 0, 0, 0, time.Local)
	assert.True(t, want.Equal(WeekStart(tuesday)))
}

func TestWeekStartIsMidnight(t *testing.T) {
	ws := WeekStart(time.Date(2025, 6, 13, 23, 59, 59, 0, time.Local))
	assert.Equal(t, 0, ws.Hour())
	assert.Equal(t, 0, ws.Minute())
	assert.Equal(t, time.Sunday, ws.Weekday())
}
