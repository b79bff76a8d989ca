package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// parseID parses a positive integer id argument
func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint(id), nil
}

// parseMoney parses a dollar amount flag, tolerating a leading $
func parseMoney(name, value string) (decimal.Decimal, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(value), "$")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s amount %q", name, value)
	}
	return d, nil
}

// timeLayouts accepted for --start/--end flags
var timeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTimeFlag parses a timestamp flag in local time
func parseTimeFlag(name, value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid %s time %q (want YYYY-MM-DD or YYYY-MM-DD HH:MM)", name, value)
}

// formatMoney renders a signed dollar amount, e.g. -$50.00 or $150.00
func formatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// formatDuration renders minutes as "3h 45m"
func formatDuration(minutes int) string {
	if minutes <= 0 {
		return "-"
	}
	h := minutes / 60
	m := minutes % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
