package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsExternal(t *testing.T) {
	tests := []struct {
		txnType string
		want    bool
	}{
		{"Purchase - Credit Card", true},
		{"Redemption", true},
		{"Tournament Registration", false},
		{"Tournament Payout", false},
		{"Daily Bonus", false},
		{"Vault Bonus Claim", false},
		{"Some Future Type", false},
		{"", false},
		{"purchase - credit card", false}, // matching is case-sensitive
		{"Redemption ", false},            // and exact
	}

	for _, tt := range tests {
		t.Run(tt.txnType, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExternal(tt.txnType))
		})
	}
}

func TestRealMoneyDelta(t *testing.T) {
	tests := []struct {
		name    string
		txnType string
		amount  string
		want    string
	}{
		{"purchase is money out", "Purchase - Credit Card", "20", "-20"},
		{"purchase sign is normalized", "Purchase - Credit Card", "-20", "-20"},
		{"redemption is money in", "Redemption", "150", "150"},
		{"redemption sign is normalized", "Redemption", "-150", "150"},
		{"internal type is zero", "Tournament Registration", "-33", "0"},
		{"bonus is zero", "Daily Bonus", "0.25", "0"},
		{"unknown type is zero", "Mystery Promo", "99.99", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			want := decimal.RequireFromString(tt.want)
			got := RealMoneyDelta(tt.txnType, amount)
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}

func TestRealMoneyDeltaDoesNotMutate(t *testing.T) {
	amount := decimal.RequireFromString("42.50")
	RealMoneyDelta(TypePurchase, amount)
	assert.True(t, amount.Equal(decimal.RequireFromString("42.50")))
}

func TestExternalTypesAreExternal(t *testing.T) {
	for _, txnType := range ExternalTypes {
		assert.True(t, IsExternal(txnType), "%s should be external", txnType)
	}
	for _, txnType := range InternalTypes {
		assert.False(t, IsExternal(txnType), "%s should be internal", txnType)
	}
}
