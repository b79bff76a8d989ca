// Package classify maps platform transaction type strings to their real-money
// meaning. Classification is a pure function of the type label.
package classify

import "github.com/shopspring/decimal"

// External transaction types: real money moving between the player's bankroll
// and the platform. Matching is case-sensitive and exact.
const (
	TypePurchase   = "Purchase - Credit Card"
	TypeRedemption = "Redemption"
)

// InternalTypes lists the recognized in-platform transaction types. They never
// contribute to real-money totals. Unrecognized types are treated the same way
// rather than rejected, so new platform types don't break ingestion.
var InternalTypes = []string{
	"Tournament Registration",
	"Tournament Payout",
	"Tournament Re-buy",
	"Tournament Add-on",
	"Tournament Bounty",
	"Tournament Unregistration",
	"Daily Bonus",
	"Daily Bonus Boost",
	"Prize Draw",
	"Vault Bonus Claim",
}

// ExternalTypes lists the transaction types that move real money.
var ExternalTypes = []string{TypePurchase, TypeRedemption}

// IsExternal reports whether a transaction type represents real money entering
// or leaving the tracked bankroll.
func IsExternal(txnType string) bool {
	return txnType == TypePurchase || txnType == TypeRedemption
}

// RealMoneyDelta returns the signed contribution of a transaction to tracked
// profit. A purchase is money spent (-|amount|, same semantics as a buy-in), a
// redemption is money cashed out (+|amount|). Everything else contributes zero.
func RealMoneyDelta(txnType string, amount decimal.Decimal) decimal.Decimal {
	switch txnType {
	case TypePurchase:
		return amount.Abs().Neg()
	case TypeRedemption:
		return amount.Abs()
	default:
		return decimal.Zero
	}
}
