package types

import "github.com/shopspring/decimal"

// Rupees converts a whole-rupee amount into a decimal value.
func Rupees(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

// RoundToRupee rounds a decimal amount to the nearest whole rupee,
// halves away from zero (matching the storefront's display rounding).
func RoundToRupee(amount decimal.Decimal) int64 {
	return amount.Round(0).IntPart()
}
