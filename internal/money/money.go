package money

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency amounts are carried as decimals end to end. The platform API
// sends major-unit values ("1800.00" or 1800.00); they must be parsed
// exactly, never routed through float64 arithmetic.

// Round2 rounds an amount to 2 decimal places, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PercentageOf returns pct percent of amount, rounded to 2 decimal places.
func PercentageOf(amount, pct decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(pct).Div(decimal.NewFromInt(100)))
}

// ClampNonNegative floors an amount at zero.
func ClampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Parse parses a major-unit amount string from the wire.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// ParseNumber parses a json.Number amount, preserving the exact decimal
// representation sent by the backend.
func ParseNumber(n json.Number) (decimal.Decimal, error) {
	return Parse(n.String())
}

// Format renders an amount with exactly 2 decimal places for display
// and submission.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
