package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Monetary values travel as decimal.Decimal end to end. Parsing goes through
// decimal.NewFromString so the literal digits survive serialization; nothing
// is ever routed through a float64.

// ParsePrice builds a decimal from its wire literal.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse price %q: %w", s, err)
	}
	return d, nil
}

// CheckPriceTick verifies that price is a positive multiple of the contract's
// quoted tick. A violation is a *PrecisionError.
func CheckPriceTick(price, tick decimal.Decimal) error {
	if tick.Sign() <= 0 {
		return &PrecisionError{Value: price, Tick: tick}
	}
	if price.Sign() <= 0 || !price.Mod(tick).IsZero() {
		return &PrecisionError{Value: price, Tick: tick}
	}
	return nil
}
