package contracts

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Amount is an exact decimal payment amount. It wraps decimal.Decimal to
// preserve the authored scale across every rendering boundary: an amount
// parsed from "0.10" renders as "0.10", never "0.1".
type Amount struct {
	decimal.Decimal
}

// NewAmount parses a decimal string into an Amount.
func NewAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return Amount{d}, nil
}

// MustAmount parses a decimal string and panics on failure. For constants
// and tests.
func MustAmount(s string) Amount {
	a, err := NewAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AmountFromDecimal wraps an existing decimal value.
func AmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{d}
}

// String renders the amount at its stored scale. decimal.Decimal.String
// trims trailing zeros; the stored exponent carries the authored scale,
// so fixed-point rendering restores it.
func (a Amount) String() string {
	if a.Exponent() < 0 {
		return a.Decimal.StringFixed(-a.Exponent())
	}
	return a.Decimal.String()
}

// MarshalJSON renders the amount as a quoted decimal string at its
// stored scale.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// MarshalYAML renders the amount as a scalar decimal string at its
// stored scale.
func (a Amount) MarshalYAML() (any, error) {
	return a.String(), nil
}

// UnmarshalYAML accepts integer, float or string scalars.
func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	d, err := decimal.NewFromString(value.Value)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", value.Value, err)
	}
	a.Decimal = d
	return nil
}
