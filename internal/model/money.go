// Package model defines the core domain types for the Zwip wallet.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a currency amount in minor units (cents).
// $10.50 is stored as 1050. All arithmetic on Money is exact; fractional
// results only appear inside fee computation, which rounds half-up to cents
// before converting back to Money.
type Money int64

// ErrMalformedAmount indicates input that cannot be parsed as a money amount.
var ErrMalformedAmount = errors.New("malformed amount")

// ParseMoney parses a decimal string like "25" or "25.50" into Money,
// rounding half-up to cents.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrMalformedAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}
	return MoneyFromDecimal(d), nil
}

// MustParseMoney is ParseMoney for compile-time constants in catalogs and tests.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromDecimal converts a decimal value to Money, rounding half-up
// (decimal.Round is half away from zero, which is half-up for the
// non-negative amounts this wallet deals in).
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money(d.Round(2).Mul(decimal.NewFromInt(100)).IntPart())
}

// Cents constructs Money directly from minor units.
func Cents(n int64) Money {
	return Money(n)
}

// Decimal returns the amount as an exact two-decimal value.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// String formats the amount with two decimal places and no currency symbol.
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return m - other
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m > 0
}

// MarshalJSON encodes Money as a plain JSON number with two decimals,
// matching the persisted state blob schema.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
