package kernel

import (
	"encoding/json"
	"fmt"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits kept for every amount (DECIMAL(10,2) in storage).
const moneyScale = 2

// Money is a non-negative amount rounded half away from zero to two fractional digits.
// The zero value is a valid 0.00.
type Money struct {
	amount decimal.Decimal
}

// NewMoney parses a decimal string such as "450.00".
func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return MoneyFromDecimal(d)
}

// MustNewMoney is NewMoney for constants and tests; it panics on invalid input.
func MustNewMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromDecimal rounds d to two places and rejects negative amounts.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("money", d.String(), "0.00", "unbounded")
	}
	return Money{amount: d.Round(moneyScale)}, nil
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub fails instead of producing a negative amount.
func (m Money) Sub(other Money) (Money, error) {
	return MoneyFromDecimal(m.amount.Sub(other.amount))
}

// Times multiplies by a non-negative quantity.
func (m Money) Times(quantity int) Money {
	if quantity <= 0 {
		return Money{}
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Percent returns rate percent of m, rounded to two places.
func (m Money) Percent(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Div(decimal.NewFromInt(100)).Round(moneyScale)}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// Equal compares by value, so 40 and 40.00 are equal.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// MarshalJSON encodes the amount as a quoted fixed-point string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts both "450.00" and 450.00.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("decode money: %w", err)
	}
	parsed, err := MoneyFromDecimal(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
