package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an amount in the single currency the platform operates in.
// Constructors reject negative amounts; arithmetic does not, so a discount larger
// than subtotal plus shipping yields a negative total instead of being clamped.
type Money struct {
	amount decimal.Decimal
}

// centPlaces matches the numeric(12,2) money columns.
const centPlaces = 2

// NewMoney validates that amount is not negative and rounds it half away from
// zero to whole cents, so stored line subtotals always add up to the order total.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount.Round(centPlaces)}, nil
}

// MoneyFromFloat converts a JSON number into Money.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// RestoreMoney wraps a persisted amount without validation.
func RestoreMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// ZeroMoney returns 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Mul multiplies by a quantity, used for line subtotals.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}
