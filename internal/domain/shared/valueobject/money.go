package valueobject

import (
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Money represents a rupee amount with exact decimal arithmetic.
// The service is single-currency (INR); amounts are stored and compared
// as decimals, never as binary floats.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromString parses a Money from a decimal string
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, shared.NewDomainError("INVALID_INPUT", "invalid amount: "+s)
	}
	return Money{amount: d}, nil
}

// Zero returns a zero Money value
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// GreaterThan reports whether m > other
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsPositive reports whether m > 0
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative reports whether m < 0
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equal reports whether m == other by numeric value
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats the amount with two decimal places
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Display formats the amount with the rupee sign for user-facing messages
func (m Money) Display() string {
	return "₹" + m.amount.StringFixed(2)
}
