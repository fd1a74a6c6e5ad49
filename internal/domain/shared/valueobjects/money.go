package valueobjects

import (
	"fmt"
	"math"
	"strings"
)

// DefaultCurrency is used when no currency code is supplied.
const DefaultCurrency = "USD"

// Money is an amount in minor units (cents) with an ISO currency code.
type Money struct {
	amountInCents int64
	currency      string
}

func NewMoney(amountInCents int64, currency string) Money {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{
		amountInCents: amountInCents,
		currency:      currency,
	}
}

// NewMoneyFromMajor converts a major-unit amount (e.g. 18.50 dollars) to Money,
// rounding to the nearest cent.
func NewMoneyFromMajor(amount float64, currency string) Money {
	return NewMoney(int64(math.Round(amount*100)), currency)
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Currency() string {
	return m.currency
}

// Major returns the amount in major units.
func (m Money) Major() float64 {
	return float64(m.amountInCents) / 100.0
}

func (m Money) Equals(other Money) bool {
	return m.amountInCents == other.amountInCents && m.currency == other.currency
}

func (m Money) IsPositive() bool {
	return m.amountInCents > 0
}

func (m Money) IsNegative() bool {
	return m.amountInCents < 0
}

func (m Money) IsZero() bool {
	return m.amountInCents == 0
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.Major(), m.currency)
}
