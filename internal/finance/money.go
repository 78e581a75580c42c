// package finance implements the domain logic behind the daily
// notifications: payment date math, the upcoming-payment window, the
// monthly summary, and month-rollover maintenance rules.
package finance

import "github.com/shopspring/decimal"

// Money is a decimal amount in the user's single configured currency.
// Amounts are stored as REAL in the finance database and converted at the
// repository boundary.
type Money struct {
	Amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) Money {
	return Money{Amount: amount}
}

func MoneyFromFloat(f float64) Money {
	return Money{Amount: decimal.NewFromFloat(f)}
}

func ZeroMoney() Money {
	return Money{Amount: decimal.Zero}
}

func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{Amount: m.Amount.Sub(other.Amount)}
}

func (m Money) Abs() Money {
	return Money{Amount: m.Amount.Abs()}
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// Float64 returns the amount for storage back into REAL columns.
func (m Money) Float64() float64 {
	f, _ := m.Amount.Float64()
	return f
}
