package finance

import "time"

// Payment types as stored in the database.
const (
	TypeDebit  = "debit"
	TypeCredit = "credit"
)

// RecurringPayment mirrors a row of recurring_payments.
type RecurringPayment struct {
	ID              int64
	Name            string
	Amount          Money
	PaymentDay      int
	PaymentType     string
	LastPaidDate    *time.Time
	DeleteNextMonth bool
	PayPeriodMonths *int // nil or -1 means indefinite
	PeriodStartDate *time.Time
	Active          bool
}

// OneTimePayment mirrors a row of one_time_payments.
type OneTimePayment struct {
	ID          int64
	Name        string
	Amount      Money
	PaymentDate time.Time
	Paid        bool
}

// PaidPayment is a payment_history row joined to its payment type.
type PaidPayment struct {
	Amount      Money
	PaymentType string
}

// UpcomingPayment is a payment due within the lookahead window.
type UpcomingPayment struct {
	Name        string
	Amount      Money
	Date        time.Time
	DaysUntil   int
	PaymentType string
}

// Summary is the current month's financial position.
type Summary struct {
	TotalIncome     Money
	TotalScheduled  Money
	AlreadyPaid     Money
	RemainingToPay  Money
	RemainingCredit Money
	RemainingDebit  Money
	NetSavings      Money
}

// RunRecord captures the outcome of one producer invocation.
type RunRecord struct {
	UpcomingCount int
	DeletedCount  int
	ExpiredCount  int
	NetSavings    Money
	Status        string
}
