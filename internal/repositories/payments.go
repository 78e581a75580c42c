package repositories

import (
	"context"
	"database/sql"

	"finnotify/internal/finance"
)

// PaymentRepository reads and maintains recurring and one-time payments.
type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const recurringColumns = `
	id, name, amount, payment_day,
	COALESCE(payment_type, 'debit'),
	last_paid_date,
	COALESCE(delete_next_month, 0),
	pay_period_months,
	period_start_date,
	COALESCE(is_active, 1)
`

func scanRecurring(rows *sql.Rows) (finance.RecurringPayment, error) {
	var p finance.RecurringPayment
	var amount float64
	var lastPaid, periodStart sql.NullString
	var deleteNext, active int
	var payPeriod sql.NullInt64

	err := rows.Scan(&p.ID, &p.Name, &amount, &p.PaymentDay, &p.PaymentType,
		&lastPaid, &deleteNext, &payPeriod, &periodStart, &active)
	if err != nil {
		return p, err
	}

	p.Amount = finance.MoneyFromFloat(amount)
	p.LastPaidDate = parseDate(lastPaid)
	p.PeriodStartDate = parseDate(periodStart)
	p.DeleteNextMonth = deleteNext != 0
	p.Active = active != 0
	if payPeriod.Valid {
		months := int(payPeriod.Int64)
		p.PayPeriodMonths = &months
	}
	return p, nil
}

// ListRecurring returns every recurring payment row.
func (r *PaymentRepository) ListRecurring(ctx context.Context) ([]finance.RecurringPayment, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+recurringColumns+" FROM recurring_payments")
	if err != nil {
		return nil, wrapQuery("list recurring payments", err)
	}
	defer rows.Close()

	var payments []finance.RecurringPayment
	for rows.Next() {
		p, err := scanRecurring(rows)
		if err != nil {
			return nil, wrapQuery("scan recurring payment", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// PendingDeletions returns recurring payments flagged for removal at the
// next month rollover.
func (r *PaymentRepository) PendingDeletions(ctx context.Context) ([]finance.RecurringPayment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+recurringColumns+" FROM recurring_payments WHERE delete_next_month = 1")
	if err != nil {
		return nil, wrapQuery("list pending deletions", err)
	}
	defer rows.Close()

	var payments []finance.RecurringPayment
	for rows.Next() {
		p, err := scanRecurring(rows)
		if err != nil {
			return nil, wrapQuery("scan pending deletion", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// ActiveWithPayPeriod returns active payments that carry a finite pay period.
func (r *PaymentRepository) ActiveWithPayPeriod(ctx context.Context) ([]finance.RecurringPayment, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+recurringColumns+` FROM recurring_payments
		WHERE COALESCE(is_active, 1) = 1
		AND pay_period_months IS NOT NULL
		AND pay_period_months != -1`)
	if err != nil {
		return nil, wrapQuery("list payments with pay period", err)
	}
	defer rows.Close()

	var payments []finance.RecurringPayment
	for rows.Next() {
		p, err := scanRecurring(rows)
		if err != nil {
			return nil, wrapQuery("scan payment with pay period", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// DeleteRecurring removes a recurring payment row.
func (r *PaymentRepository) DeleteRecurring(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM recurring_payments WHERE id = ?", id); err != nil {
		return wrapQuery("delete recurring payment", err)
	}
	return nil
}

// DeactivateRecurring marks a recurring payment inactive.
func (r *PaymentRepository) DeactivateRecurring(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE recurring_payments SET is_active = 0 WHERE id = ?", id); err != nil {
		return wrapQuery("deactivate recurring payment", err)
	}
	return nil
}

// ListUnpaidOneTime returns one-time payments that have not been paid.
func (r *PaymentRepository) ListUnpaidOneTime(ctx context.Context) ([]finance.OneTimePayment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, amount, payment_date, paid FROM one_time_payments WHERE paid = 0")
	if err != nil {
		return nil, wrapQuery("list one-time payments", err)
	}
	defer rows.Close()

	var payments []finance.OneTimePayment
	for rows.Next() {
		var p finance.OneTimePayment
		var amount float64
		var date sql.NullString
		var paid bool
		if err := rows.Scan(&p.ID, &p.Name, &amount, &date, &paid); err != nil {
			return nil, wrapQuery("scan one-time payment", err)
		}
		parsed := parseDate(date)
		if parsed == nil {
			// Mirror of the long-standing behavior: rows with unparseable
			// dates are skipped rather than failing the run.
			continue
		}
		p.Amount = finance.MoneyFromFloat(amount)
		p.PaymentDate = *parsed
		p.Paid = paid
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// OneTimeTotalForMonth sums all one-time payments dated within the month.
func (r *PaymentRepository) OneTimeTotalForMonth(ctx context.Context, month, year int) (finance.Money, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM one_time_payments
		WHERE CAST(strftime('%m', payment_date) AS INTEGER) = ?
		AND CAST(strftime('%Y', payment_date) AS INTEGER) = ?`, month, year).Scan(&total)
	if err != nil {
		return finance.ZeroMoney(), wrapQuery("sum one-time payments", err)
	}
	return finance.MoneyFromFloat(total), nil
}
