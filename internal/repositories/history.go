package repositories

import (
	"context"
	"database/sql"

	"finnotify/internal/finance"
)

// HistoryRepository reads payment history for the current month.
type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// PaidRecurringIDs returns the ids of recurring payments already recorded
// in payment history for the given month.
func (r *HistoryRepository) PaidRecurringIDs(ctx context.Context, month, year int) (map[int64]bool, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT payment_id FROM payment_history
		WHERE payment_type = 'recurring' AND payment_id IS NOT NULL
		AND month = ? AND year = ?`, month, year)
	if err != nil {
		return nil, wrapQuery("list paid recurring ids", err)
	}
	defer rows.Close()

	paid := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, wrapQuery("scan paid recurring id", err)
		}
		paid[id] = true
	}
	return paid, rows.Err()
}

// PaidThisMonth returns the month's paid amounts with their payment type,
// joining recurring rows so the credit/debit split survives.
func (r *HistoryRepository) PaidThisMonth(ctx context.Context, month, year int) ([]finance.PaidPayment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT ph.amount, COALESCE(rp.payment_type, 'debit')
		FROM payment_history ph
		LEFT JOIN recurring_payments rp ON ph.payment_id = rp.id AND ph.payment_type = 'recurring'
		WHERE ph.payment_type IN ('recurring', 'one_time') AND ph.month = ? AND ph.year = ?`, month, year)
	if err != nil {
		return nil, wrapQuery("list paid payments", err)
	}
	defer rows.Close()

	var paid []finance.PaidPayment
	for rows.Next() {
		var amount float64
		var paymentType sql.NullString
		if err := rows.Scan(&amount, &paymentType); err != nil {
			return nil, wrapQuery("scan paid payment", err)
		}
		pt := finance.TypeDebit
		if paymentType.Valid && paymentType.String != "" {
			pt = paymentType.String
		}
		paid = append(paid, finance.PaidPayment{
			Amount:      finance.MoneyFromFloat(amount),
			PaymentType: pt,
		})
	}
	return paid, rows.Err()
}
