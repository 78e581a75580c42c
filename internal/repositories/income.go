package repositories

import (
	"context"
	"database/sql"

	"finnotify/internal/finance"
)

// IncomeRepository reads scheduled income.
type IncomeRepository struct {
	db *sql.DB
}

func NewIncomeRepository(db *sql.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

// TotalRecurring sums every recurring income row.
func (r *IncomeRepository) TotalRecurring(ctx context.Context) (finance.Money, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, "SELECT COALESCE(SUM(amount), 0) FROM recurring_income").Scan(&total)
	if err != nil {
		return finance.ZeroMoney(), wrapQuery("sum recurring income", err)
	}
	return finance.MoneyFromFloat(total), nil
}
