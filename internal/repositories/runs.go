package repositories

import (
	"context"
	"database/sql"

	"finnotify/internal/finance"
	"finnotify/internal/shared"
)

// RunRepository records producer invocations in notification_runs.
type RunRepository struct {
	db *sql.DB
}

func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Record inserts a run row and returns its generated id.
func (r *RunRepository) Record(ctx context.Context, run finance.RunRecord) (string, error) {
	id := shared.GenerateID()
	_, err := r.db.ExecContext(ctx, `INSERT INTO notification_runs
		(id, upcoming_count, deleted_count, expired_count, net_savings, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, run.UpcomingCount, run.DeletedCount, run.ExpiredCount, run.NetSavings.Float64(), run.Status)
	if err != nil {
		return "", wrapQuery("record notification run", err)
	}
	return id, nil
}

// LastStatus returns the status of the most recent run, or "" when the
// producer has never run.
func (r *RunRepository) LastStatus(ctx context.Context) (string, error) {
	var status string
	err := r.db.QueryRowContext(ctx,
		"SELECT status FROM notification_runs ORDER BY ran_at DESC, id DESC LIMIT 1").Scan(&status)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", wrapQuery("get last run status", err)
	}
	return status, nil
}
