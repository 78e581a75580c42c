package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"finnotify/internal/finance"
	"finnotify/internal/formatter"
	"finnotify/internal/notifier"
	"finnotify/internal/repositories"
	"finnotify/internal/shared"

	"github.com/charmbracelet/log"
)

// Producer runs one notification cycle against the finance database.
type Producer struct {
	payments *repositories.PaymentRepository
	income   *repositories.IncomeRepository
	history  *repositories.HistoryRepository
	settings *repositories.SettingsRepository
	runs     *repositories.RunRepository
	notifier notifier.Notifier
	logger   *log.Logger
	cfg      shared.NotifyConfig
	now      func() time.Time
}

// ProducerOpts contains configuration options for creating a Producer.
type ProducerOpts struct {
	DB       *sql.DB
	Notifier notifier.Notifier
	Logger   *log.Logger
	Config   shared.NotifyConfig
	Now      func() time.Time
}

// NewProducer creates a Producer over the given database connection.
func NewProducer(opts ProducerOpts) *Producer {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Config.LookaheadDays <= 0 {
		opts.Config.LookaheadDays = 7
	}
	if opts.Config.MaxListed <= 0 {
		opts.Config.MaxListed = 5
	}
	if opts.Config.Currency == "" {
		opts.Config.Currency = "£"
	}
	return &Producer{
		payments: repositories.NewPaymentRepository(opts.DB),
		income:   repositories.NewIncomeRepository(opts.DB),
		history:  repositories.NewHistoryRepository(opts.DB),
		settings: repositories.NewSettingsRepository(opts.DB),
		runs:     repositories.NewRunRepository(opts.DB),
		notifier: opts.Notifier,
		logger:   shared.WithLogger(opts.Logger, "component", "producer"),
		cfg:      opts.Config,
		now:      opts.Now,
	}
}

// RunReport summarizes a completed producer cycle.
type RunReport struct {
	RunID    string
	Upcoming []finance.UpcomingPayment
	Summary  finance.Summary
	Deleted  int
	Expired  int
}

// Run executes the full cycle: maintenance first, then the upcoming-payment
// check and the monthly summary, each posted as its own notification.
// Any failure aborts the cycle; the caller decides how to surface it.
func (p *Producer) Run(ctx context.Context) (*RunReport, error) {
	today := p.now()
	report := &RunReport{}

	deleted, err := p.cleanupPendingDeletions(ctx, today)
	if err != nil {
		p.recordRun(ctx, report, "error")
		return nil, err
	}
	report.Deleted = deleted

	expired, err := p.expirePayments(ctx, today)
	if err != nil {
		p.recordRun(ctx, report, "error")
		return nil, err
	}
	report.Expired = expired

	upcoming, err := p.checkUpcoming(ctx, today)
	if err != nil {
		p.recordRun(ctx, report, "error")
		return nil, err
	}
	report.Upcoming = upcoming

	summary, err := p.summarize(ctx, today)
	if err != nil {
		p.recordRun(ctx, report, "error")
		return nil, err
	}
	report.Summary = summary

	if len(upcoming) > 0 {
		err := p.notifier.Send(ctx, notifier.Notification{
			Title:    "💰 Upcoming Payments",
			Subtitle: fmt.Sprintf("%d payment(s) due soon", len(upcoming)),
			Message:  formatter.PaymentList(upcoming, p.cfg.MaxListed, p.cfg.Currency),
		})
		if err != nil {
			p.recordRun(ctx, report, "error")
			return nil, err
		}
	}

	err = p.notifier.Send(ctx, notifier.Notification{
		Title:    "📊 Financial Summary",
		Subtitle: formatter.MonthTitle(today),
		Message:  formatter.SummaryMessage(summary, p.cfg.Currency),
	})
	if err != nil {
		p.recordRun(ctx, report, "error")
		return nil, err
	}

	report.RunID = p.recordRun(ctx, report, "ok")
	p.logger.Info("notification cycle complete",
		"upcoming", len(upcoming), "deleted", deleted, "expired", expired)
	return report, nil
}

// cleanupPendingDeletions removes payments flagged delete_next_month once a
// new month is detected. The first ever run only stores the marker.
func (p *Producer) cleanupPendingDeletions(ctx context.Context, today time.Time) (int, error) {
	marker, err := p.settings.Get(ctx, finance.DeletionCheckKey)
	if err != nil {
		return 0, err
	}
	newMonth := finance.IsNewMonth(marker, today)

	if err := p.settings.Set(ctx, finance.DeletionCheckKey, finance.MonthMarker(today)); err != nil {
		return 0, err
	}
	if !newMonth {
		return 0, nil
	}

	pending, err := p.payments.PendingDeletions(ctx)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	var names []string
	for _, payment := range pending {
		if err := p.payments.DeleteRecurring(ctx, payment.ID); err != nil {
			return len(names), err
		}
		names = append(names, payment.Name)
		p.logger.Info("deleted flagged payment", "name", payment.Name)
	}

	err = p.notifier.Send(ctx, notifier.Notification{
		Title:    "🗑️ Payments Deleted",
		Subtitle: fmt.Sprintf("%d payment(s) removed", len(names)),
		Message:  "New month detected! Removed:\n" + formatter.NameList(names),
	})
	return len(names), err
}

// expirePayments deactivates payments whose finite pay period has elapsed.
func (p *Producer) expirePayments(ctx context.Context, today time.Time) (int, error) {
	candidates, err := p.payments.ActiveWithPayPeriod(ctx)
	if err != nil {
		return 0, err
	}

	var names []string
	for _, payment := range candidates {
		if !finance.PeriodExpired(payment, today) {
			continue
		}
		if err := p.payments.DeactivateRecurring(ctx, payment.ID); err != nil {
			return len(names), err
		}
		names = append(names, payment.Name)
		p.logger.Info("pay period ended", "name", payment.Name)
	}

	if len(names) == 0 {
		return 0, nil
	}

	err = p.notifier.Send(ctx, notifier.Notification{
		Title:    "⏰ Payments Expired",
		Subtitle: fmt.Sprintf("%d payment(s) disabled", len(names)),
		Message:  "Pay period ended:\n" + formatter.NameList(names),
	})
	return len(names), err
}

func (p *Producer) checkUpcoming(ctx context.Context, today time.Time) ([]finance.UpcomingPayment, error) {
	recurring, err := p.payments.ListRecurring(ctx)
	if err != nil {
		return nil, err
	}
	paid, err := p.history.PaidRecurringIDs(ctx, int(today.Month()), today.Year())
	if err != nil {
		return nil, err
	}
	oneTime, err := p.payments.ListUnpaidOneTime(ctx)
	if err != nil {
		return nil, err
	}
	return finance.UpcomingPayments(today, p.cfg.LookaheadDays, recurring, paid, oneTime), nil
}

func (p *Producer) summarize(ctx context.Context, today time.Time) (finance.Summary, error) {
	income, err := p.income.TotalRecurring(ctx)
	if err != nil {
		return finance.Summary{}, err
	}
	recurring, err := p.payments.ListRecurring(ctx)
	if err != nil {
		return finance.Summary{}, err
	}
	oneTime, err := p.payments.OneTimeTotalForMonth(ctx, int(today.Month()), today.Year())
	if err != nil {
		return finance.Summary{}, err
	}
	paid, err := p.history.PaidThisMonth(ctx, int(today.Month()), today.Year())
	if err != nil {
		return finance.Summary{}, err
	}
	return finance.Summarize(income, recurring, oneTime, paid), nil
}

// recordRun writes the run log row. Best effort: a failed insert is logged,
// never escalated, so the run log cannot take down a notification cycle.
func (p *Producer) recordRun(ctx context.Context, report *RunReport, status string) string {
	id, err := p.runs.Record(ctx, finance.RunRecord{
		UpcomingCount: len(report.Upcoming),
		DeletedCount:  report.Deleted,
		ExpiredCount:  report.Expired,
		NetSavings:    report.Summary.NetSavings,
		Status:        status,
	})
	if err != nil {
		p.logger.Warn("failed to record run", "error", err)
		return ""
	}
	return id
}
