package main

import (
	"context"
	"fmt"

	"finnotify/internal/notifier"
	"finnotify/internal/shared"
	"finnotify/internal/tasks"

	"github.com/urfave/cli/v3"
)

// Notify runs one notification cycle. launchd invokes this daily; it can
// also be run by hand, with --dry-run printing instead of posting.
func (r *Runner) Notify(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)

	n := r.notifier
	if n == nil {
		if cmd.Bool("dry-run") {
			n = &notifier.Writer{Out: r.output}
		} else {
			n = notifier.NewOSAScript(config.Notify.RatePerSecond)
		}
	}

	db, err := r.openDB(config.Database.Path)
	if err != nil {
		err = fmt.Errorf("%w: %v", shared.ErrDatabaseUnavailable, err)
		r.notifyFailure(ctx, n, err)
		return err
	}
	defer db.Close()
	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	producer := tasks.NewProducer(tasks.ProducerOpts{
		DB:       db,
		Notifier: n,
		Logger:   r.logger,
		Config:   config.Notify,
	})

	report, err := producer.Run(ctx)
	if err != nil {
		r.notifyFailure(ctx, n, err)
		return err
	}

	r.logger.Info("notification run recorded", "run_id", report.RunID)
	return nil
}

// notifyFailure posts the error notification. Best effort: the original
// error is what the caller reports, whatever happens here.
func (r *Runner) notifyFailure(ctx context.Context, n notifier.Notifier, err error) {
	sendErr := n.Send(ctx, notifier.Notification{
		Title:   "❌ Finance App Error",
		Message: "Error checking finances: " + err.Error(),
	})
	if sendErr != nil {
		r.logger.Warn("failed to post error notification", "error", sendErr)
	}
}
