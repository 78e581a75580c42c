package main

import (
	"context"
	"errors"
	"fmt"

	"finnotify/internal/launchd"
	"finnotify/internal/repositories"
	"finnotify/internal/shared"
	"finnotify/internal/ui"

	"github.com/urfave/cli/v3"
)

// Install registers the daily notification agent with launchd.
//
// A missing program or a failed launchctl load aborts with an error; the
// smoke test and the unload of a previous registration only warn.
func (r *Runner) Install(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)

	installer, err := r.newInstaller(config)
	if err != nil {
		return err
	}

	result, err := installer.Install(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrLoadFailed) {
			r.writePlain("%s\n", ui.Err("✗ Failed to load the notification agent"))
			r.writePlain("%s\n", ui.Help("Check the descriptor with: plutil -lint "+installer.PlistPath()))
		}
		return err
	}

	r.writePlain("%s\n", ui.OK("✓ Notification agent installed"))
	if !result.SmokeTestOK {
		r.writePlain("%s\n", ui.Warn("The smoke test failed; the finance database may not exist yet. Run 'finnotify setup database' first."))
	}
	r.writePlain("The agent runs daily at 9:00 AM.\n\n")
	r.writePlain("%s\n", ui.Title("Manage it with:"))
	r.writePlain("  %s\n", ui.Help(fmt.Sprintf("launchctl start %s   # run now", launchd.Label)))
	r.writePlain("  %s\n", ui.Help(fmt.Sprintf("launchctl stop %s", launchd.Label)))
	r.writePlain("  %s\n", ui.Help("finnotify uninstall"))
	r.writePlain("\nLogs: %s/notification.log and notification_error.log\n", result.InstallDir)
	return nil
}

// Uninstall unloads the agent and removes the installed descriptor.
func (r *Runner) Uninstall(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)

	installer, err := r.newInstaller(config)
	if err != nil {
		return err
	}

	if err := installer.Uninstall(ctx); err != nil {
		return err
	}
	r.writePlain("%s\n", ui.OK("✓ Notification agent removed"))
	return nil
}

// Status reports descriptor presence, launchd registration, and, when the
// finance database is reachable, the outcome of the last notification run.
func (r *Runner) Status(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)

	installer, err := r.newInstaller(config)
	if err != nil {
		return err
	}

	status, err := installer.Status(ctx)
	if err != nil {
		return err
	}

	r.writePlain("%s\n", ui.Title("Agent: "+launchd.Label))
	r.writePlain("Descriptor: %s\n", status.PlistPath)
	if status.Installed {
		r.writePlain("Installed: %s\n", ui.OK("yes"))
	} else {
		r.writePlain("Installed: %s\n", ui.Warn("no"))
	}
	if status.Loaded {
		r.writePlain("Loaded: %s\n", ui.OK("yes"))
	} else {
		r.writePlain("Loaded: %s\n", ui.Warn("no"))
	}

	// Last run outcome is best effort; the database may not exist yet.
	if db, err := r.openDB(config.Database.Path); err == nil {
		defer db.Close()
		if last, err := repositories.NewRunRepository(db).LastStatus(ctx); err == nil && last != "" {
			r.writePlain("Last run: %s\n", last)
		}
	}
	return nil
}

// AgentStart runs the registered job immediately.
func (r *Runner) AgentStart(ctx context.Context, cmd *cli.Command) error {
	if err := r.launchctl.Start(ctx, launchd.Label); err != nil {
		return err
	}
	r.writePlain("%s\n", ui.OK("✓ Agent started"))
	return nil
}

// AgentStop stops the registered job.
func (r *Runner) AgentStop(ctx context.Context, cmd *cli.Command) error {
	if err := r.launchctl.Stop(ctx, launchd.Label); err != nil {
		return err
	}
	r.writePlain("%s\n", ui.OK("✓ Agent stopped"))
	return nil
}
