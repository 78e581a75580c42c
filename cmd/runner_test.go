package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"finnotify/internal/launchd"
	"finnotify/internal/shared"
	tu "finnotify/internal/testing"

	"github.com/urfave/cli/v3"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			launchctl := launchd.NewLaunchctl()

			runner := NewRunner(RunnerOpts{
				Config:    config,
				Logger:    logger,
				Output:    output,
				Launchctl: launchctl,
				AgentsDir: "/tmp/agents",
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.launchctl != launchctl {
				t.Error("expected launchctl to be set")
			}
			if runner.agentsDir != "/tmp/agents" {
				t.Error("expected agentsDir to be set")
			}
		})

		t.Run("with nil dependencies uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
			if runner.output == nil {
				t.Error("expected default output to be set")
			}
			if runner.launchctl == nil {
				t.Error("expected default launchctl to be set")
			}
			if runner.openDB == nil {
				t.Error("expected default openDB to be set")
			}
		})
	})

	t.Run("register returns all commands", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		want := []string{"setup", "install", "uninstall", "status", "agent", "notify"}
		var got []string
		for _, c := range commands {
			got = append(got, c.Name)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected commands %v, got %v", want, got)
		}
	})

	t.Run("writePlain surfaces writer errors", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})
		if err := runner.writePlain("hello\n"); err == nil {
			t.Error("expected write error")
		}
	})
}

// newTestApp wires a Runner with fakes into a root command the way main does.
func newTestApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "finnotify",
		Commands: r.register(),
	}
}

func fakeBinary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "finnotify")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to create fake binary: %v", err)
	}
	return path
}

func TestInstallCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh install", func(t *testing.T) {
		agentsDir := t.TempDir()
		output := &bytes.Buffer{}
		sr := &tu.ScriptedRunner{}
		program := fakeBinary(t)

		runner := NewRunner(RunnerOpts{
			Output:    output,
			Launchctl: launchd.NewLaunchctlWith(sr.Run),
			AgentsDir: agentsDir,
			Locate:    func(string) (string, error) { return program, nil },
			RunSmoke:  func(context.Context, string, ...string) error { return nil },
		})

		if err := newTestApp(runner).Run(ctx, []string{"finnotify", "install"}); err != nil {
			t.Fatalf("install failed: %v", err)
		}

		want := []string{"list", "load"}
		if !reflect.DeepEqual(sr.Verbs(), want) {
			t.Errorf("expected launchctl calls %v, got %v", want, sr.Verbs())
		}

		plist := filepath.Join(agentsDir, launchd.DescriptorName())
		content, err := os.ReadFile(plist)
		if err != nil {
			t.Fatalf("descriptor not written: %v", err)
		}
		tu.ContainsAll(t, string(content), program, launchd.Label)

		tu.ContainsAll(t, output.String(),
			"✓ Notification agent installed",
			"The agent runs daily at 9:00 AM.",
			"launchctl start "+launchd.Label,
			"finnotify uninstall")
	})

	t.Run("load failure prints a hint", func(t *testing.T) {
		agentsDir := t.TempDir()
		output := &bytes.Buffer{}
		sr := &tu.ScriptedRunner{Fail: map[string]bool{"load": true}}

		runner := NewRunner(RunnerOpts{
			Output:    output,
			Launchctl: launchd.NewLaunchctlWith(sr.Run),
			AgentsDir: agentsDir,
			Locate:    func(string) (string, error) { return fakeBinary(t), nil },
			RunSmoke:  func(context.Context, string, ...string) error { return nil },
		})

		err := newTestApp(runner).Run(ctx, []string{"finnotify", "install"})
		if !errors.Is(err, shared.ErrLoadFailed) {
			t.Fatalf("expected ErrLoadFailed, got %v", err)
		}
		tu.ContainsAll(t, output.String(),
			"✗ Failed to load the notification agent",
			"plutil -lint")
	})

	t.Run("missing program aborts", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{
			Output:    &bytes.Buffer{},
			Launchctl: launchd.NewLaunchctlWith((&tu.ScriptedRunner{}).Run),
			AgentsDir: t.TempDir(),
			Locate: func(name string) (string, error) {
				return "", fmt.Errorf("%w: %s", shared.ErrProgramNotFound, name)
			},
		})

		err := newTestApp(runner).Run(ctx, []string{"finnotify", "install"})
		if !errors.Is(err, shared.ErrProgramNotFound) {
			t.Fatalf("expected ErrProgramNotFound, got %v", err)
		}
	})
}

func TestUninstallAndStatusCommands(t *testing.T) {
	ctx := context.Background()
	agentsDir := t.TempDir()
	sr := &tu.ScriptedRunner{}
	program := fakeBinary(t)

	newRunner := func(output *bytes.Buffer) *Runner {
		return NewRunner(RunnerOpts{
			Output:    output,
			Launchctl: launchd.NewLaunchctlWith(sr.Run),
			AgentsDir: agentsDir,
			Locate:    func(string) (string, error) { return program, nil },
			RunSmoke:  func(context.Context, string, ...string) error { return nil },
			OpenDB:    func(string) (*sql.DB, error) { return nil, errors.New("no database") },
		})
	}

	t.Run("status before install", func(t *testing.T) {
		output := &bytes.Buffer{}
		if err := newTestApp(newRunner(output)).Run(ctx, []string{"finnotify", "status"}); err != nil {
			t.Fatalf("status failed: %v", err)
		}
		tu.ContainsAll(t, output.String(), "Installed: ", "no")
	})

	t.Run("uninstall before install", func(t *testing.T) {
		err := newTestApp(newRunner(&bytes.Buffer{})).Run(ctx, []string{"finnotify", "uninstall"})
		if !errors.Is(err, shared.ErrNotInstalled) {
			t.Fatalf("expected ErrNotInstalled, got %v", err)
		}
	})

	t.Run("uninstall after install", func(t *testing.T) {
		if err := newTestApp(newRunner(&bytes.Buffer{})).Run(ctx, []string{"finnotify", "install"}); err != nil {
			t.Fatalf("install failed: %v", err)
		}

		output := &bytes.Buffer{}
		if err := newTestApp(newRunner(output)).Run(ctx, []string{"finnotify", "uninstall"}); err != nil {
			t.Fatalf("uninstall failed: %v", err)
		}
		tu.ContainsAll(t, output.String(), "✓ Notification agent removed")

		if _, err := os.Stat(filepath.Join(agentsDir, launchd.DescriptorName())); !os.IsNotExist(err) {
			t.Error("descriptor should be removed")
		}
	})
}

func TestAgentCommands(t *testing.T) {
	ctx := context.Background()
	sr := &tu.ScriptedRunner{}
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Output:    output,
		Launchctl: launchd.NewLaunchctlWith(sr.Run),
	})

	if err := newTestApp(runner).Run(ctx, []string{"finnotify", "agent", "start"}); err != nil {
		t.Fatalf("agent start failed: %v", err)
	}
	if err := newTestApp(runner).Run(ctx, []string{"finnotify", "agent", "stop"}); err != nil {
		t.Fatalf("agent stop failed: %v", err)
	}

	want := []string{"start", "stop"}
	if !reflect.DeepEqual(sr.Verbs(), want) {
		t.Errorf("expected launchctl calls %v, got %v", want, sr.Verbs())
	}
	tu.ContainsAll(t, output.String(), "✓ Agent started", "✓ Agent stopped")
}

func TestNotifyCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("dry run prints instead of posting", func(t *testing.T) {
		db := tu.NewTestDB(t)
		if _, err := db.Exec(`INSERT INTO recurring_income (name, amount, income_day)
			VALUES ('Salary', 2000, 28)`); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{
			Output: output,
			OpenDB: func(string) (*sql.DB, error) { return db, nil },
		})

		if err := newTestApp(runner).Run(ctx, []string{"finnotify", "notify", "--dry-run"}); err != nil {
			t.Fatalf("notify failed: %v", err)
		}
		tu.ContainsAll(t, output.String(), "📊 Financial Summary", "Net Savings: £2,000.00")
	})

	t.Run("database failure posts the error notification", func(t *testing.T) {
		rec := &tu.RecorderNotifier{}
		runner := NewRunner(RunnerOpts{
			Output:   &bytes.Buffer{},
			Notifier: rec,
			OpenDB:   func(string) (*sql.DB, error) { return nil, errors.New("locked") },
		})

		err := newTestApp(runner).Run(ctx, []string{"finnotify", "notify"})
		if !errors.Is(err, shared.ErrDatabaseUnavailable) {
			t.Fatalf("expected ErrDatabaseUnavailable, got %v", err)
		}
		if len(rec.Sent) != 1 || rec.Sent[0].Title != "❌ Finance App Error" {
			t.Fatalf("expected the error notification, got %+v", rec.Sent)
		}
		if !strings.Contains(rec.Sent[0].Message, "Error checking finances:") {
			t.Errorf("unexpected message: %q", rec.Sent[0].Message)
		}
	})
}

func TestSetupDatabaseCommand(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	dbPath := filepath.Join(dir, "finance.db")
	configPath := filepath.Join(dir, "finnotify.toml")
	content := "[database]\npath = \"" + dbPath + "\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

	args := []string{"finnotify", "setup", "database", "--config", configPath}
	if err := newTestApp(runner).Run(ctx, args); err != nil {
		t.Fatalf("setup database failed: %v", err)
	}

	db, err := shared.NewDatabase(dbPath)
	if err != nil {
		t.Fatalf("database not created: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM recurring_payments").Scan(&count); err != nil {
		t.Fatalf("schema missing: %v", err)
	}
}
