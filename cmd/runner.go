package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"finnotify/internal/launchd"
	"finnotify/internal/notifier"
	"finnotify/internal/shared"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config    *shared.Config
	logger    *log.Logger
	output    io.Writer
	launchctl *launchd.Launchctl
	notifier  notifier.Notifier
	agentsDir string
	locate    func(name string) (string, error)
	runSmoke  func(ctx context.Context, path string, args ...string) error
	openDB    func(path string) (*sql.DB, error)
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config    *shared.Config
	Logger    *log.Logger
	Output    io.Writer
	Launchctl *launchd.Launchctl
	Notifier  notifier.Notifier
	AgentsDir string
	Locate    func(name string) (string, error)
	RunSmoke  func(ctx context.Context, path string, args ...string) error
	OpenDB    func(path string) (*sql.DB, error)
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Launchctl == nil {
		opts.Launchctl = launchd.NewLaunchctl()
	}
	if opts.OpenDB == nil {
		opts.OpenDB = shared.NewDatabase
	}

	return &Runner{
		config:    opts.Config,
		logger:    opts.Logger,
		output:    opts.Output,
		launchctl: opts.Launchctl,
		notifier:  opts.Notifier,
		agentsDir: opts.AgentsDir,
		locate:    opts.Locate,
		runSmoke:  opts.RunSmoke,
		openDB:    opts.OpenDB,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, installCommand, uninstallCommand, statusCommand, agentCommand, notifyCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig resolves the effective config for a command: the --config flag
// wins when the file exists, otherwise the Runner's startup config applies.
func (r *Runner) loadConfig(cmd *cli.Command) *shared.Config {
	path := cmd.String("config")
	if path == "" {
		return r.config
	}
	if _, err := os.Stat(path); err != nil {
		return r.config
	}
	config, err := shared.LoadConfig(path)
	if err != nil {
		r.logger.Warn("failed to load config, using defaults", "error", err)
		return r.config
	}
	return config
}

// newInstaller builds an installer for the effective config.
func (r *Runner) newInstaller(config *shared.Config) (*launchd.Installer, error) {
	return launchd.NewInstaller(launchd.InstallerOpts{
		Program:   config.Agent.Program,
		AgentsDir: r.agentsDir,
		Logger:    r.logger,
		Launchctl: r.launchctl,
		Locate:    r.locate,
		RunSmoke:  r.runSmoke,
	})
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
