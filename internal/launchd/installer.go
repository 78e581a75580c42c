package launchd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"finnotify/internal/shared"

	"github.com/charmbracelet/log"
)

// producerArg is the subcommand the agent passes to the scheduled program.
const producerArg = "notify"

// Installer registers the daily notification agent with launchd.
//
// The sequence is linear with two failure tiers: a missing program and a
// failed launchctl load are fatal; everything else (chmod, smoke test,
// unloading a previous registration) is advisory and logged as a warning.
type Installer struct {
	program   string
	agentsDir string
	logger    *log.Logger
	launchctl *Launchctl
	locate    func(name string) (string, error)
	runSmoke  func(ctx context.Context, path string, args ...string) error
}

// InstallerOpts contains configuration options for creating an Installer.
type InstallerOpts struct {
	Program   string // executable name resolved against PATH
	AgentsDir string // defaults to ~/Library/LaunchAgents
	Logger    *log.Logger
	Launchctl *Launchctl
	Locate    func(name string) (string, error)
	RunSmoke  func(ctx context.Context, path string, args ...string) error
}

// NewInstaller creates an Installer with the provided options.
func NewInstaller(opts InstallerOpts) (*Installer, error) {
	if opts.Program == "" {
		opts.Program = "finnotify"
	}
	if opts.AgentsDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		opts.AgentsDir = filepath.Join(home, "Library", "LaunchAgents")
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Launchctl == nil {
		opts.Launchctl = NewLaunchctl()
	}
	if opts.Locate == nil {
		opts.Locate = LocateProgram
	}
	if opts.RunSmoke == nil {
		opts.RunSmoke = func(ctx context.Context, path string, args ...string) error {
			return exec.CommandContext(ctx, path, args...).Run()
		}
	}
	return &Installer{
		program:   opts.Program,
		agentsDir: opts.AgentsDir,
		logger:    opts.Logger,
		launchctl: opts.Launchctl,
		locate:    opts.Locate,
		runSmoke:  opts.RunSmoke,
	}, nil
}

// InstallResult describes a completed installation.
type InstallResult struct {
	ProgramPath string
	InstallDir  string
	PlistPath   string
	SmokeTestOK bool
}

// PlistPath returns where the installed descriptor lives.
func (i *Installer) PlistPath() string {
	return filepath.Join(i.agentsDir, DescriptorName())
}

// Install performs the full install sequence and returns the resolved paths.
// No filesystem mutation happens before the program resolves.
func (i *Installer) Install(ctx context.Context) (*InstallResult, error) {
	programPath, err := i.locate(i.program)
	if err != nil {
		return nil, err
	}
	installDir := filepath.Dir(programPath)
	i.logger.Info("resolved program", "path", programPath)

	if err := os.Chmod(programPath, 0755); err != nil {
		i.logger.Warn("failed to mark program executable", "error", err)
	}

	smokeOK := true
	i.logger.Info("running notification smoke test")
	if err := i.runSmoke(ctx, programPath, producerArg); err != nil {
		smokeOK = false
		i.logger.Warn("smoke test failed; the finance database may not exist yet", "error", err)
	}

	if err := os.MkdirAll(i.agentsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create agents directory: %w", err)
	}

	// Overwrites any prior descriptor unconditionally.
	plistPath := i.PlistPath()
	content := RenderDescriptor(programPath, installDir)
	if err := os.WriteFile(plistPath, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("failed to write descriptor: %w", err)
	}
	i.logger.Info("descriptor installed", "path", plistPath)

	// Unload a previous registration so reinstalls stay idempotent. The job
	// may already be stopped, so failures here are suppressed.
	if loaded, err := i.launchctl.IsLoaded(ctx, Label); err == nil && loaded {
		if err := i.launchctl.Unload(ctx, plistPath); err != nil {
			i.logger.Warn("failed to unload existing agent", "error", err)
		}
	}

	if err := i.launchctl.Load(ctx, plistPath); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrLoadFailed, err)
	}

	return &InstallResult{
		ProgramPath: programPath,
		InstallDir:  installDir,
		PlistPath:   plistPath,
		SmokeTestOK: smokeOK,
	}, nil
}

// Uninstall unloads the agent and removes the installed descriptor.
// Unload failures are advisory; a missing descriptor is reported as such.
func (i *Installer) Uninstall(ctx context.Context) error {
	plistPath := i.PlistPath()
	if _, err := os.Stat(plistPath); err != nil {
		return fmt.Errorf("%w: %s", shared.ErrNotInstalled, plistPath)
	}

	if err := i.launchctl.Unload(ctx, plistPath); err != nil {
		i.logger.Warn("failed to unload agent", "error", err)
	}

	if err := os.Remove(plistPath); err != nil {
		return fmt.Errorf("failed to remove descriptor: %w", err)
	}
	return nil
}

// Status describes the current installation state of the agent.
type Status struct {
	PlistPath string
	Installed bool // descriptor present on disk
	Loaded    bool // job registered with launchd
}

// Status reports whether the descriptor is on disk and the job registered.
func (i *Installer) Status(ctx context.Context) (*Status, error) {
	st := &Status{PlistPath: i.PlistPath()}
	if _, err := os.Stat(st.PlistPath); err == nil {
		st.Installed = true
	}
	loaded, err := i.launchctl.IsLoaded(ctx, Label)
	if err != nil {
		return st, err
	}
	st.Loaded = loaded
	return st, nil
}
