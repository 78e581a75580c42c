package launchd

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner executes an external command and returns its combined output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Launchctl drives the user's launchd domain through the launchctl binary.
type Launchctl struct {
	run CommandRunner
}

// NewLaunchctl returns a Launchctl backed by the real launchctl binary.
func NewLaunchctl() *Launchctl {
	return &Launchctl{run: execRunner}
}

// NewLaunchctlWith returns a Launchctl backed by the given runner.
// Used by tests and dry runs.
func NewLaunchctlWith(run CommandRunner) *Launchctl {
	return &Launchctl{run: run}
}

// IsLoaded reports whether a job with the given label is currently
// registered, by scanning `launchctl list` output for the label.
func (l *Launchctl) IsLoaded(ctx context.Context, label string) (bool, error) {
	out, err := l.run(ctx, "launchctl", "list")
	if err != nil {
		return false, fmt.Errorf("launchctl list: %w", err)
	}
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[len(fields)-1] == label {
			return true, nil
		}
	}
	return false, nil
}

// Load registers the descriptor at the given path.
func (l *Launchctl) Load(ctx context.Context, plistPath string) error {
	if out, err := l.run(ctx, "launchctl", "load", plistPath); err != nil {
		return fmt.Errorf("launchctl load %s: %w: %s", plistPath, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Unload removes the registration for the descriptor at the given path.
func (l *Launchctl) Unload(ctx context.Context, plistPath string) error {
	if out, err := l.run(ctx, "launchctl", "unload", plistPath); err != nil {
		return fmt.Errorf("launchctl unload %s: %w: %s", plistPath, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Start runs the job with the given label immediately.
func (l *Launchctl) Start(ctx context.Context, label string) error {
	if out, err := l.run(ctx, "launchctl", "start", label); err != nil {
		return fmt.Errorf("launchctl start %s: %w: %s", label, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Stop stops the job with the given label.
func (l *Launchctl) Stop(ctx context.Context, label string) error {
	if out, err := l.run(ctx, "launchctl", "stop", label); err != nil {
		return fmt.Errorf("launchctl stop %s: %w: %s", label, err, strings.TrimSpace(string(out)))
	}
	return nil
}
