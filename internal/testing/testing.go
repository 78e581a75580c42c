// package testing contains shared testing utilities
package testing

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"finnotify/internal/notifier"
	"finnotify/internal/shared"
)

// RecorderNotifier is a test double for [notifier.Notifier] that captures
// every notification. When Err is set, Send fails with it.
type RecorderNotifier struct {
	Sent []notifier.Notification
	Err  error
}

func (r *RecorderNotifier) Send(_ context.Context, n notifier.Notification) error {
	if r.Err != nil {
		return r.Err
	}
	r.Sent = append(r.Sent, n)
	return nil
}

// Titles returns the titles of all captured notifications in order.
func (r *RecorderNotifier) Titles() []string {
	titles := make([]string, 0, len(r.Sent))
	for _, n := range r.Sent {
		titles = append(titles, n.Title)
	}
	return titles
}

// ScriptedCall is one recorded external command invocation.
type ScriptedCall struct {
	Name string
	Args []string
}

// ScriptedRunner fakes external commands for [launchd.CommandRunner].
// Output and Fail are keyed by the first argument (the launchctl verb).
type ScriptedRunner struct {
	Calls  []ScriptedCall
	Output map[string]string
	Fail   map[string]bool
}

func (s *ScriptedRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	s.Calls = append(s.Calls, ScriptedCall{Name: name, Args: args})

	verb := ""
	if len(args) > 0 {
		verb = args[0]
	}
	out := []byte(s.Output[verb])
	if s.Fail[verb] {
		return out, errors.New(name + " " + verb + " failed")
	}
	return out, nil
}

// Verbs returns the first argument of each recorded call, e.g.
// ["list", "unload", "load"].
func (s *ScriptedRunner) Verbs() []string {
	verbs := make([]string, 0, len(s.Calls))
	for _, c := range s.Calls {
		if len(c.Args) > 0 {
			verbs = append(verbs, c.Args[0])
		}
	}
	return verbs
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// NewTestDB opens a migrated SQLite database in a temp directory.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "finance.db")
	db, err := shared.NewDatabase(path)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// ContainsAll fails the test unless every needle occurs in s.
func ContainsAll(t *testing.T, s string, needles ...string) {
	t.Helper()
	for _, needle := range needles {
		if !strings.Contains(s, needle) {
			t.Errorf("expected output to contain %q, got:\n%s", needle, s)
		}
	}
}
