// package shared defines helpers used across the installer and the
// notification producer
package shared

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewLogger creates a [log.Logger] writing to the given [io.Writer], with
// timestamps and caller reporting enabled. Timestamps matter here: under
// launchd this output lands in notification_error.log, where the wall-clock
// time of a failed run is the main lead.
//
// The writer defaults to [os.Stderr].
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true, Prefix: "finnotify"}
	return log.NewWithOptions(w, opts)
}

// WithLogger creates a child [log.Logger] with the specified key-value pairs added to all log entries.
func WithLogger(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// SetLogLevel sets the [log.Level] for the given [log.Logger].
func SetLogLevel(l *log.Logger, ll log.Level) {
	l.SetLevel(ll)
}

// GenerateID generates a v4 [uuid.UUID] string, used as the primary key of
// notification_runs rows.
func GenerateID() string {
	return uuid.New().String()
}
