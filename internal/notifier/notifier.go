// package notifier delivers user-facing alerts through the macOS
// notification system.
package notifier

import (
	"context"
	"fmt"
	"io"
)

// Notification is a single user-facing alert.
type Notification struct {
	Title    string
	Subtitle string
	Message  string
}

// Notifier posts notifications. Implementations: [OSAScript] for macOS
// Notification Center, [Writer] for dry runs.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// Writer prints notifications to an io.Writer instead of posting them.
type Writer struct {
	Out io.Writer
}

func (w *Writer) Send(_ context.Context, n Notification) error {
	if n.Subtitle != "" {
		_, err := fmt.Fprintf(w.Out, "%s — %s\n%s\n\n", n.Title, n.Subtitle, n.Message)
		return err
	}
	_, err := fmt.Fprintf(w.Out, "%s\n%s\n\n", n.Title, n.Message)
	return err
}
