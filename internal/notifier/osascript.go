package notifier

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"finnotify/internal/shared"

	"golang.org/x/time/rate"
)

// OSAScript posts notifications through osascript. Sends are rate limited
// so a maintenance-heavy run doesn't flood Notification Center.
type OSAScript struct {
	limiter *rate.Limiter
	run     func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewOSAScript returns a notifier allowing perSecond notifications.
func NewOSAScript(perSecond float64) *OSAScript {
	if perSecond <= 0 {
		perSecond = 2.0
	}
	return &OSAScript{
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).CombinedOutput()
		},
	}
}

func (o *OSAScript) Send(ctx context.Context, n Notification) error {
	if err := o.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrNotificationFailed, err)
	}

	script := fmt.Sprintf("display notification %s with title %s",
		quoteAppleScript(n.Message), quoteAppleScript(n.Title))
	if n.Subtitle != "" {
		script += " subtitle " + quoteAppleScript(n.Subtitle)
	}

	if out, err := o.run(ctx, "osascript", "-e", script); err != nil {
		return fmt.Errorf("%w: %v: %s", shared.ErrNotificationFailed, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// quoteAppleScript wraps s in an AppleScript string literal, escaping
// backslashes and double quotes.
func quoteAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
