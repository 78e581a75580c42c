// package repositories provides data access over the shared finance
// database for the notification producer.
//
// The desktop app owns the schema; the producer mostly reads, and writes
// only for month-rollover maintenance and its own run log.
package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// dateLayouts covers the formats the desktop app has historically written
// into DATE columns.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// parseDate parses a DATE column value, tolerating both date-only and
// datetime forms. Returns nil for NULL or unparseable values.
func parseDate(v sql.NullString) *time.Time {
	if !v.Valid || v.String == "" {
		return nil
	}
	s := v.String
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	// Last resort: take the date part of whatever is stored.
	if fields := strings.Fields(s); len(fields) > 0 {
		if t, err := time.Parse("2006-01-02", fields[0]); err == nil {
			return &t
		}
	}
	return nil
}

func wrapQuery(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
