package finance

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DeletionCheckKey is the app_settings key holding the "YYYY-MM" marker of
// the last month-rollover deletion check.
const DeletionCheckKey = "last_deletion_check_month"

// MonthMarker formats the given time as a "YYYY-MM" settings marker.
func MonthMarker(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// IsNewMonth reports whether now falls in a later month than the stored
// marker. An empty or malformed marker means this is the first check, which
// never counts as a new month (pending deletions survive the first run).
func IsNewMonth(marker string, now time.Time) bool {
	parts := strings.SplitN(marker, "-", 2)
	if len(parts) != 2 {
		return false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	return now.Year() > year || (now.Year() == year && int(now.Month()) > month)
}

// PeriodExpired reports whether a payment's pay period has run out by now.
// Payments without a period (nil or -1 months) never expire, and a missing
// start date leaves the period open.
func PeriodExpired(p RecurringPayment, now time.Time) bool {
	if p.PayPeriodMonths == nil || *p.PayPeriodMonths == -1 {
		return false
	}
	if p.PeriodStartDate == nil {
		return false
	}
	return MonthsElapsed(*p.PeriodStartDate, now) >= *p.PayPeriodMonths
}
