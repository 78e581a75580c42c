package finance

import "time"

// clampedDay caps a payment day at 28 so the resulting date exists in every
// month. A payment day of 29-31 is treated as the 28th.
func clampedDay(day int) int {
	if day > 28 {
		return 28
	}
	return day
}

// monthDate builds the payment date within the month containing ref,
// shifted by deltaMonths.
func monthDate(ref time.Time, deltaMonths, paymentDay int) time.Time {
	y, m, _ := ref.Date()
	return time.Date(y, m+time.Month(deltaMonths), clampedDay(paymentDay), 0, 0, 0, 0, time.UTC)
}

// PaymentDates returns the previous, current and next due dates for a
// recurring payment relative to today. When the payment was last paid on or
// after this month's date, the current due date rolls to next month.
func PaymentDates(paymentDay int, lastPaid *time.Time, today time.Time) (last, current, next time.Time) {
	last = monthDate(today, -1, paymentDay)
	thisMonth := monthDate(today, 0, paymentDay)
	next = monthDate(today, 1, paymentDay)

	current = thisMonth
	if lastPaid != nil && !thisMonth.After(dateOnly(*lastPaid)) {
		current = next
	}
	return last, current, next
}

// DaysUntil counts whole calendar days from today to the given date.
// Pure date arithmetic: the time of day and time zone of either value
// never shift the count.
func DaysUntil(today, date time.Time) int {
	return int(dateOnly(date).Sub(dateOnly(today)).Hours() / 24)
}

// MonthsElapsed counts calendar months between two dates, ignoring the day.
func MonthsElapsed(start, now time.Time) int {
	return (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month())
}

// dateOnly strips a value down to its calendar date. Everything lands in
// UTC so stored dates (parsed as UTC midnight) and wall-clock "today"
// values compare on their date components alone.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
