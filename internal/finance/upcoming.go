package finance

import (
	"sort"
	"time"
)

// UpcomingPayments selects the payments due within lookaheadDays of today.
//
// Recurring payments already recorded in payment history for the current
// month are skipped (their ID appears in paidRecurring). One-time payments
// are included while unpaid. Results are sorted soonest first.
func UpcomingPayments(
	today time.Time,
	lookaheadDays int,
	recurring []RecurringPayment,
	paidRecurring map[int64]bool,
	oneTime []OneTimePayment,
) []UpcomingPayment {
	var upcoming []UpcomingPayment

	for _, p := range recurring {
		_, due, _ := PaymentDates(p.PaymentDay, p.LastPaidDate, today)
		days := DaysUntil(today, due)
		if days < 0 || days > lookaheadDays {
			continue
		}
		if paidRecurring[p.ID] {
			continue
		}
		upcoming = append(upcoming, UpcomingPayment{
			Name:        p.Name,
			Amount:      p.Amount,
			Date:        due,
			DaysUntil:   days,
			PaymentType: p.PaymentType,
		})
	}

	for _, p := range oneTime {
		if p.Paid {
			continue
		}
		days := DaysUntil(today, p.PaymentDate)
		if days < 0 || days > lookaheadDays {
			continue
		}
		upcoming = append(upcoming, UpcomingPayment{
			Name:        p.Name,
			Amount:      p.Amount,
			Date:        p.PaymentDate,
			DaysUntil:   days,
			PaymentType: TypeDebit,
		})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DaysUntil < upcoming[j].DaysUntil
	})
	return upcoming
}
