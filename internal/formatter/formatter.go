// package formatter renders money amounts and notification bodies
package formatter

import (
	"fmt"
	"strings"
	"time"

	"finnotify/internal/finance"
)

// Amount renders a money value with two decimal places, e.g. "£850.00".
func Amount(m finance.Money, symbol string) string {
	return symbol + m.Amount.StringFixed(2)
}

// AmountGrouped renders a money value with thousands separators,
// e.g. "£1,234.56". Used in the financial summary.
func AmountGrouped(m finance.Money, symbol string) string {
	s := m.Amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := symbol + b.String() + "." + fracPart
	if neg {
		out = symbol + "-" + b.String() + "." + fracPart
	}
	return out
}

// DaysText phrases a due distance: "today", "in 1 days", "in 3 days".
func DaysText(days int) string {
	if days == 0 {
		return "today"
	}
	return fmt.Sprintf("in %d days", days)
}

// PaymentLine renders one upcoming payment bullet.
func PaymentLine(p finance.UpcomingPayment, symbol string) string {
	return fmt.Sprintf("• %s: %s (%s)", p.Name, Amount(p.Amount, symbol), DaysText(p.DaysUntil))
}

// PaymentList renders the upcoming-payments notification body, listing at
// most maxListed entries with an overflow line for the rest.
func PaymentList(payments []finance.UpcomingPayment, maxListed int, symbol string) string {
	if maxListed <= 0 {
		maxListed = 5
	}

	var lines []string
	for i, p := range payments {
		if i >= maxListed {
			break
		}
		lines = append(lines, PaymentLine(p, symbol))
	}

	msg := strings.Join(lines, "\n")
	if len(payments) > maxListed {
		msg += fmt.Sprintf("\n... and %d more", len(payments)-maxListed)
	}
	return msg
}

// NameList renders maintenance notification bodies: one bullet per name.
func NameList(names []string) string {
	var lines []string
	for _, name := range names {
		lines = append(lines, "• "+name)
	}
	return strings.Join(lines, "\n")
}

// SummaryMessage renders the financial summary notification body.
func SummaryMessage(s finance.Summary, symbol string) string {
	var b strings.Builder
	if s.NetSavings.IsNegative() {
		b.WriteString("Net Deficit: " + AmountGrouped(s.NetSavings.Abs(), symbol))
	} else {
		b.WriteString("Net Savings: " + AmountGrouped(s.NetSavings, symbol))
	}
	b.WriteString("\nRemaining to pay: " + AmountGrouped(s.RemainingToPay, symbol))
	if s.RemainingCredit.IsPositive() {
		b.WriteString("\nRemaining credit: " + AmountGrouped(s.RemainingCredit, symbol))
	}
	return b.String()
}

// MonthTitle renders the summary subtitle, e.g. "Month: August 2026".
func MonthTitle(t time.Time) string {
	return "Month: " + t.Format("January 2006")
}
