package finance

import "strings"

// Summarize computes the current month's financial position.
//
// Total scheduled covers every recurring payment plus this month's one-time
// payments; already-paid amounts come from payment history and keep their
// credit/debit split. Net savings is income minus everything scheduled, and
// may be negative (a deficit).
func Summarize(totalIncome Money, recurring []RecurringPayment, oneTimeThisMonth Money, paid []PaidPayment) Summary {
	s := Summary{
		TotalIncome:     totalIncome,
		TotalScheduled:  ZeroMoney(),
		AlreadyPaid:     ZeroMoney(),
		RemainingCredit: ZeroMoney(),
		RemainingDebit:  ZeroMoney(),
	}

	totalCredit := ZeroMoney()
	totalDebit := ZeroMoney()
	for _, p := range recurring {
		s.TotalScheduled = s.TotalScheduled.Add(p.Amount)
		if isCredit(p.PaymentType) {
			totalCredit = totalCredit.Add(p.Amount)
		} else {
			totalDebit = totalDebit.Add(p.Amount)
		}
	}

	s.TotalScheduled = s.TotalScheduled.Add(oneTimeThisMonth)
	totalDebit = totalDebit.Add(oneTimeThisMonth)

	creditPaid := ZeroMoney()
	debitPaid := ZeroMoney()
	for _, p := range paid {
		s.AlreadyPaid = s.AlreadyPaid.Add(p.Amount)
		if isCredit(p.PaymentType) {
			creditPaid = creditPaid.Add(p.Amount)
		} else {
			debitPaid = debitPaid.Add(p.Amount)
		}
	}

	s.RemainingToPay = s.TotalScheduled.Sub(s.AlreadyPaid)
	s.RemainingCredit = totalCredit.Sub(creditPaid)
	s.RemainingDebit = totalDebit.Sub(debitPaid)
	s.NetSavings = s.TotalIncome.Sub(s.TotalScheduled)
	return s
}

func isCredit(paymentType string) bool {
	return strings.EqualFold(paymentType, TypeCredit)
}
