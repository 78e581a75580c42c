package finance

import "testing"

func TestSummarize(t *testing.T) {
	recurring := []RecurringPayment{
		{Name: "Rent", Amount: MoneyFromFloat(850), PaymentType: TypeDebit},
		{Name: "Card", Amount: MoneyFromFloat(150), PaymentType: TypeCredit},
		{Name: "Gym", Amount: MoneyFromFloat(30), PaymentType: TypeDebit},
	}

	t.Run("positive net savings", func(t *testing.T) {
		s := Summarize(MoneyFromFloat(2000), recurring, MoneyFromFloat(70), []PaidPayment{
			{Amount: MoneyFromFloat(850), PaymentType: TypeDebit},
			{Amount: MoneyFromFloat(150), PaymentType: TypeCredit},
		})

		if s.TotalScheduled.Float64() != 1100 {
			t.Errorf("total scheduled = %v, want 1100", s.TotalScheduled.Float64())
		}
		if s.AlreadyPaid.Float64() != 1000 {
			t.Errorf("already paid = %v, want 1000", s.AlreadyPaid.Float64())
		}
		if s.RemainingToPay.Float64() != 100 {
			t.Errorf("remaining = %v, want 100", s.RemainingToPay.Float64())
		}
		if s.RemainingCredit.Float64() != 0 {
			t.Errorf("remaining credit = %v, want 0", s.RemainingCredit.Float64())
		}
		// Debit total: 850 + 30 + 70 one-time = 950; 850 paid.
		if s.RemainingDebit.Float64() != 100 {
			t.Errorf("remaining debit = %v, want 100", s.RemainingDebit.Float64())
		}
		if s.NetSavings.Float64() != 900 {
			t.Errorf("net savings = %v, want 900", s.NetSavings.Float64())
		}
	})

	t.Run("deficit", func(t *testing.T) {
		s := Summarize(MoneyFromFloat(500), recurring, ZeroMoney(), nil)
		if !s.NetSavings.IsNegative() {
			t.Error("expected a deficit")
		}
		if s.NetSavings.Abs().Float64() != 530 {
			t.Errorf("deficit = %v, want 530", s.NetSavings.Abs().Float64())
		}
	})

	t.Run("unknown payment type counts as debit", func(t *testing.T) {
		s := Summarize(ZeroMoney(), []RecurringPayment{{Amount: MoneyFromFloat(10), PaymentType: ""}}, ZeroMoney(), nil)
		if s.RemainingDebit.Float64() != 10 {
			t.Errorf("remaining debit = %v, want 10", s.RemainingDebit.Float64())
		}
	})

	t.Run("credit comparison is case insensitive", func(t *testing.T) {
		s := Summarize(ZeroMoney(), []RecurringPayment{{Amount: MoneyFromFloat(25), PaymentType: "Credit"}}, ZeroMoney(), nil)
		if s.RemainingCredit.Float64() != 25 {
			t.Errorf("remaining credit = %v, want 25", s.RemainingCredit.Float64())
		}
	})
}
