package celengan

import "github.com/shopspring/decimal"

// Health is the verdict on the user's spending habits, derived from the
// ratio of withdrawals over deposits across every ledger.
type Health string

const (
	HealthUnknown Health = "-"            // nothing saved yet
	HealthSehat   Health = "Dompet Sehat" // ratio below 30%
	HealthStabil  Health = "Cukup Stabil" // ratio up to 60%
	HealthBoros   Health = "Agak Boros"   // ratio above 60%
)

var (
	ratioSehat  = decimal.NewFromInt(30)
	ratioStabil = decimal.NewFromInt(60)
	hundred     = decimal.NewFromInt(100)
)

// Summary is the dashboard projection: the main balance plus deposit and
// withdrawal totals aggregated over the main ledger and every target
// ledger, including ledgers of targets deleted since.
type Summary struct {
	MainBalance Rupiah
	TotalSaved  Rupiah
	TotalSpent  Rupiah
	Ratio       decimal.Decimal // spending over saving, in percent
	Health      Health
}

// Summarize computes the dashboard summary.
func (u *User) Summarize() Summary {
	s := Summary{MainBalance: u.MainBalance, Health: HealthUnknown}

	tally := func(txs []Transaction) {
		for _, tx := range txs {
			switch tx.Kind {
			case KindDeposit:
				s.TotalSaved += tx.Amount
			case KindWithdrawal:
				s.TotalSpent += tx.Amount
			}
		}
	}
	tally(u.MainLedger)
	for _, t := range u.AllTargets() {
		tally(t.Ledger)
	}

	if s.TotalSaved > 0 {
		s.Ratio = decimal.NewFromInt(int64(s.TotalSpent)).
			Div(decimal.NewFromInt(int64(s.TotalSaved))).
			Mul(hundred)
		switch {
		case s.Ratio.LessThan(ratioSehat):
			s.Health = HealthSehat
		case s.Ratio.LessThanOrEqual(ratioStabil):
			s.Health = HealthStabil
		default:
			s.Health = HealthBoros
		}
	}
	return s
}
