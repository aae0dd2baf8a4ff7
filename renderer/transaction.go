// Package renderer turns celengan's read-side projections into markdown
// documents, ready to be printed on a terminal.
package renderer

import (
	"fmt"

	"github.com/sandhika/celengan"
)

// Line renders one transaction as a signed, timestamped row.
func Line(tx celengan.Transaction) string {
	sign := "+"
	if tx.Kind == celengan.KindWithdrawal {
		sign = "-"
	}
	return fmt.Sprintf("%s%s — %s (%s)", sign, tx.Amount, tx.Note, tx.Time.Format("15:04"))
}

// kindLabel names a transaction kind for table cells.
func kindLabel(k celengan.Kind) string {
	if k == celengan.KindWithdrawal {
		return "Keluar"
	}
	return "Nabung"
}

// signedAmount formats an amount with the sign implied by its kind.
func signedAmount(tx celengan.Transaction) string {
	if tx.Kind == celengan.KindWithdrawal {
		return "-" + tx.Amount.String()
	}
	return "+" + tx.Amount.String()
}
