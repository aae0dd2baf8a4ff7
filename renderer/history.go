package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/sandhika/celengan"
)

// HistoryMarkdown renders day-grouped history as one markdown document,
// one section per calendar day, newest first.
func HistoryMarkdown(title string, groups []celengan.DayGroup) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(groups) == 0 {
		doc.PlainText("Belum ada riwayat transaksi.")
		return doc.String()
	}

	for _, g := range groups {
		doc.H2(g.Day.Label())
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Jam", "Jenis", "Catatan", "Jumlah"},
			Rows:   [][]string{},
		}
		for _, tx := range g.Transactions {
			table.Rows = append(table.Rows, []string{
				tx.Time.Format("15:04"),
				kindLabel(tx.Kind),
				tx.Note,
				signedAmount(tx),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
