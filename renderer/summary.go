package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sandhika/celengan"
)

// SummaryMarkdown renders the dashboard: main balance, the savings
// analytics, and the progress of every target.
func SummaryMarkdown(s celengan.Summary, targets []*celengan.Target) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dashboard")
	doc.PlainText(fmt.Sprintf("Saldo Utama: **%s**", s.MainBalance))

	doc.H2("Analisis")
	ratio := "-"
	if s.Health != celengan.HealthUnknown {
		ratio = s.Ratio.StringFixed(1) + "%"
	}
	doc.Table(md.TableSet{
		Header: []string{"Total Nabung", "Total Keluar", "Rasio", "Status"},
		Rows: [][]string{
			{s.TotalSaved.String(), s.TotalSpent.String(), ratio, string(s.Health)},
		},
	})

	doc.H2("Target Tabungan")
	if len(targets) == 0 {
		doc.PlainText("Belum ada target tabungan.")
		return doc.String()
	}
	doc.Table(targetTable(targets))
	return doc.String()
}

// TargetsMarkdown renders the full target list.
func TargetsMarkdown(targets []*celengan.Target) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Target Tabungan")
	if len(targets) == 0 {
		doc.PlainText("Belum ada target.")
		return doc.String()
	}
	doc.Table(targetTable(targets))
	return doc.String()
}

// TargetDetailMarkdown renders one target with its filtered history.
func TargetDetailMarkdown(t *celengan.Target, groups []celengan.DayGroup, e celengan.Eligibility) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Detail Target: " + t.Name)
	doc.Table(targetTable([]*celengan.Target{t}))

	doc.H2("Penarikan")
	if e.Eligible {
		doc.PlainText(fmt.Sprintf("Maks. penarikan: %s (30%%)", e.Max))
	} else if e.Reason == celengan.BlockCooldown {
		doc.PlainText(fmt.Sprintf("Penarikan terkunci %d hari lagi.", e.DaysRemaining))
	} else {
		doc.PlainText("Saldo target tidak cukup untuk ditarik.")
	}

	doc.H2("Riwayat")
	if len(groups) == 0 {
		doc.PlainText("Belum ada riwayat transaksi.")
		return doc.String()
	}
	for _, g := range groups {
		doc.H3(g.Day.Label())
		for _, tx := range g.Transactions {
			doc.BulletList(Line(tx))
		}
	}
	return doc.String()
}

func targetTable(targets []*celengan.Target) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Target", "Saldo", "Tujuan", "Progres", "Status"},
		Rows:   [][]string{},
	}
	for _, t := range targets {
		status := "aktif"
		if t.Completed() {
			status = "selesai 🎉"
		}
		table.Rows = append(table.Rows, []string{
			t.Name,
			t.Balance.String(),
			t.Goal.String(),
			fmt.Sprintf("%d%%", t.Progress()),
			status,
		})
	}
	return table
}
