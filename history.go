package celengan

import "sort"

// sortDesc orders transactions newest first, keeping the insertion order
// of entries sharing a timestamp.
func sortDesc(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Time.After(txs[j].Time)
	})
}

// MainHistory returns the main ledger, newest first. Transfer entries do
// appear here: the main ledger is where a deleted target's balance is
// accounted for.
func (u *User) MainHistory() []Transaction {
	out := make([]Transaction, len(u.MainLedger))
	copy(out, u.MainLedger)
	sortDesc(out)
	return out
}

// TargetHistory returns one target's ledger, newest first, without
// synthetic transfer entries.
func (u *User) TargetHistory(name string) ([]Transaction, error) {
	t, ok := u.Target(name)
	if !ok {
		return nil, ErrTargetNotFound
	}
	out := make([]Transaction, 0, len(t.Ledger))
	for _, tx := range t.Ledger {
		if tx.IsTransfer() {
			continue
		}
		out = append(out, tx)
	}
	sortDesc(out)
	return out, nil
}

// UnifiedHistory merges the main ledger with every target ledger into one
// reverse-chronological view. Target entries carry a " (Target: name)"
// suffix on their note. Transfer entries are taken from the main ledger
// only, so a transfer-on-delete shows up exactly once.
func (u *User) UnifiedHistory() []Transaction {
	out := make([]Transaction, len(u.MainLedger))
	copy(out, u.MainLedger)
	for _, t := range u.AllTargets() {
		for _, tx := range t.Ledger {
			if tx.IsTransfer() {
				continue
			}
			tx.Note = tx.Note + " (Target: " + t.Name + ")"
			out = append(out, tx)
		}
	}
	sortDesc(out)
	return out
}

// DayGroup is one calendar day of history.
type DayGroup struct {
	Day          Day
	Transactions []Transaction // newest first
}

// GroupByDay buckets transactions per calendar day. Groups come out
// newest day first and each group's transactions newest first.
func GroupByDay(txs []Transaction) []DayGroup {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	sortDesc(sorted)

	var groups []DayGroup
	index := make(map[Day]int)
	for _, tx := range sorted {
		day := tx.When()
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{Day: day})
		}
		groups[i].Transactions = append(groups[i].Transactions, tx)
	}
	return groups
}
