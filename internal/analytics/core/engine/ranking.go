package engine

import (
	"cmp"
	"slices"

	"smebig-warroom/internal/analytics/core/domain"
)

// rankBy sums revenue per label and sorts descending. Equal revenue keeps
// first-seen order. limit <= 0 returns every label.
func rankBy(txs []domain.Transaction, label func(domain.Transaction) string, limit int) []domain.RankEntry {
	index := make(map[string]int)
	entries := make([]domain.RankEntry, 0)

	for _, tx := range txs {
		name := label(tx)
		i, ok := index[name]
		if !ok {
			i = len(entries)
			index[name] = i
			entries = append(entries, domain.RankEntry{Name: name})
		}
		entries[i].Revenue += tx.Amount
		entries[i].Count++
	}

	slices.SortStableFunc(entries, func(a, b domain.RankEntry) int {
		return cmp.Compare(b.Revenue, a.Revenue)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
