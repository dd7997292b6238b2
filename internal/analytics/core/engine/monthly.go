package engine

import (
	"slices"

	"smebig-warroom/internal/analytics/core/domain"
)

// monthlySeries buckets revenue per calendar month and splits it into new
// and returning customer revenue.
//
// An order counts as new when it falls on the same calendar day as the
// customer's first purchase. Several orders on that first day are all new;
// the split is by date equality, not by which order came first.
func monthlySeries(txs []domain.Transaction, cs customers, cal calendar) []domain.MonthlyBucket {
	buckets := make(map[int]*domain.MonthlyBucket)
	var months []int

	for _, tx := range txs {
		m := cal.month(tx.OrderDate)
		b, ok := buckets[m]
		if !ok {
			b = &domain.MonthlyBucket{Month: monthKey(m)}
			buckets[m] = b
			months = append(months, m)
		}

		b.TotalRevenue += tx.Amount
		b.OrderCount++

		if cal.day(tx.OrderDate) == cs.byID[tx.CustomerID].firstDay {
			b.NewCustomerRevenue += tx.Amount
		} else {
			b.OldCustomerRevenue += tx.Amount
		}
	}

	slices.Sort(months)

	out := make([]domain.MonthlyBucket, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		b.AverageOrderValue = ratio(b.TotalRevenue, float64(b.OrderCount))
		out = append(out, *b)
	}
	return out
}
