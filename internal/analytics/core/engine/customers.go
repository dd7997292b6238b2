package engine

import (
	"slices"
	"time"

	"smebig-warroom/internal/analytics/core/domain"
)

type customer struct {
	id          string
	orders      int
	total       float64
	firstOrder  time.Time
	lastOrder   time.Time
	firstDay    int
	firstMonth  int
	days        map[int]struct{}
	activeMonth [domain.CohortOffsets]bool // month offsets from the first purchase month
}

// customers keeps profiles in a deterministic order: first purchase, then id.
type customers struct {
	byID    map[string]*customer
	ordered []*customer
}

// groupCustomers expects txs sorted by order date, so the first record seen
// for a customer is that customer's first purchase.
func groupCustomers(txs []domain.Transaction, cal calendar) customers {
	cs := customers{byID: make(map[string]*customer)}

	for _, tx := range txs {
		c, ok := cs.byID[tx.CustomerID]
		if !ok {
			c = &customer{
				id:         tx.CustomerID,
				firstOrder: tx.OrderDate,
				firstDay:   cal.day(tx.OrderDate),
				firstMonth: cal.month(tx.OrderDate),
				days:       make(map[int]struct{}),
			}
			cs.byID[tx.CustomerID] = c
			cs.ordered = append(cs.ordered, c)
		}

		c.orders++
		c.total += tx.Amount
		c.lastOrder = tx.OrderDate
		c.days[cal.day(tx.OrderDate)] = struct{}{}

		if offset := cal.month(tx.OrderDate) - c.firstMonth; offset >= 0 && offset < domain.CohortOffsets {
			c.activeMonth[offset] = true
		}
	}

	slices.SortStableFunc(cs.ordered, compareCustomers)
	return cs
}

func (c *customer) profile() domain.CustomerProfile {
	return domain.CustomerProfile{
		CustomerID:     c.id,
		OrderCount:     c.orders,
		TotalAmount:    c.total,
		FirstOrderDate: c.firstOrder,
		LastOrderDate:  c.lastOrder,
		PurchaseDays:   len(c.days),
	}
}

// Profiles returns one profile per attributable customer, ordered by first
// purchase then customer id.
func Profiles(txs []domain.Transaction, p Params) []domain.CustomerProfile {
	p = p.withDefaults()
	cs := groupCustomers(prepare(txs), calendar{loc: p.Location})

	out := make([]domain.CustomerProfile, 0, len(cs.ordered))
	for _, c := range cs.ordered {
		out = append(out, c.profile())
	}
	return out
}

// rfmPoints maps each customer to recency/frequency/monetary. The list is
// truncated to limit after the deterministic customer ordering, so the
// same input always yields the same sample.
func rfmPoints(cs customers, now time.Time, cal calendar, limit int) []domain.RFMPoint {
	n := len(cs.ordered)
	if limit > 0 && n > limit {
		n = limit
	}

	out := make([]domain.RFMPoint, 0, n)
	for _, c := range cs.ordered[:n] {
		recency := cal.daysBetween(c.lastOrder, now)
		if recency < 0 {
			recency = 0
		}
		out = append(out, domain.RFMPoint{
			CustomerID:  c.id,
			RecencyDays: recency,
			Frequency:   len(c.days),
			Monetary:    c.total,
		})
	}
	return out
}
