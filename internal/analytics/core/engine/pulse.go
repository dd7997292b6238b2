package engine

import (
	"cmp"
	"math"
	"slices"

	"smebig-warroom/internal/analytics/core/domain"
)

func summarize(txs []domain.Transaction, cs customers, p Params) domain.Summary {
	s := domain.Summary{
		OrderCount:      len(txs),
		UniqueCustomers: len(cs.ordered),
	}
	if len(txs) == 0 {
		return s
	}

	for _, tx := range txs {
		s.TotalRevenue += tx.Amount
		if tx.Amount > 0 {
			s.ValidOrderCount++
		}
	}
	s.AverageOrderValue = ratio(s.TotalRevenue, float64(s.OrderCount))
	s.FirstOrderDate = txs[0].OrderDate
	s.LastOrderDate = txs[len(txs)-1].OrderDate

	totals := make([]float64, 0, len(cs.ordered))
	for _, c := range cs.ordered {
		if len(c.days) > 1 {
			s.RepeatCustomers++
		}
		totals = append(totals, c.total)
	}
	s.TopCustomerShare = topShare(totals, s.TotalRevenue, p.VIPTopPercent)

	return s
}

// topShare returns the revenue share of the top percent of customers, the
// slice size rounded up.
func topShare(totals []float64, revenue float64, percent int) float64 {
	if len(totals) == 0 || revenue <= 0 {
		return 0
	}
	slices.SortFunc(totals, func(a, b float64) int { return cmp.Compare(b, a) })

	k := (len(totals)*percent + 99) / 100
	var top float64
	for _, v := range totals[:k] {
		top += v
	}
	return ratio(top, revenue)
}

// ScorePulses turns the summary into the six radar scores, each clamped to
// [0, 5]. An empty summary scores zero on every axis.
func ScorePulses(s domain.Summary, p Params) []domain.PulseScore {
	p = p.withDefaults()

	raw := map[domain.Pulse]float64{}
	if s.OrderCount > 0 {
		raw[domain.PulseTraffic] = safeLog10(float64(s.UniqueCustomers)) * p.TrafficWeight
		raw[domain.PulseConversion] = ratio(float64(s.ValidOrderCount), float64(s.OrderCount)) * p.ConversionWeight
		raw[domain.PulseProfit] = safeLog10(s.TotalRevenue) - p.ProfitLogOffset
		raw[domain.PulseVIP] = ratio(s.TopCustomerShare, p.VIPTargetShare) * domain.PulseFull
		raw[domain.PulseRetention] = ratio(float64(s.RepeatCustomers), float64(s.UniqueCustomers)) * p.RetentionWeight
		raw[domain.PulseReputation] = p.ReputationPlaceholder
	}

	out := make([]domain.PulseScore, 0, len(domain.Pulses))
	for _, axis := range domain.Pulses {
		out = append(out, domain.PulseScore{
			Axis:  axis,
			Score: clampScore(raw[axis]),
			Full:  domain.PulseFull,
		})
	}
	return out
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v > domain.PulseFull {
		v = domain.PulseFull
	}
	return math.Round(v*10) / 10
}
