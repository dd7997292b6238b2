package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smebig-warroom/internal/analytics/core/domain"
)

func scoresByAxis(scores []domain.PulseScore) map[domain.Pulse]float64 {
	out := make(map[domain.Pulse]float64, len(scores))
	for _, s := range scores {
		out[s.Axis] = s.Score
	}
	return out
}

func TestScorePulses_EmptySummary(t *testing.T) {
	scores := ScorePulses(domain.Summary{}, DefaultParams())

	require.Len(t, scores, len(domain.Pulses))
	for i, s := range scores {
		assert.Equal(t, domain.Pulses[i], s.Axis)
		assert.Zero(t, s.Score)
	}
}

func TestScorePulses_Formulas(t *testing.T) {
	s := domain.Summary{
		TotalRevenue:     100000,
		OrderCount:       200,
		ValidOrderCount:  180,
		UniqueCustomers:  100,
		RepeatCustomers:  20,
		TopCustomerShare: 0.4,
	}
	got := scoresByAxis(ScorePulses(s, DefaultParams()))

	assert.Equal(t, 3.0, got[domain.PulseTraffic])    // log10(100) * 1.5
	assert.Equal(t, 4.5, got[domain.PulseConversion]) // 0.9 * 5
	assert.Equal(t, 2.0, got[domain.PulseProfit])     // log10(1e5) - 3
	assert.Equal(t, 2.5, got[domain.PulseVIP])        // 0.4 / 0.8 * 5
	assert.Equal(t, 2.5, got[domain.PulseRetention])  // 0.2 * 12.5
	assert.Equal(t, 2.5, got[domain.PulseReputation]) // placeholder
}

func TestScorePulses_ExtremeInputStaysBounded(t *testing.T) {
	s := domain.Summary{
		TotalRevenue:     10_000_000_000,
		OrderCount:       1_000_000,
		ValidOrderCount:  1_000_000,
		UniqueCustomers:  500_000,
		RepeatCustomers:  500_000,
		TopCustomerShare: 1,
	}
	for _, sc := range ScorePulses(s, DefaultParams()) {
		assert.GreaterOrEqual(t, sc.Score, 0.0, "axis %s", sc.Axis)
		assert.LessOrEqual(t, sc.Score, 5.0, "axis %s", sc.Axis)
	}
}

func TestScorePulses_TenMillionRevenueCapped(t *testing.T) {
	r := Aggregate([]domain.Transaction{tx("BIG", "2024-01-01", 10_000_000)}, day("2024-02-01"), DefaultParams())

	got := scoresByAxis(r.PulseScores)
	assert.LessOrEqual(t, got[domain.PulseProfit], 5.0)
	assert.Equal(t, 4.0, got[domain.PulseProfit])
	assert.Equal(t, 0.0, got[domain.PulseTraffic]) // log10(1) == 0
	assert.Equal(t, 5.0, got[domain.PulseVIP])
}

func TestScorePulses_ZeroRevenueNeverNegative(t *testing.T) {
	s := domain.Summary{OrderCount: 3, UniqueCustomers: 2}
	got := scoresByAxis(ScorePulses(s, DefaultParams()))

	assert.Zero(t, got[domain.PulseProfit])
	assert.Zero(t, got[domain.PulseConversion])
	assert.Zero(t, got[domain.PulseVIP])
}

func TestScorePulses_TunableParams(t *testing.T) {
	p := DefaultParams()
	p.ProfitLogOffset = 4
	p.ReputationPlaceholder = 3

	s := domain.Summary{TotalRevenue: 1_000_000, OrderCount: 1, UniqueCustomers: 1}
	got := scoresByAxis(ScorePulses(s, p))

	assert.Equal(t, 2.0, got[domain.PulseProfit])
	assert.Equal(t, 3.0, got[domain.PulseReputation])
}

func TestScorePulses_ZeroOffsetAndPlaceholderAreKept(t *testing.T) {
	p := DefaultParams()
	p.ProfitLogOffset = 0
	p.ReputationPlaceholder = 0

	s := domain.Summary{TotalRevenue: 10_000, OrderCount: 1, UniqueCustomers: 1}
	got := scoresByAxis(ScorePulses(s, p))

	assert.Equal(t, 4.0, got[domain.PulseProfit])
	assert.Zero(t, got[domain.PulseReputation])
}

func TestTopShare(t *testing.T) {
	tests := []struct {
		name    string
		totals  []float64
		revenue float64
		want    float64
	}{
		{"empty", nil, 0, 0},
		{"zero revenue", []float64{0, 0}, 0, 0},
		{"single customer", []float64{40}, 40, 1},
		// ceil(20% of 6) = 2 customers: 50 + 30
		{"rounds slice up", []float64{5, 30, 10, 50, 3, 2}, 100, 0.8},
		// 20% of 10 = 2 customers: 40 + 20
		{"exact slice", []float64{40, 20, 10, 10, 5, 5, 4, 3, 2, 1}, 100, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, topShare(tt.totals, tt.revenue, 20), 1e-9)
		})
	}
}

func TestSummary_Counts(t *testing.T) {
	txs := append(scenario(), tx("C3", "2024-02-11", 0))
	r := Aggregate(txs, day("2024-03-01"), DefaultParams())

	assert.Equal(t, 5, r.Summary.OrderCount)
	assert.Equal(t, 4, r.Summary.ValidOrderCount)
	assert.Equal(t, 3, r.Summary.UniqueCustomers)
	assert.Equal(t, 1, r.Summary.RepeatCustomers)
	assert.InDelta(t, 425, r.Summary.TotalRevenue, 1e-9)
	assert.InDelta(t, 85, r.Summary.AverageOrderValue, 1e-9)
	// top ceil(0.6) = 1 customer: C1 with 225
	assert.InDelta(t, 225.0/425.0, r.Summary.TopCustomerShare, 1e-9)
}
