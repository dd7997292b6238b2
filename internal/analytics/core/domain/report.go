package domain

import "time"

// Transaction is the engine's input record. All aggregation is scoped to
// one ClientName at a time.
type Transaction struct {
	ClientName  string
	CustomerID  string
	OrderDate   time.Time
	Amount      float64
	ProductName string
	Channel     string
}

const (
	DefaultProductName = "Uncategorized"
	DefaultChannel     = "EC"
)

type CustomerProfile struct {
	CustomerID     string
	OrderCount     int
	TotalAmount    float64
	FirstOrderDate time.Time
	LastOrderDate  time.Time
	PurchaseDays   int // distinct calendar days with at least one order
}

type MonthlyBucket struct {
	Month              string // YYYY-MM
	TotalRevenue       float64
	OrderCount         int
	NewCustomerRevenue float64
	OldCustomerRevenue float64
	AverageOrderValue  float64
}

type RankEntry struct {
	Name    string
	Revenue float64
	Count   int
}

type RFMPoint struct {
	CustomerID  string
	RecencyDays int
	Frequency   int
	Monetary    float64
}

const CohortOffsets = 4

type CohortRow struct {
	CohortMonth       string // YYYY-MM of first purchase
	Size              int
	RetentionByOffset [CohortOffsets]int
}

type Pulse string

const (
	PulseTraffic    Pulse = "Traffic"
	PulseConversion Pulse = "Conversion"
	PulseProfit     Pulse = "Profit"
	PulseVIP        Pulse = "VIP"
	PulseRetention  Pulse = "Retention"
	PulseReputation Pulse = "Reputation"
)

// Pulses lists the six axes in radar order.
var Pulses = []Pulse{
	PulseTraffic,
	PulseConversion,
	PulseProfit,
	PulseVIP,
	PulseRetention,
	PulseReputation,
}

func (p Pulse) Valid() bool {
	for _, known := range Pulses {
		if p == known {
			return true
		}
	}
	return false
}

const PulseFull = 5.0

type PulseScore struct {
	Axis  Pulse
	Score float64
	Full  float64
}

type Summary struct {
	TotalRevenue      float64
	OrderCount        int
	ValidOrderCount   int // orders with a non-zero amount
	UniqueCustomers   int
	RepeatCustomers   int // customers with more than one purchase day
	AverageOrderValue float64
	TopCustomerShare  float64 // revenue share of the top 20% customers
	FirstOrderDate    time.Time
	LastOrderDate     time.Time
}

// Report is the full dashboard bundle for one client.
type Report struct {
	ClientName     string
	EngineVersion  string
	AsOf           time.Time
	Summary        Summary
	MonthlySeries  []MonthlyBucket
	ProductRanking []RankEntry
	ChannelRanking []RankEntry
	RFMPoints      []RFMPoint
	CohortTable    []CohortRow
	PulseScores    []PulseScore
}

// TopProductNames returns up to n product names in ranking order.
func (r *Report) TopProductNames(n int) []string {
	names := make([]string, 0, n)
	for i, p := range r.ProductRanking {
		if i >= n {
			break
		}
		names = append(names, p.Name)
	}
	return names
}

// Score returns the score of the given axis, 0 when absent.
func (r *Report) Score(axis Pulse) float64 {
	for _, s := range r.PulseScores {
		if s.Axis == axis {
			return s.Score
		}
	}
	return 0
}
