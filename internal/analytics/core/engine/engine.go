// Package engine derives the dashboard views from one client's raw
// transactions. Every function here is pure: no clock, no I/O and no state
// kept between calls, so the same input always yields the same report.
package engine

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"

	"smebig-warroom/internal/analytics/core/domain"
)

// Version identifies the aggregation contract. Bump it whenever a formula
// or classification rule changes so cached reports are not reused.
const Version = "2"

// Params holds the product-tunable constants of the aggregation.
type Params struct {
	Location      *time.Location // calendar days and months are taken in this zone
	TopProducts   int
	RFMPointLimit int

	TrafficWeight         float64
	ConversionWeight      float64
	ProfitLogOffset       float64
	VIPTopPercent         int     // share of customers counted as VIP
	VIPTargetShare        float64 // revenue share of the VIP slice that earns a full score
	RetentionWeight       float64
	ReputationPlaceholder float64 // no data signal exists for reputation
}

func DefaultParams() Params {
	return Params{
		Location:              time.UTC,
		TopProducts:           10,
		RFMPointLimit:         2000,
		TrafficWeight:         1.5,
		ConversionWeight:      5,
		ProfitLogOffset:       3,
		VIPTopPercent:         20,
		VIPTargetShare:        0.8,
		RetentionWeight:       12.5,
		ReputationPlaceholder: 2.5,
	}
}

// withDefaults fills zero-valued fields from DefaultParams. ProfitLogOffset
// and ReputationPlaceholder are used as given since zero is a valid setting
// for both; start from DefaultParams to get their defaults.
func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.Location == nil {
		p.Location = d.Location
	}
	if p.TopProducts <= 0 {
		p.TopProducts = d.TopProducts
	}
	if p.RFMPointLimit <= 0 {
		p.RFMPointLimit = d.RFMPointLimit
	}
	if p.TrafficWeight <= 0 {
		p.TrafficWeight = d.TrafficWeight
	}
	if p.ConversionWeight <= 0 {
		p.ConversionWeight = d.ConversionWeight
	}
	if p.VIPTopPercent <= 0 || p.VIPTopPercent > 100 {
		p.VIPTopPercent = d.VIPTopPercent
	}
	if p.VIPTargetShare <= 0 {
		p.VIPTargetShare = d.VIPTargetShare
	}
	if p.RetentionWeight <= 0 {
		p.RetentionWeight = d.RetentionWeight
	}
	return p
}

// Aggregate builds the full report. A zero now means "the latest order date
// in the input".
func Aggregate(txs []domain.Transaction, now time.Time, p Params) *domain.Report {
	p = p.withDefaults()
	cal := calendar{loc: p.Location}

	sorted := prepare(txs)
	if now.IsZero() && len(sorted) > 0 {
		now = sorted[len(sorted)-1].OrderDate
	}

	customers := groupCustomers(sorted, cal)
	summary := summarize(sorted, customers, p)

	var clientName string
	if len(sorted) > 0 {
		clientName = sorted[0].ClientName
	}

	return &domain.Report{
		ClientName:     clientName,
		EngineVersion:  Version,
		AsOf:           now,
		Summary:        summary,
		MonthlySeries:  monthlySeries(sorted, customers, cal),
		ProductRanking: rankBy(sorted, productOf, p.TopProducts),
		ChannelRanking: rankBy(sorted, channelOf, 0),
		RFMPoints:      rfmPoints(customers, now, cal, p.RFMPointLimit),
		CohortTable:    cohortTable(customers),
		PulseScores:    ScorePulses(summary, p),
	}
}

// prepare drops records that cannot be attributed (no customer, no date,
// unusable amount) and returns the rest sorted by order date. The sort is
// stable so same-instant orders keep their input order.
func prepare(txs []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txs))
	for _, tx := range txs {
		tx.CustomerID = strings.TrimSpace(tx.CustomerID)
		if tx.CustomerID == "" || tx.OrderDate.IsZero() {
			continue
		}
		if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) || tx.Amount < 0 {
			continue
		}
		out = append(out, tx)
	}
	slices.SortStableFunc(out, func(a, b domain.Transaction) int {
		return a.OrderDate.Compare(b.OrderDate)
	})
	return out
}

func productOf(tx domain.Transaction) string {
	if name := strings.TrimSpace(tx.ProductName); name != "" {
		return name
	}
	return domain.DefaultProductName
}

func channelOf(tx domain.Transaction) string {
	if name := strings.TrimSpace(tx.Channel); name != "" {
		return name
	}
	return domain.DefaultChannel
}

// calendar converts instants into civil days and months in one location.
type calendar struct {
	loc *time.Location
}

// day returns the civil date as YYYYMMDD.
func (c calendar) day(t time.Time) int {
	y, m, d := t.In(c.loc).Date()
	return y*10000 + int(m)*100 + d
}

// month returns a month index that grows by one per calendar month.
func (c calendar) month(t time.Time) int {
	y, m, _ := t.In(c.loc).Date()
	return y*12 + int(m) - 1
}

func monthKey(month int) string {
	y, m := month/12, month%12+1
	return time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// daysBetween counts calendar days from a to b, negative when b is earlier.
func (c calendar) daysBetween(a, b time.Time) int {
	ay, am, ad := a.In(c.loc).Date()
	by, bm, bd := b.In(c.loc).Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

func safeLog10(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log10(v)
}

func compareCustomers(a, b *customer) int {
	if c := a.firstOrder.Compare(b.firstOrder); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}
