package fiber

type SummaryResponse struct {
	TotalRevenue      float64 `json:"total_revenue"`
	OrderCount        int     `json:"order_count"`
	ValidOrderCount   int     `json:"valid_order_count"`
	UniqueCustomers   int     `json:"unique_customers"`
	RepeatCustomers   int     `json:"repeat_customers"`
	AverageOrderValue float64 `json:"average_order_value"`
	TopCustomerShare  float64 `json:"top_customer_share"`
	FirstOrderDate    string  `json:"first_order_date,omitempty"`
	LastOrderDate     string  `json:"last_order_date,omitempty"`
}

type MonthlyBucketResponse struct {
	Month              string  `json:"month" example:"2024-01"`
	TotalRevenue       float64 `json:"total_revenue"`
	OrderCount         int     `json:"order_count"`
	NewCustomerRevenue float64 `json:"new_customer_revenue"`
	OldCustomerRevenue float64 `json:"old_customer_revenue"`
	AverageOrderValue  float64 `json:"average_order_value"`
}

type RankEntryResponse struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// RFMPointResponse is shaped for a bubble chart: x recency, y frequency,
// z monetary.
type RFMPointResponse struct {
	CustomerID string  `json:"customer_id"`
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Z          float64 `json:"z"`
}

type CohortRowResponse struct {
	CohortMonth       string `json:"cohort_month" example:"2024-01"`
	Size              int    `json:"size"`
	RetentionByOffset []int  `json:"retention_by_offset"`
}

type PulseScoreResponse struct {
	Axis  string  `json:"axis" example:"Traffic"`
	Score float64 `json:"score"`
	Full  float64 `json:"full"`
}

type DashboardResponse struct {
	ClientName     string                  `json:"client_name"`
	EngineVersion  string                  `json:"engine_version"`
	AsOf           string                  `json:"as_of" example:"2024-03-01"`
	Summary        SummaryResponse         `json:"summary"`
	MonthlySeries  []MonthlyBucketResponse `json:"monthly_series"`
	ProductRanking []RankEntryResponse     `json:"product_ranking"`
	ChannelRanking []RankEntryResponse     `json:"channel_ranking"`
	CohortTable    []CohortRowResponse     `json:"cohort_table"`
	PulseScores    []PulseScoreResponse    `json:"pulse_scores"`
}

type RFMResponse struct {
	ClientName string             `json:"client_name"`
	AsOf       string             `json:"as_of"`
	Points     []RFMPointResponse `json:"points"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"client_name is required"`
}
