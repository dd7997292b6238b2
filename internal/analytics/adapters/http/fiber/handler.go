package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"smebig-warroom/internal/analytics/core/domain"
	"smebig-warroom/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type GetDashboardUseCase interface {
	Execute(ctx context.Context, in usecase.GetDashboardInput) (*domain.Report, error)
}

type DashboardHandler struct {
	uc GetDashboardUseCase
}

func NewDashboardHandler(uc GetDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard godoc
// @Summary Dashboard report
// @Description Returns the monthly series, rankings, cohort table and pulse scores of one client
// @Tags Dashboard
// @Produce json
// @Param client_name query string true "Client name"
// @Param as_of query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	report, err := h.load(c)
	if err != nil {
		return err
	}
	if report == nil {
		return nil
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(report))
}

// GetRFM godoc
// @Summary RFM scatter points
// @Description Returns recency, frequency and monetary value per customer, capped at the configured point limit
// @Tags Dashboard
// @Produce json
// @Param client_name query string true "Client name"
// @Param as_of query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} RFMResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/rfm [get]
func (h *DashboardHandler) GetRFM(c *fiber.Ctx) error {
	report, err := h.load(c)
	if err != nil {
		return err
	}
	if report == nil {
		return nil
	}

	resp := RFMResponse{
		ClientName: report.ClientName,
		AsOf:       report.AsOf.Format(dateLayout),
		Points:     make([]RFMPointResponse, 0, len(report.RFMPoints)),
	}
	for _, p := range report.RFMPoints {
		resp.Points = append(resp.Points, RFMPointResponse{
			CustomerID: p.CustomerID,
			X:          p.RecencyDays,
			Y:          p.Frequency,
			Z:          p.Monetary,
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// load parses the query and runs the use case. A nil report with a nil
// error means the error response has already been written.
func (h *DashboardHandler) load(c *fiber.Ctx) (*domain.Report, error) {
	clientName := c.Query("client_name", "")
	if clientName == "" {
		return nil, c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "client_name is required",
		})
	}

	var asOf time.Time
	if raw := c.Query("as_of", ""); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: "invalid 'as_of' parameter, expected YYYY-MM-DD",
			})
		}
		asOf = t
	}

	report, err := h.uc.Execute(c.UserContext(), usecase.GetDashboardInput{
		ClientName: clientName,
		AsOf:       asOf,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidClient),
			errors.Is(err, usecase.ErrInvalidAsOf):
			return nil, c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			log.WithError(err).WithField("client", clientName).Error("build dashboard failed")
			return nil, c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}
	return report, nil
}

func toDashboardResponse(r *domain.Report) DashboardResponse {
	resp := DashboardResponse{
		ClientName:    r.ClientName,
		EngineVersion: r.EngineVersion,
		AsOf:          r.AsOf.Format(dateLayout),
		Summary: SummaryResponse{
			TotalRevenue:      r.Summary.TotalRevenue,
			OrderCount:        r.Summary.OrderCount,
			ValidOrderCount:   r.Summary.ValidOrderCount,
			UniqueCustomers:   r.Summary.UniqueCustomers,
			RepeatCustomers:   r.Summary.RepeatCustomers,
			AverageOrderValue: r.Summary.AverageOrderValue,
			TopCustomerShare:  r.Summary.TopCustomerShare,
		},
		MonthlySeries:  make([]MonthlyBucketResponse, 0, len(r.MonthlySeries)),
		ProductRanking: toRankResponse(r.ProductRanking),
		ChannelRanking: toRankResponse(r.ChannelRanking),
		CohortTable:    make([]CohortRowResponse, 0, len(r.CohortTable)),
		PulseScores:    make([]PulseScoreResponse, 0, len(r.PulseScores)),
	}

	if !r.Summary.FirstOrderDate.IsZero() {
		resp.Summary.FirstOrderDate = r.Summary.FirstOrderDate.Format(dateLayout)
		resp.Summary.LastOrderDate = r.Summary.LastOrderDate.Format(dateLayout)
	}

	for _, b := range r.MonthlySeries {
		resp.MonthlySeries = append(resp.MonthlySeries, MonthlyBucketResponse{
			Month:              b.Month,
			TotalRevenue:       b.TotalRevenue,
			OrderCount:         b.OrderCount,
			NewCustomerRevenue: b.NewCustomerRevenue,
			OldCustomerRevenue: b.OldCustomerRevenue,
			AverageOrderValue:  b.AverageOrderValue,
		})
	}

	for _, row := range r.CohortTable {
		resp.CohortTable = append(resp.CohortTable, CohortRowResponse{
			CohortMonth:       row.CohortMonth,
			Size:              row.Size,
			RetentionByOffset: append([]int(nil), row.RetentionByOffset[:]...),
		})
	}

	for _, s := range r.PulseScores {
		resp.PulseScores = append(resp.PulseScores, PulseScoreResponse{
			Axis:  string(s.Axis),
			Score: s.Score,
			Full:  s.Full,
		})
	}

	return resp
}

func toRankResponse(entries []domain.RankEntry) []RankEntryResponse {
	out := make([]RankEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, RankEntryResponse{Name: e.Name, Revenue: e.Revenue, Count: e.Count})
	}
	return out
}
