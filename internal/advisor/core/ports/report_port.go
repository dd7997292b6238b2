package ports

import (
	"context"

	analytics "smebig-warroom/internal/analytics/core/domain"
	dashboard "smebig-warroom/internal/analytics/core/usecase"
)

// ReportPort is satisfied by the dashboard usecase.
type ReportPort interface {
	Execute(ctx context.Context, in dashboard.GetDashboardInput) (*analytics.Report, error)
}
