package ports

import (
	"context"

	"smebig-warroom/internal/analytics/core/domain"
)

type ReportLoader func(ctx context.Context) (*domain.Report, error)

type ReportCachePort interface {
	// GetOrLoad returns the cached report for key or calls load once, even
	// when several callers miss at the same time.
	GetOrLoad(ctx context.Context, clientName, key string, load ReportLoader) (*domain.Report, error)

	// Invalidate drops every cached report of the client.
	Invalidate(clientName string)
}
