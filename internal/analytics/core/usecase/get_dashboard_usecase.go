package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smebig-warroom/internal/analytics/core/domain"
	"smebig-warroom/internal/analytics/core/engine"
	"smebig-warroom/internal/analytics/core/ports"
)

var (
	ErrInvalidClient = errors.New("client_name is required")
	ErrInvalidAsOf   = errors.New("as_of cannot be before 2000-01-01")
)

var earliestAsOf = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

type GetDashboardInput struct {
	ClientName string
	AsOf       time.Time // zero means today
}

type GetDashboardUseCase struct {
	reader ports.TransactionReaderPort
	cache  ports.ReportCachePort
	params engine.Params
	now    func() time.Time
}

// NewGetDashboardUseCase wires the reader and the engine. cache may be nil,
// in which case every call reads the store.
func NewGetDashboardUseCase(reader ports.TransactionReaderPort, cache ports.ReportCachePort, params engine.Params) *GetDashboardUseCase {
	if params.Location == nil {
		params.Location = time.UTC
	}
	return &GetDashboardUseCase{
		reader: reader,
		cache:  cache,
		params: params,
		now:    time.Now,
	}
}

// WithClock replaces the wall clock used when no as-of date is given.
func (uc *GetDashboardUseCase) WithClock(now func() time.Time) *GetDashboardUseCase {
	uc.now = now
	return uc
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, in GetDashboardInput) (*domain.Report, error) {
	client := strings.TrimSpace(in.ClientName)
	if client == "" {
		return nil, ErrInvalidClient
	}

	asOf := in.AsOf
	if asOf.IsZero() {
		asOf = uc.now()
	}
	if asOf.Before(earliestAsOf) {
		return nil, ErrInvalidAsOf
	}
	asOf = startOfDay(asOf, uc.params.Location)

	load := func(ctx context.Context) (*domain.Report, error) {
		txs, err := uc.reader.ListByClient(ctx, client)
		if err != nil {
			return nil, fmt.Errorf("list transactions of %q: %w", client, err)
		}
		report := engine.Aggregate(txs, asOf, uc.params)
		report.ClientName = client
		return report, nil
	}

	if uc.cache == nil {
		return load(ctx)
	}
	return uc.cache.GetOrLoad(ctx, client, cacheKey(asOf), load)
}

// Invalidate drops cached reports of a client after new data arrived.
func (uc *GetDashboardUseCase) Invalidate(clientName string) {
	if uc.cache == nil {
		return
	}
	uc.cache.Invalidate(strings.TrimSpace(clientName))
}

func cacheKey(asOf time.Time) string {
	return "v" + engine.Version + "|" + asOf.Format("2006-01-02")
}

// startOfDay keeps the civil date of t in loc. Recency is counted in whole
// days, so every instant of one day produces the same report.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
