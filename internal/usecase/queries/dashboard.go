package queries

import (
	"context"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/pkg/errs"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

const DefaultAuditLimit = 200

var ErrExportFailed = errs.New("audit export failed")

type DashboardQueries interface {
	VendorDashboard(ctx context.Context, actor *auth.Actor) (*VendorDashboardView, error)
	AdminDashboard(ctx context.Context, actor *auth.Actor) (*AdminDashboardView, error)
	AuditLog(ctx context.Context, actor *auth.Actor, limit int) ([]AuditEntryView, error)
	AuditCSV(ctx context.Context, actor *auth.Actor, limit int) ([]byte, error)
}

// BookingFinancials is one non-cancelled booking priced at today's listing rates
type BookingFinancials struct {
	DailyRate money.Money
	BaseRate  money.Money
	Days      int
}

type VendorStats struct {
	PendingCount int64
	ActiveCount  int64
	Revenue      money.Money
	FleetSize    int64
}

type PlatformCounts struct {
	TotalTenants   int64
	PendingTenants int64
	ActiveBookings int64
}

type DashboardReadStore interface {
	VendorStats(ctx context.Context, tenantID uuid.UUID) (*VendorStats, error)
	TenantBookingTotals(ctx context.Context, tenantID uuid.UUID) ([]money.Money, error)
	PlatformCounts(ctx context.Context) (*PlatformCounts, error)
	BookingFinancials(ctx context.Context) ([]BookingFinancials, []money.Money, error)
	PendingTenants(ctx context.Context) ([]PendingTenantView, error)
	AuditEntries(ctx context.Context, limit int32) ([]AuditEntryView, error)
}

type dashboardQueriesImpl struct {
	readStore DashboardReadStore
}

func NewDashboardQueries(readStore DashboardReadStore) DashboardQueries {
	return &dashboardQueriesImpl{readStore: readStore}
}

func (q *dashboardQueriesImpl) VendorDashboard(ctx context.Context, actor *auth.Actor) (*VendorDashboardView, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}

	var (
		s      *VendorStats
		totals []money.Money
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s, err = q.readStore.VendorStats(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		totals, err = q.readStore.TenantBookingTotals(gctx, tenantID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &VendorDashboardView{
		PendingCount:        s.PendingCount,
		ActiveCount:         s.ActiveCount,
		Revenue:             s.Revenue.Rials(),
		RevenueBaisa:        s.Revenue.Baisa(),
		FleetSize:           s.FleetSize,
		AverageBookingValue: meanRials(totals),
	}, nil
}

// AdminDashboard prices revenue and profit per booking as rate × days over non-cancelled bookings
func (q *dashboardQueriesImpl) AdminDashboard(ctx context.Context, actor *auth.Actor) (*AdminDashboardView, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}

	// independent reads; the pool hands each its own connection
	var (
		counts     *PlatformCounts
		financials []BookingFinancials
		totals     []money.Money
		pending    []PendingTenantView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = q.readStore.PlatformCounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		financials, totals, err = q.readStore.BookingFinancials(gctx)
		return err
	})
	g.Go(func() (err error) {
		pending, err = q.readStore.PendingTenants(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	revenue, profit := money.Zero, money.Zero
	for _, f := range financials {
		revenue = revenue.Add(f.DailyRate.Times(f.Days))
		profit = profit.Add(f.DailyRate.Sub(f.BaseRate).Times(f.Days))
	}

	return &AdminDashboardView{
		TotalTenants:        counts.TotalTenants,
		PendingTenants:      counts.PendingTenants,
		ActiveBookings:      counts.ActiveBookings,
		Revenue:             revenue.Rials(),
		Profit:              profit.Rials(),
		MedianBookingValue:  medianRials(totals),
		PendingApplications: pending,
	}, nil
}

func (q *dashboardQueriesImpl) AuditLog(ctx context.Context, actor *auth.Actor, limit int) ([]AuditEntryView, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > DefaultAuditLimit {
		limit = DefaultAuditLimit
	}
	return q.readStore.AuditEntries(ctx, int32(limit)) // #nosec G115 -- bounded above
}

func (q *dashboardQueriesImpl) AuditCSV(ctx context.Context, actor *auth.Actor, limit int) ([]byte, error) {
	entries, err := q.AuditLog(ctx, actor, limit)
	if err != nil {
		return nil, err
	}
	out, err := gocsv.MarshalBytes(&entries)
	if err != nil {
		return nil, errs.Mark(err, ErrExportFailed)
	}
	return out, nil
}

func rials(values []money.Money) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.Rials()
	}
	return out
}

// stats returns an error on empty input; an empty dashboard shows zero
func meanRials(values []money.Money) float64 {
	m, err := stats.Mean(rials(values))
	if err != nil {
		return 0
	}
	return m
}

func medianRials(values []money.Money) float64 {
	m, err := stats.Median(rials(values))
	if err != nil {
		return 0
	}
	return m
}
