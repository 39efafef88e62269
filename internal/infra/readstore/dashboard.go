package readstore

import (
	"context"

	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/reservation"
	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/dateutil"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

const auditTimeLayout = "2006-01-02 15:04"

type DashboardReadQueries interface {
	VendorBookingStats(ctx context.Context, db sqlc.DBTX, tenantID uuid.UUID) (sqlc.VendorBookingStatsRow, error)
	CountTenantListings(ctx context.Context, db sqlc.DBTX, tenantID uuid.UUID) (int64, error)
	ListTenantBookingTotals(ctx context.Context, db sqlc.DBTX, tenantID uuid.UUID) ([]int64, error)
	CountTenants(ctx context.Context, db sqlc.DBTX) (sqlc.CountTenantsRow, error)
	CountBookingsByStatus(ctx context.Context, db sqlc.DBTX, statuses []string) (int64, error)
	ListBookingFinancials(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListBookingFinancialsRow, error)
	ListPendingTenants(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListPendingTenantsRow, error)
	ListAuditBookings(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListAuditBookingsRow, error)
}

type DashboardReadStore struct {
	queries DashboardReadQueries
	db      sqlc.DBTX
}

func NewDashboardReadStore(queries DashboardReadQueries, db sqlc.DBTX) *DashboardReadStore {
	return &DashboardReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DashboardReadStore) VendorStats(ctx context.Context, tenantID uuid.UUID) (*queries.VendorStats, error) {
	row, err := r.queries.VendorBookingStats(ctx, r.db, tenantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load vendor booking stats", err)
	}
	fleet, err := r.queries.CountTenantListings(ctx, r.db, tenantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count tenant listings", err)
	}

	return &queries.VendorStats{
		PendingCount: row.PendingCount,
		ActiveCount:  row.ActiveCount,
		Revenue:      money.FromBaisa(row.RevenueBaisa),
		FleetSize:    fleet,
	}, nil
}

func (r *DashboardReadStore) TenantBookingTotals(ctx context.Context, tenantID uuid.UUID) ([]money.Money, error) {
	rows, err := r.queries.ListTenantBookingTotals(ctx, r.db, tenantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tenant booking totals", err)
	}

	result := make([]money.Money, len(rows))
	for i, baisa := range rows {
		result[i] = money.FromBaisa(baisa)
	}
	return result, nil
}

// PlatformCounts counts requested, paid and confirmed bookings as active
func (r *DashboardReadStore) PlatformCounts(ctx context.Context) (*queries.PlatformCounts, error) {
	tenants, err := r.queries.CountTenants(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count tenants", err)
	}
	active, err := r.queries.CountBookingsByStatus(ctx, r.db, []string{
		reservation.StatusRequested.String(),
		reservation.StatusPaid.String(),
		reservation.StatusConfirmed.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count active bookings", err)
	}

	return &queries.PlatformCounts{
		TotalTenants:   tenants.Total,
		PendingTenants: tenants.Pending,
		ActiveBookings: active,
	}, nil
}

// BookingFinancials returns per-booking rates and the booking totals over non-cancelled bookings
func (r *DashboardReadStore) BookingFinancials(ctx context.Context) ([]queries.BookingFinancials, []money.Money, error) {
	rows, err := r.queries.ListBookingFinancials(ctx, r.db)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to list booking financials", err)
	}

	financials := make([]queries.BookingFinancials, len(rows))
	totals := make([]money.Money, len(rows))
	for i, row := range rows {
		days := int(row.Days)
		if days < 1 {
			days = 1
		}
		financials[i] = queries.BookingFinancials{
			DailyRate: money.FromBaisa(row.DailyRateBaisa),
			BaseRate:  money.FromBaisa(row.BaseRateBaisa),
			Days:      days,
		}
		totals[i] = money.FromBaisa(row.TotalPriceBaisa)
	}
	return financials, totals, nil
}

func (r *DashboardReadStore) PendingTenants(ctx context.Context) ([]queries.PendingTenantView, error) {
	rows, err := r.queries.ListPendingTenants(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending tenants", err)
	}

	result := make([]queries.PendingTenantView, len(rows))
	for i, row := range rows {
		result[i] = queries.PendingTenantView{
			ID:        row.ID,
			Name:      row.Name,
			Slug:      row.Slug,
			Phone:     row.Phone,
			CRNumber:  row.CrNumber,
			Address:   row.Address,
			Email:     row.Email,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *DashboardReadStore) AuditEntries(ctx context.Context, limit int32) ([]queries.AuditEntryView, error) {
	rows, err := r.queries.ListAuditBookings(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit bookings", err)
	}

	result := make([]queries.AuditEntryView, len(rows))
	for i, row := range rows {
		result[i] = queries.AuditEntryView{
			ID:            row.ID,
			Reference:     reservation.ShortReference(row.ID),
			CustomerName:  row.CustomerName,
			CustomerPhone: row.CustomerPhone,
			ListingName:   row.Make + " " + row.Model,
			TenantName:    row.TenantName,
			StartDate:     dateutil.Format(pgconv.DateFromPgtype(row.StartDate)),
			EndDate:       dateutil.Format(pgconv.DateFromPgtype(row.EndDate)),
			TotalPrice:    money.FromBaisa(row.TotalPriceBaisa).Rials(),
			Status:        row.Status,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt).UTC().Format(auditTimeLayout),
		}
	}
	return result, nil
}
