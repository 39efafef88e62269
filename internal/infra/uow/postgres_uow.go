package uow

import (
	"context"
	"errors"
	"log/slog"

	"rental-marketplace/internal/domain/listing"
	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/reservation"
	"rental-marketplace/internal/domain/tenant"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/infra/readstore"
	"rental-marketplace/internal/infra/repository"
	"rental-marketplace/internal/infra/repository/converter"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q, retry: defaultRetry}
}

// Within runs fn in a read-committed transaction, replaying it on
// serialization failures and deadlocks.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.retry.run(ctx, func() error {
		return u.once(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(ptx pgx.Tx) error {
			return fn(ctx, &pgTx{dbtx: ptx, uow: u})
		})
	})
}

// WithinReadOnly gives fn one consistent snapshot across several queries
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.once(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, func(ptx pgx.Tx) error {
		return fn(ctx, ptx)
	})
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// once runs a single transaction attempt. The rollback after a successful
// commit is a no-op returning ErrTxClosed.
func (u *PostgresUoW) once(ctx context.Context, opts pgx.TxOptions, fn func(pgx.Tx) error) error {
	ptx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := ptx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ptx); err != nil {
		return err
	}
	if err := ptx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	bookingRepo      shared.BookingRepository
	listingRepo      shared.ListingRepository
	tenantRepo       shared.TenantRepository
	userRepo         shared.UserRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Listings() shared.ListingRepository {
	if t.listingRepo == nil {
		t.listingRepo = repository.NewListingRepository(t.uow.q, t.dbtx)
	}
	return t.listingRepo
}

func (t *pgTx) Tenants() shared.TenantRepository {
	if t.tenantRepo == nil {
		t.tenantRepo = repository.NewTenantRepository(t.uow.q, t.dbtx)
	}
	return t.tenantRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	userStore *readstore.UserReadStore
}

func (r *commandReads) ListingByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	row, err := r.uow.q.GetListingByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find listing", err)
	}
	return converter.ListingFromInfra(row)
}

func (r *commandReads) BookableListing(ctx context.Context, id uuid.UUID) (*shared.BookableListingSnapshot, error) {
	row, err := r.uow.q.GetBookableListing(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookable listing", err)
	}

	snapshot := &shared.BookableListingSnapshot{
		ID:           row.ID,
		TenantID:     row.TenantID,
		Make:         row.Make,
		Model:        row.Model,
		DailyRate:    money.FromBaisa(row.DailyRateBaisa),
		IsAvailable:  row.IsAvailable,
		TenantActive: row.TenantStatus == tenant.StatusActive.String(),
	}
	return snapshot, nil
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.uow.q.GetBookingByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return converter.ReservationFromInfra(row)
}

func (r *commandReads) BookingForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.uow.q.GetBookingForUpdate(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return converter.ReservationFromInfra(row)
}

func (r *commandReads) BookingContext(ctx context.Context, id uuid.UUID) (*shared.BookingContextSnapshot, error) {
	row, err := r.uow.q.GetBookingDetail(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking detail", err)
	}

	snapshot := &shared.BookingContextSnapshot{
		ID:            row.ID,
		TenantID:      row.TenantID,
		UserID:        pgconv.UUIDPtrFromPgtype(row.UserID),
		CustomerName:  row.CustomerName,
		CustomerPhone: row.CustomerPhone,
		CustomerEmail: row.CustomerEmail,
		UserEmail:     row.UserEmail,
		StartDate:     pgconv.DateFromPgtype(row.StartDate),
		EndDate:       pgconv.DateFromPgtype(row.EndDate),
		TotalPrice:    money.FromBaisa(row.TotalPriceBaisa),
		Status:        row.Status,
		ListingName:   row.Make + " " + row.Model,
		TenantName:    row.TenantName,
	}
	return snapshot, nil
}

func (r *commandReads) TenantByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	row, err := r.uow.q.GetTenantByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tenant", err)
	}
	return converter.TenantFromInfra(row), nil
}

func (r *commandReads) users() *readstore.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}
	return r.userStore
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	view, err := r.users().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.UserSnapshot{
		ID:       view.ID,
		Email:    view.Email,
		Role:     view.Role,
		TenantID: view.TenantID,
		FullName: view.FullName,
		Phone:    view.Phone,
		IsActive: view.IsActive,
	}
	return snapshot, nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, string, error) {
	view, hash, err := r.users().FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	snapshot := &shared.UserSnapshot{
		ID:       view.ID,
		Email:    view.Email,
		Role:     view.Role,
		TenantID: view.TenantID,
		FullName: view.FullName,
		Phone:    view.Phone,
		IsActive: view.IsActive,
	}
	return snapshot, hash, nil
}
