package shared

import (
	"context"
	"time"

	"rental-marketplace/internal/domain/listing"
	"rental-marketplace/internal/domain/reservation"
	"rental-marketplace/internal/domain/tenant"
	"rental-marketplace/internal/domain/user"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Listings() ListingRepository
	Tenants() TenantRepository
	Users() UserRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
	BookableListing(ctx context.Context, id uuid.UUID) (*BookableListingSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// BookingForUpdate row-locks the booking until the surrounding transaction ends
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	BookingContext(ctx context.Context, id uuid.UUID) (*BookingContextSnapshot, error)
	TenantByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, string, error)
}

type BookingRepository interface {
	// LockListing serialises booking writers of one listing for the rest of the transaction
	LockListing(ctx context.Context, listingID uuid.UUID) error
	CountOverlapping(ctx context.Context, listingID uuid.UUID, dates reservation.DateRange) (int64, error)
	Create(ctx context.Context, res *reservation.Reservation) error
	Update(ctx context.Context, res *reservation.Reservation) error
}

type ListingRepository interface {
	Create(ctx context.Context, l *listing.Listing) error
	Update(ctx context.Context, l *listing.Listing) error
	// Delete returns the image URLs the removed row carried
	Delete(ctx context.Context, id, tenantID uuid.UUID) ([]string, error)
}

type TenantRepository interface {
	Create(ctx context.Context, t *tenant.Tenant) error
	Update(ctx context.Context, t *tenant.Tenant) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	AssignTenant(ctx context.Context, userID uuid.UUID, role user.Role, tenantID uuid.UUID) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
