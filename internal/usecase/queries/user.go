package queries

import (
	"context"

	"github.com/google/uuid"

	"rental-marketplace/internal/domain/tenant"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

// Vendor access states reported on the current user
const (
	VendorAccessActive  = "active"
	VendorAccessPending = "pending"
)

type UserQueries interface {
	// GetCurrentUser also reports whether an owner may use the vendor area yet
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	view.VendorAccess = vendorAccess(view)
	return view, nil
}

// An owner whose company has not been approved yet sees the pending screen
func vendorAccess(view *AuthorizedUserView) string {
	if view.Role != user.RoleOwner.String() || view.TenantID == nil {
		return ""
	}
	if view.TenantStatus != nil && *view.TenantStatus == tenant.StatusActive.String() {
		return VendorAccessActive
	}
	return VendorAccessPending
}
