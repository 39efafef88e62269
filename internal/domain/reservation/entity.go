package reservation

import (
	"strings"
	"time"

	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingIDs        = errs.New("missing required booking information")
	ErrInvalidDates      = errs.New("invalid dates")
	ErrInvalidDateRange  = errs.New("end date must be after start date")
	ErrStartInPast       = errs.New("start date cannot be in the past")
	ErrInvalidStatus     = errs.New("invalid booking status")
	ErrIllegalTransition = errs.New("booking status change not allowed")
	ErrInvalidQuote      = errs.New("quote must be greater than zero")
	ErrNotPayable        = errs.New("booking is not awaiting payment")
)

const referenceLength = 8

// Reservation is a booking of one listing over a date range
type Reservation struct {
	id               uuid.UUID
	listingID        uuid.UUID
	tenantID         uuid.UUID
	userID           *uuid.UUID
	contact          Contact
	delivery         Delivery
	dates            DateRange
	totalPrice       money.Money
	paymentReference string
	status           Status
	createdAt        time.Time
	updatedAt        time.Time
}

// Reference is the short code shown to customers
func (r *Reservation) Reference() string {
	return ShortReference(r.id)
}

func ShortReference(id uuid.UUID) string {
	return strings.ToUpper(id.String()[:referenceLength])
}

func (r *Reservation) IsBlocking() bool {
	return r.status.IsBlocking()
}

func (r *Reservation) BookedBy(userID uuid.UUID) bool {
	return r.userID != nil && *r.userID == userID
}

// TransitionTo moves along the lifecycle, rejecting moves the state machine forbids
func (r *Reservation) TransitionTo(to Status, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !CanTransition(r.status, to) {
		return errs.Wrapf(ErrIllegalTransition, "%s -> %s", r.status, to)
	}
	r.status = to
	r.updatedAt = now
	return nil
}

// ForceStatus is the unguarded administrative override
func (r *Reservation) ForceStatus(to Status, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	r.status = to
	r.updatedAt = now
	return nil
}

// IssueQuote replaces the total with the vendor's final price. Availability is not
// re-checked: the requested booking already holds the slot.
func (r *Reservation) IssueQuote(finalPrice money.Money, now time.Time) error {
	if !finalPrice.IsPositive() {
		return ErrInvalidQuote
	}
	if err := r.TransitionTo(StatusQuoteIssued, now); err != nil {
		return err
	}
	r.totalPrice = finalPrice
	return nil
}

func (r *Reservation) EnsurePayable() error {
	if r.status != StatusQuoteIssued {
		return ErrNotPayable
	}
	return nil
}

func (r *Reservation) AttachPaymentReference(ref string, now time.Time) {
	r.paymentReference = ref
	r.updatedAt = now
}

func Reconstruct(
	id, listingID, tenantID uuid.UUID,
	userID *uuid.UUID,
	contact Contact,
	delivery Delivery,
	dates DateRange,
	totalPrice money.Money,
	paymentReference string,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:               id,
		listingID:        listingID,
		tenantID:         tenantID,
		userID:           userID,
		contact:          contact,
		delivery:         delivery,
		dates:            dates,
		totalPrice:       totalPrice,
		paymentReference: paymentReference,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ReconstructContact rebuilds stored contact data without re-validating it
func ReconstructContact(name, phone, email string) Contact {
	return Contact{
		name:  user.NewFullName(name),
		phone: user.ReconstructPhone(phone),
		email: email,
	}
}

// ReconstructDates trusts the stored range
func ReconstructDates(start, end time.Time) DateRange {
	return DateRange{start: start, end: end}
}

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) ListingID() uuid.UUID     { return r.listingID }
func (r *Reservation) TenantID() uuid.UUID      { return r.tenantID }
func (r *Reservation) UserID() *uuid.UUID       { return r.userID }
func (r *Reservation) Contact() Contact         { return r.contact }
func (r *Reservation) Delivery() Delivery       { return r.delivery }
func (r *Reservation) Dates() DateRange         { return r.dates }
func (r *Reservation) TotalPrice() money.Money  { return r.totalPrice }
func (r *Reservation) PaymentReference() string { return r.paymentReference }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time     { return r.updatedAt }
