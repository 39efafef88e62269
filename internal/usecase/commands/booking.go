package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/reservation"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/idgen"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	guestPhoneFallback = "00000000"

	hintQuotePending = "Delivery requested: the vendor will send a final quote before payment."
	hintRetryPayment = "Online payment is temporarily unavailable. Your booking is saved; the vendor will confirm it or you can pay once it is quoted."
)

var (
	ErrBookingValidation   = errs.New("booking validation failed")
	ErrListingNotFound     = errs.New("listing not found")
	ErrListingUnavailable  = errs.New("listing is not available for booking")
	ErrStaleRate           = errs.New("daily rate has changed, please refresh")
	ErrBookingConflict     = errs.New("Vehicle is no longer available for these dates")
	ErrBookingNotFound     = errs.New("booking not found")
	ErrIllegalStatusChange = errs.New("status change not allowed")
	ErrStatusNotAllowed    = errs.New("status not allowed for vendors")
	ErrInvalidQuote        = errs.New("quote must be a positive amount")
	ErrNotPayable          = errs.New("booking is not awaiting payment")
	ErrPaymentUnavailable  = errs.New("payment provider unavailable")
)

// Vendors may only move bookings into these states
var vendorStatuses = map[reservation.Status]bool{
	reservation.StatusConfirmed: true,
	reservation.StatusCancelled: true,
	reservation.StatusPaid:      true,
	reservation.StatusCompleted: true,
}

type CreateBookingInput struct {
	ListingID uuid.UUID
	TenantID  uuid.UUID
	StartDate string
	EndDate   string
	// DailyRate is the rate the customer saw, in OMR; nil skips the staleness check
	DailyRate       *float64
	ContactName     string
	ContactPhone    string
	ContactEmail    string
	Delivery        bool
	DeliveryAddress string
}

type CreateBookingResult struct {
	BookingID       uuid.UUID
	Reference       string
	Status          string
	Days            int
	TotalPrice      money.Money
	PaymentRequired bool
	Payment         *PaymentKey
	Hint            string
}

type PaymentResult struct {
	BookingID uuid.UUID
	Reference string
	Amount    money.Money
	Payment   *PaymentKey
}

type BookingStatusResult struct {
	BookingID uuid.UUID
	Status    string
}

// BookingSettings are the marketplace-wide values booking commands need
type BookingSettings struct {
	Currency      string
	NoReplyDomain string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor *auth.Actor, in CreateBookingInput) (*CreateBookingResult, error)
	SendQuote(ctx context.Context, actor *auth.Actor, bookingID uuid.UUID, finalPrice float64) (*BookingStatusResult, error)
	UpdateVendorStatus(ctx context.Context, actor *auth.Actor, bookingID uuid.UUID, status string) (*BookingStatusResult, error)
	UpdateAdminStatus(ctx context.Context, actor *auth.Actor, bookingID uuid.UUID, status string) (*BookingStatusResult, error)
	PayForBooking(ctx context.Context, actor *auth.Actor, bookingID uuid.UUID) (*PaymentResult, error)
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	factory   *reservation.Factory
	gateway   PaymentGateway
	orderRefs idgen.OrderRefGenerator
	signal    JobSignal
	clock     clock.Clock
	settings  BookingSettings
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	gateway PaymentGateway,
	orderRefs idgen.OrderRefGenerator,
	signal JobSignal,
	clk clock.Clock,
	settings BookingSettings,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:       uow,
		factory:   factory,
		gateway:   gateway,
		orderRefs: orderRefs,
		signal:    signal,
		clock:     clk,
		settings:  settings,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, actor *auth.Actor, in CreateBookingInput) (*CreateBookingResult, error) {
	draft, err := uc.factory.Validate(reservation.Request{
		ListingID:       in.ListingID,
		TenantID:        in.TenantID,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		ContactName:     in.ContactName,
		ContactPhone:    in.ContactPhone,
		ContactEmail:    in.ContactEmail,
		Delivery:        in.Delivery,
		DeliveryAddress: in.DeliveryAddress,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrBookingValidation)
	}

	var res *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookableListing(ctx, draft.ListingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrListingNotFound
			}
			return err
		}
		if snap.TenantID != draft.TenantID {
			return ErrListingNotFound
		}
		if !snap.IsAvailable || !snap.TenantActive {
			return ErrListingUnavailable
		}
		if in.DailyRate != nil && money.FromRials(*in.DailyRate) != snap.DailyRate {
			return ErrStaleRate
		}

		if err := tx.Bookings().LockListing(ctx, draft.ListingID); err != nil {
			return err
		}
		overlapping, err := tx.Bookings().CountOverlapping(ctx, draft.ListingID, draft.Dates)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrBookingConflict
		}

		res = uc.factory.Create(draft, snap.DailyRate, actor.UserIDPtr())
		if !draft.Delivery.Requested() {
			res.AttachPaymentReference(uc.orderRefs.Next(), res.CreatedAt())
		}

		if err := tx.Bookings().Create(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrBookingConflict)
			}
			return err
		}

		return enqueueEmail(ctx, tx, shared.TopicBookingConfirmation,
			bookingEmail(uc.recipient(actor, res), res, snap.Name(), ""), res.CreatedAt())
	})
	if err != nil {
		return nil, err
	}
	kick(uc.signal)

	slog.Info("booking created",
		"booking_id", res.ID(),
		"listing_id", res.ListingID(),
		"dates", res.Dates().String(),
		"total_baisa", res.TotalPrice().Baisa())

	result := &CreateBookingResult{
		BookingID:  res.ID(),
		Reference:  res.Reference(),
		Status:     res.Status().String(),
		Days:       res.Dates().Days(),
		TotalPrice: res.TotalPrice(),
	}

	if res.Delivery().Requested() {
		result.Hint = hintQuotePending
		return result, nil
	}

	key, err := uc.gateway.RequestPaymentKey(ctx, uc.paymentRequest(actor, res, res.PaymentReference()))
	if err != nil {
		slog.Error("payment key request failed",
			"booking_id", res.ID(),
			"merchant_order_id", res.PaymentReference(),
			"error", err.Error())
		result.Hint = hintRetryPayment
		return result, nil
	}

	result.PaymentRequired = true
	result.Payment = key
	return result, nil
}

func (uc *bookingUseCaseImpl) SendQuote(ctx context.Context, actor *auth.Actor, bookingID uuid.UUID, finalPrice float64) (*BookingStatusResult, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	price := money.FromRials(finalPrice)
	if !price.IsPositive() {
		return nil, ErrInvalidQuote
	}

	var res *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, err = uc.lockTenantBooking(ctx, tx, bookingID, tenantID)
		if err != nil {
			return err
		}

		if err := res.IssueQuote(price, uc.clock.Now()); err != nil {
			return mapTransitionErr(err)
		}
		if err := tx.Bookings().Update(ctx, res); err != nil {
			return err
		}

		return uc.notifyCustomer(ctx, tx, shared.TopicQuoteIssued, res)
	})
	if err != nil {
		return nil, err
	}
	kick(uc.signal)

	return &BookingStatusResult{BookingID: res.ID(), Status: res.Status().String()}, nil
}

func (uc *bookingUseCaseImpl) UpdateVendorStatus(ctx context.Context, actor *auth.Actor, bookingID uuid.UUID, status string) (*BookingStatusResult, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	to, err := reservation.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingValidation)
	}
	if !vendorStatuses[to] {
		return nil, ErrStatusNotAllowed
	}

	var res *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, err = uc.lockTenantBooking(ctx, tx, bookingID, tenantID)
		if err != nil {
			return err
		}

		if err := res.TransitionTo(to, uc.clock.Now()); err != nil {
			return mapTransitionErr(err)
		}
		if err := tx.Bookings().Update(ctx, res); err != nil {
			return err
		}

		return uc.notifyCustomer(ctx, tx, shared.TopicStatusChanged, res)
	})
	if err != nil {
		return nil, err
	}
	kick(uc.signal)

	return &BookingStatusResult{BookingID: res.ID(), Status: res.Status().String()}, nil
}

// UpdateAdminStatus bypasses the state machine. Reviving a booking into a
// blocking state can still fail on the overlap constraint.
func (uc *bookingUseCaseImpl) UpdateAdminStatus(ctx context.Context, actor *auth.Actor, bookingID uuid.UUID, status string) (*BookingStatusResult, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	to, err := reservation.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingValidation)
	}

	var res *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, err = tx.Reads().BookingForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		from := res.Status()
		if err := res.ForceStatus(to, uc.clock.Now()); err != nil {
			return errs.Mark(err, ErrBookingValidation)
		}
		if err := tx.Bookings().Update(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrBookingConflict)
			}
			return err
		}

		slog.Info("booking status overridden",
			"booking_id", res.ID(),
			"admin_id", actor.UserID,
			"from", from.String(),
			"to", to.String())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &BookingStatusResult{BookingID: res.ID(), Status: res.Status().String()}, nil
}

func (uc *bookingUseCaseImpl) PayForBooking(ctx context.Context, actor *auth.Actor, bookingID uuid.UUID) (*PaymentResult, error) {
	if !actor.IsAuthenticated() {
		return nil, errs.ErrUnauthenticated
	}

	res, err := uc.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !res.BookedBy(actor.UserID) {
		return nil, errs.ErrForbidden
	}
	if err := res.EnsurePayable(); err != nil {
		return nil, errs.Mark(err, ErrNotPayable)
	}

	ref := uc.orderRefs.Next()
	key, err := uc.gateway.RequestPaymentKey(ctx, uc.paymentRequest(actor, res, ref))
	if err != nil {
		slog.Error("payment key request failed",
			"booking_id", res.ID(),
			"merchant_order_id", ref,
			"error", err.Error())
		return nil, errs.Mark(err, ErrPaymentUnavailable)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Reads().BookingForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		locked.AttachPaymentReference(ref, uc.clock.Now())
		return tx.Bookings().Update(ctx, locked)
	})
	if err != nil {
		return nil, err
	}

	return &PaymentResult{
		BookingID: res.ID(),
		Reference: res.Reference(),
		Amount:    res.TotalPrice(),
		Payment:   key,
	}, nil
}

func (uc *bookingUseCaseImpl) lockTenantBooking(ctx context.Context, tx shared.Tx, bookingID, tenantID uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reads().BookingForUpdate(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if res.TenantID() != tenantID {
		return nil, errs.ErrForbidden
	}
	return res, nil
}

func (uc *bookingUseCaseImpl) notifyCustomer(ctx context.Context, tx shared.Tx, topic string, res *reservation.Reservation) error {
	bc, err := tx.Reads().BookingContext(ctx, res.ID())
	if err != nil {
		slog.Warn("skipping customer notification", "booking_id", res.ID(), "error", err.Error())
		return nil
	}
	return enqueueEmail(ctx, tx, topic, bookingEmail(bc.RecipientEmail(), res, bc.ListingName, bc.TenantName), uc.clock.Now())
}

func (uc *bookingUseCaseImpl) recipient(actor *auth.Actor, res *reservation.Reservation) string {
	if actor.IsAuthenticated() && actor.Email != "" {
		return actor.Email
	}
	return res.Contact().Email()
}

// paymentRequest bills the caller's email, else the contact email, else a per-booking placeholder
func (uc *bookingUseCaseImpl) paymentRequest(actor *auth.Actor, res *reservation.Reservation, merchantOrderID string) PaymentRequest {
	email := uc.recipient(actor, res)
	if email == "" {
		email = fmt.Sprintf("booking-%s@%s", res.ID(), uc.settings.NoReplyDomain)
	}
	first, last := res.Contact().Name().Split()
	phone := strings.TrimSpace(res.Contact().Phone())
	if phone == "" {
		phone = guestPhoneFallback
	}

	return PaymentRequest{
		AmountBaisa:     res.TotalPrice().Baisa(),
		Currency:        uc.settings.Currency,
		MerchantOrderID: merchantOrderID,
		Billing: BillingData{
			Email:     email,
			FirstName: first,
			LastName:  last,
			Phone:     phone,
		},
	}
}

func mapTransitionErr(err error) error {
	switch {
	case errs.Is(err, reservation.ErrIllegalTransition):
		return errs.Mark(err, ErrIllegalStatusChange)
	case errs.Is(err, reservation.ErrInvalidQuote):
		return errs.Mark(err, ErrInvalidQuote)
	default:
		return errs.Mark(err, ErrBookingValidation)
	}
}
