//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/reservation"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/idgen"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/shared"
	"rental-marketplace/tests/common/builder"
	commandsmock "rental-marketplace/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	gateway  *commandsmock.MockPaymentGateway
	signal   *commandsmock.MockJobSignal
	store    *memoryStore
	clock    *clock.MockClock
	listing  shared.BookableListingSnapshot
	customer *auth.Actor
	owner    *auth.Actor
	sut      commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.signal = commandsmock.NewMockJobSignal(s.mockCtrl)
	s.signal.EXPECT().Kick().AnyTimes()
	s.store = newMemoryStore()

	// 09:00 in Muscat on 2024-01-01
	s.clock = clock.NewMockClock(time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC))
	loc, err := time.LoadLocation("Asia/Muscat")
	s.Require().NoError(err)
	factory := reservation.NewFactory(s.clock, loc, reservation.NewDailyRateCalculator())

	refs, err := idgen.NewSnowflakeGenerator(1)
	s.Require().NoError(err)

	s.listing = builder.NewListingBuilder().Build()
	s.store.addBookable(s.listing)

	tenantID := s.listing.TenantID
	s.customer = &auth.Actor{UserID: uuid.New(), Role: user.RoleCustomer, Email: "customer@example.com"}
	s.owner = &auth.Actor{UserID: uuid.New(), Role: user.RoleOwner, TenantID: &tenantID, Email: "owner@example.com"}

	s.sut = commands.NewBookingCommands(s.store, factory, s.gateway, refs, s.signal, s.clock, commands.BookingSettings{
		Currency:      "OMR",
		NoReplyDomain: "noreply.example.com",
	})
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) input(start, end string) commands.CreateBookingInput {
	rate := s.listing.DailyRate.Rials()
	return commands.CreateBookingInput{
		ListingID:    s.listing.ID,
		TenantID:     s.listing.TenantID,
		StartDate:    start,
		EndDate:      end,
		DailyRate:    &rate,
		ContactName:  "Maryam Al Balushi",
		ContactPhone: "+96899001122",
	}
}

func (s *BookingCommandsTestSuite) existing(start, end string, status reservation.Status) *reservation.Reservation {
	res := builder.NewBookingBuilder().ForListing(s.listing).Dates(start, end).InStatus(status).BuildDomain()
	s.store.addBooking(res)
	return res
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("success: prices the stay, returns a payment key and queues the confirmation", func() {
		s.SetupTest()
		s.gateway.EXPECT().RequestPaymentKey(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.PaymentRequest) (*commands.PaymentKey, error) {
				s.Equal(int64(75000), req.AmountBaisa)
				s.Equal("OMR", req.Currency)
				s.Equal("customer@example.com", req.Billing.Email)
				s.Equal("Maryam", req.Billing.FirstName)
				s.Equal("Al Balushi", req.Billing.LastName)
				s.NotEmpty(req.MerchantOrderID)
				return &commands.PaymentKey{Token: "tok", IframeURL: "https://pay.example/iframe?payment_token=tok"}, nil
			})

		result, err := s.sut.CreateBooking(s.ctx, s.customer, s.input("2024-01-10", "2024-01-13"))

		s.Require().NoError(err)
		s.Equal("requested", result.Status)
		s.Equal(3, result.Days)
		s.Equal(money.FromRials(75), result.TotalPrice)
		s.True(result.PaymentRequired)
		s.Equal("tok", result.Payment.Token)

		stored, ok := s.store.booking(result.BookingID)
		s.Require().True(ok)
		s.Equal(s.customer.UserID, *stored.UserID())
		s.NotEmpty(stored.PaymentReference())
		s.Equal(1, s.store.lockCalls)

		s.Require().Len(s.store.jobs, 1)
		s.Equal(shared.TopicBookingConfirmation, s.store.jobs[0].topic)
		var n shared.EmailNotification
		s.Require().NoError(json.Unmarshal(s.store.jobs[0].payload, &n))
		s.Equal("customer@example.com", n.To)
		s.Equal("Toyota Land Cruiser", n.ListingName)
		s.Equal("75.000 OMR", n.TotalPrice)
	})

	s.Run("success: one night is billed as one day", func() {
		s.SetupTest()
		s.gateway.EXPECT().RequestPaymentKey(gomock.Any(), gomock.Any()).Return(&commands.PaymentKey{Token: "t"}, nil)

		result, err := s.sut.CreateBooking(s.ctx, s.customer, s.input("2024-01-10", "2024-01-11"))

		s.Require().NoError(err)
		s.Equal(1, result.Days)
		s.Equal(money.FromRials(25), result.TotalPrice)
	})

	s.Run("success: back-to-back booking ending on the new start date is allowed", func() {
		s.SetupTest()
		s.existing("2024-01-05", "2024-01-10", reservation.StatusConfirmed)
		s.gateway.EXPECT().RequestPaymentKey(gomock.Any(), gomock.Any()).Return(&commands.PaymentKey{Token: "t"}, nil)

		_, err := s.sut.CreateBooking(s.ctx, s.customer, s.input("2024-01-10", "2024-01-12"))

		s.NoError(err)
	})

	s.Run("success: cancelled and completed bookings do not hold the dates", func() {
		s.SetupTest()
		s.existing("2024-01-09", "2024-01-14", reservation.StatusCancelled)
		s.existing("2024-01-09", "2024-01-14", reservation.StatusCompleted)
		s.gateway.EXPECT().RequestPaymentKey(gomock.Any(), gomock.Any()).Return(&commands.PaymentKey{Token: "t"}, nil)

		_, err := s.sut.CreateBooking(s.ctx, s.customer, s.input("2024-01-10", "2024-01-12"))

		s.NoError(err)
	})

	s.Run("success: delivery requests skip payment and wait for a quote", func() {
		s.SetupTest()
		in := s.input("2024-01-10", "2024-01-12")
		in.Delivery = true
		in.DeliveryAddress = "Al Khuwair, Muscat"

		result, err := s.sut.CreateBooking(s.ctx, s.customer, in)

		s.Require().NoError(err)
		s.False(result.PaymentRequired)
		s.Nil(result.Payment)
		s.NotEmpty(result.Hint)
		stored, _ := s.store.booking(result.BookingID)
		s.Empty(stored.PaymentReference())
		s.Equal("Al Khuwair, Muscat", stored.Delivery().Address())
	})

	s.Run("success: gateway failure keeps the booking and answers with a retry hint", func() {
		s.SetupTest()
		s.gateway.EXPECT().RequestPaymentKey(gomock.Any(), gomock.Any()).Return(nil, errors.New("paymob down"))

		result, err := s.sut.CreateBooking(s.ctx, s.customer, s.input("2024-01-10", "2024-01-12"))

		s.Require().NoError(err)
		s.False(result.PaymentRequired)
		s.NotEmpty(result.Hint)
		_, ok := s.store.booking(result.BookingID)
		s.True(ok)
	})

	s.Run("success: guest without email is billed to a per-booking placeholder", func() {
		s.SetupTest()
		s.gateway.EXPECT().RequestPaymentKey(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.PaymentRequest) (*commands.PaymentKey, error) {
				s.Regexp(`^booking-[0-9a-f-]{36}@noreply\.example\.com$`, req.Billing.Email)
				return &commands.PaymentKey{Token: "t"}, nil
			})

		result, err := s.sut.CreateBooking(s.ctx, nil, s.input("2024-01-10", "2024-01-12"))

		s.Require().NoError(err)
		stored, _ := s.store.booking(result.BookingID)
		s.Nil(stored.UserID())
		s.Empty(s.store.jobs)
	})

	s.Run("error: overlapping blocking booking is a conflict", func() {
		for _, status := range reservation.BlockingStatuses() {
			s.Run(status.String(), func() {
				s.SetupTest()
				s.existing("2024-01-11", "2024-01-15", status)

				_, err := s.sut.CreateBooking(s.ctx, s.customer, s.input("2024-01-10", "2024-01-12"))

				s.True(errs.Is(err, commands.ErrBookingConflict))
				s.Equal("Vehicle is no longer available for these dates", commands.ErrBookingConflict.Error())
				s.Len(s.store.bookings, 1)
				s.Empty(s.store.jobs)
			})
		}
	})

	s.Run("error: exclusion constraint violation surfaces as a conflict", func() {
		s.SetupTest()
		s.store.createErr = infra.WrapRepoErr("failed to create booking", nil, infra.KindConflict)

		_, err := s.sut.CreateBooking(s.ctx, s.customer, s.input("2024-01-10", "2024-01-12"))

		s.True(errs.Is(err, commands.ErrBookingConflict))
		s.Empty(s.store.jobs)
	})

	s.Run("error: stale daily rate", func() {
		s.SetupTest()
		in := s.input("2024-01-10", "2024-01-12")
		stale := 20.0
		in.DailyRate = &stale

		_, err := s.sut.CreateBooking(s.ctx, s.customer, in)

		s.True(errs.Is(err, commands.ErrStaleRate))
	})

	s.Run("error: listing states that refuse bookings", func() {
		cases := []struct {
			name   string
			mutate func(*shared.BookableListingSnapshot)
			want   error
		}{
			{name: "hidden listing", mutate: func(l *shared.BookableListingSnapshot) { l.IsAvailable = false }, want: commands.ErrListingUnavailable},
			{name: "pending tenant", mutate: func(l *shared.BookableListingSnapshot) { l.TenantActive = false }, want: commands.ErrListingUnavailable},
			{name: "other tenant", mutate: func(l *shared.BookableListingSnapshot) { l.TenantID = uuid.New() }, want: commands.ErrListingNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				changed := s.listing
				tc.mutate(&changed)
				s.store.addBookable(changed)

				_, err := s.sut.CreateBooking(s.ctx, s.customer, s.input("2024-01-10", "2024-01-12"))

				s.True(errs.Is(err, tc.want))
			})
		}
	})

	s.Run("error: unknown listing", func() {
		s.SetupTest()
		in := s.input("2024-01-10", "2024-01-12")
		in.ListingID = uuid.New()

		_, err := s.sut.CreateBooking(s.ctx, s.customer, in)

		s.True(errs.Is(err, commands.ErrListingNotFound))
	})

	s.Run("error: validation failures keep the domain cause", func() {
		cases := []struct {
			name   string
			mutate func(*commands.CreateBookingInput)
			cause  error
		}{
			{name: "start in the past", mutate: func(in *commands.CreateBookingInput) { in.StartDate = "2023-12-31" }, cause: reservation.ErrStartInPast},
			{name: "end before start", mutate: func(in *commands.CreateBookingInput) { in.EndDate = "2024-01-09" }, cause: reservation.ErrInvalidDateRange},
			{name: "same start and end", mutate: func(in *commands.CreateBookingInput) { in.EndDate = in.StartDate }, cause: reservation.ErrInvalidDateRange},
			{name: "garbage date", mutate: func(in *commands.CreateBookingInput) { in.StartDate = "soon" }, cause: reservation.ErrInvalidDates},
			{name: "short phone", mutate: func(in *commands.CreateBookingInput) { in.ContactPhone = "123" }, cause: user.ErrInvalidPhone},
			{name: "missing tenant", mutate: func(in *commands.CreateBookingInput) { in.TenantID = uuid.Nil }, cause: reservation.ErrMissingIDs},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				in := s.input("2024-01-10", "2024-01-12")
				tc.mutate(&in)

				_, err := s.sut.CreateBooking(s.ctx, s.customer, in)

				s.True(errs.Is(err, commands.ErrBookingValidation))
				s.True(errs.Is(err, tc.cause))
			})
		}
	})
}

// ================================================================================
// SendQuote
// ================================================================================

func (s *BookingCommandsTestSuite) TestSendQuote() {
	s.Run("success: replaces the total and emails the customer", func() {
		s.SetupTest()
		res := s.existing("2024-01-10", "2024-01-12", reservation.StatusRequested)

		result, err := s.sut.SendQuote(s.ctx, s.owner, res.ID(), 80.5)

		s.Require().NoError(err)
		s.Equal("quote_issued", result.Status)
		stored, _ := s.store.booking(res.ID())
		s.Equal(money.FromBaisa(80500), stored.TotalPrice())
		s.Require().Len(s.store.jobs, 1)
		s.Equal(shared.TopicQuoteIssued, s.store.jobs[0].topic)
	})

	s.Run("error: non-positive quote", func() {
		s.SetupTest()
		res := s.existing("2024-01-10", "2024-01-12", reservation.StatusRequested)

		_, err := s.sut.SendQuote(s.ctx, s.owner, res.ID(), 0)

		s.True(errs.Is(err, commands.ErrInvalidQuote))
	})

	s.Run("error: booking of another tenant", func() {
		s.SetupTest()
		res := s.existing("2024-01-10", "2024-01-12", reservation.StatusRequested)
		other := uuid.New()
		intruder := &auth.Actor{UserID: uuid.New(), Role: user.RoleOwner, TenantID: &other}

		_, err := s.sut.SendQuote(s.ctx, intruder, res.ID(), 50)

		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("error: quote after confirmation", func() {
		s.SetupTest()
		res := s.existing("2024-01-10", "2024-01-12", reservation.StatusConfirmed)

		_, err := s.sut.SendQuote(s.ctx, s.owner, res.ID(), 50)

		s.True(errs.Is(err, commands.ErrIllegalStatusChange))
		stored, _ := s.store.booking(res.ID())
		s.Equal(reservation.StatusConfirmed, stored.Status())
	})

	s.Run("error: customers cannot quote", func() {
		s.SetupTest()
		res := s.existing("2024-01-10", "2024-01-12", reservation.StatusRequested)

		_, err := s.sut.SendQuote(s.ctx, s.customer, res.ID(), 50)

		s.True(errs.Is(err, errs.ErrNoTenant))
	})
}

// ================================================================================
// UpdateVendorStatus / UpdateAdminStatus
// ================================================================================

func (s *BookingCommandsTestSuite) TestUpdateVendorStatus() {
	s.Run("success: confirm a requested booking", func() {
		s.SetupTest()
		res := s.existing("2024-01-10", "2024-01-12", reservation.StatusRequested)

		result, err := s.sut.UpdateVendorStatus(s.ctx, s.owner, res.ID(), "confirmed")

		s.Require().NoError(err)
		s.Equal("confirmed", result.Status)
		s.Require().Len(s.store.jobs, 1)
		s.Equal(shared.TopicStatusChanged, s.store.jobs[0].topic)
	})

	s.Run("error: vendors cannot reopen or quote through status", func() {
		for _, status := range []string{"requested", "quote_issued"} {
			s.Run(status, func() {
				s.SetupTest()
				res := s.existing("2024-01-10", "2024-01-12", reservation.StatusConfirmed)

				_, err := s.sut.UpdateVendorStatus(s.ctx, s.owner, res.ID(), status)

				s.True(errs.Is(err, commands.ErrStatusNotAllowed))
			})
		}
	})

	s.Run("error: terminal bookings stay terminal", func() {
		s.SetupTest()
		res := s.existing("2024-01-10", "2024-01-12", reservation.StatusCancelled)

		_, err := s.sut.UpdateVendorStatus(s.ctx, s.owner, res.ID(), "confirmed")

		s.True(errs.Is(err, commands.ErrIllegalStatusChange))
	})

	s.Run("error: unknown status", func() {
		s.SetupTest()
		res := s.existing("2024-01-10", "2024-01-12", reservation.StatusRequested)

		_, err := s.sut.UpdateVendorStatus(s.ctx, s.owner, res.ID(), "archived")

		s.True(errs.Is(err, commands.ErrBookingValidation))
	})

	s.Run("error: missing booking", func() {
		s.SetupTest()

		_, err := s.sut.UpdateVendorStatus(s.ctx, s.owner, uuid.New(), "confirmed")

		s.True(errs.Is(err, commands.ErrBookingNotFound))
	})
}

func (s *BookingCommandsTestSuite) TestUpdateAdminStatus() {
	admin := &auth.Actor{UserID: uuid.New(), Role: user.RoleSuperAdmin}

	s.Run("success: admin may reopen a cancelled booking", func() {
		s.SetupTest()
		res := s.existing("2024-01-10", "2024-01-12", reservation.StatusCancelled)

		result, err := s.sut.UpdateAdminStatus(s.ctx, admin, res.ID(), "requested")

		s.Require().NoError(err)
		s.Equal("requested", result.Status)
	})

	s.Run("error: reopening into an occupied range trips the overlap rule", func() {
		s.SetupTest()
		cancelled := s.existing("2024-01-10", "2024-01-12", reservation.StatusCancelled)
		s.existing("2024-01-11", "2024-01-14", reservation.StatusPaid)

		_, err := s.sut.UpdateAdminStatus(s.ctx, admin, cancelled.ID(), "confirmed")

		s.True(errs.Is(err, commands.ErrBookingConflict))
		stored, _ := s.store.booking(cancelled.ID())
		s.Equal(reservation.StatusCancelled, stored.Status())
	})

	s.Run("error: vendors are not admins", func() {
		s.SetupTest()
		res := s.existing("2024-01-10", "2024-01-12", reservation.StatusRequested)

		_, err := s.sut.UpdateAdminStatus(s.ctx, s.owner, res.ID(), "completed")

		s.True(errs.Is(err, errs.ErrForbidden))
	})
}

// ================================================================================
// PayForBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestPayForBooking() {
	quoted := func() *reservation.Reservation {
		total := money.FromRials(90)
		res := builder.NewBookingBuilder().ForListing(s.listing).
			BookedBy(s.customer.UserID).
			InStatus(reservation.StatusQuoteIssued).
			With(func(b *builder.BookingBuilder) { b.TotalPrice = &total; b.CustomerPhone = "" }).
			BuildDomain()
		s.store.addBooking(res)
		return res
	}

	s.Run("success: pays the quoted total and stores the merchant reference", func() {
		s.SetupTest()
		res := quoted()
		s.gateway.EXPECT().RequestPaymentKey(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.PaymentRequest) (*commands.PaymentKey, error) {
				s.Equal(int64(90000), req.AmountBaisa)
				s.Equal("00000000", req.Billing.Phone)
				return &commands.PaymentKey{Token: "tok"}, nil
			})

		result, err := s.sut.PayForBooking(s.ctx, s.customer, res.ID())

		s.Require().NoError(err)
		s.Equal(money.FromRials(90), result.Amount)
		stored, _ := s.store.booking(res.ID())
		s.NotEmpty(stored.PaymentReference())
	})

	s.Run("error: someone else's booking", func() {
		s.SetupTest()
		res := quoted()
		stranger := &auth.Actor{UserID: uuid.New(), Role: user.RoleCustomer}

		_, err := s.sut.PayForBooking(s.ctx, stranger, res.ID())

		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("error: booking without a quote", func() {
		s.SetupTest()
		res := builder.NewBookingBuilder().ForListing(s.listing).BookedBy(s.customer.UserID).BuildDomain()
		s.store.addBooking(res)

		_, err := s.sut.PayForBooking(s.ctx, s.customer, res.ID())

		s.True(errs.Is(err, commands.ErrNotPayable))
	})

	s.Run("error: gateway failure", func() {
		s.SetupTest()
		res := quoted()
		s.gateway.EXPECT().RequestPaymentKey(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := s.sut.PayForBooking(s.ctx, s.customer, res.ID())

		s.True(errs.Is(err, commands.ErrPaymentUnavailable))
		stored, _ := s.store.booking(res.ID())
		s.Empty(stored.PaymentReference())
	})

	s.Run("error: guests must sign in", func() {
		s.SetupTest()
		res := quoted()

		_, err := s.sut.PayForBooking(s.ctx, nil, res.ID())

		s.True(errs.Is(err, errs.ErrUnauthenticated))
	})
}
