//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/reservation"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/handler/api"
	reqdto "rental-marketplace/internal/handler/dto/request"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/handler/middleware"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/tests/common/builder"
	"rental-marketplace/tests/common/httptest"
	"rental-marketplace/tests/common/testutil"
	commandsmock "rental-marketplace/tests/mock/commands"
	queriesmock "rental-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for RequireAuth/OptionalAuth: any bearer token authenticates as actor
func fakeAuth(actor *auth.Actor, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Access token required"}})
				return
			}
			c.Next()
			return
		}
		middleware.SetActor(c, actor)
		c.Next()
	}
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	customer     *auth.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	handler := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.customer = &auth.Actor{UserID: uuid.New(), Role: user.RoleCustomer}

	s.router.POST("/bookings", fakeAuth(s.customer, false), handler.CreateBooking)
	s.router.GET("/bookings/mine", fakeAuth(s.customer, true), handler.ListMine)
	s.router.POST("/bookings/:id/pay", fakeAuth(s.customer, true), handler.Pay)
	s.router.PATCH("/vendor/bookings/:id/status", fakeAuth(s.customer, true), handler.UpdateVendorStatus)
	s.router.POST("/vendor/bookings/:id/quote", fakeAuth(s.customer, true), handler.SendQuote)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	created := &commands.CreateBookingResult{
		BookingID:       uuid.New(),
		Reference:       "BK-7A1C",
		Status:          string(reservation.StatusQuoteIssued),
		Days:            3,
		TotalPrice:      money.FromRials(75),
		PaymentRequired: true,
		Payment:         &commands.PaymentKey{Token: "pay-token", IframeURL: "https://accept.example/iframe?payment_token=pay-token", OrderID: "991"},
	}

	s.Run("success: guest booking returns 201 with a payment key", func() {
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), reqBody.ToInput()).
			DoAndReturn(func(_ any, actor *auth.Actor, _ commands.CreateBookingInput) (*commands.CreateBookingResult, error) {
				s.False(actor.IsAuthenticated())
				return created, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.BookingID, response.BookingID)
		s.InDelta(75.0, response.TotalPrice, 0.0001)
		s.Require().NotNil(response.Payment)
		s.Equal("pay-token", response.Payment.Token)
	})

	s.Run("success: signed-in customer is passed as the actor", func() {
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), s.customer, gomock.Any()).
			Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("success: delivery booking carries the hint and no payment", func() {
		pending := &commands.CreateBookingResult{
			BookingID:  uuid.New(),
			Status:     string(reservation.StatusRequested),
			Days:       3,
			TotalPrice: money.FromRials(75),
			Hint:       "Delivery requested: the vendor will send a final quote before payment.",
		}
		body := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Delivery = true
			b.DeliveryAddress = "Al Khuwair, Muscat"
		}).BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), body.ToInput()).Return(pending, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.False(response.PaymentRequired)
		s.Nil(response.Payment)
		s.Contains(response.Hint, "final quote")
	})

	s.Run("success: missing customer_name reaches the command empty", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("customer_name", nil))
		expected := reqBody.ToInput()
		expected.ContactName = ""

		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), expected).Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.BookingID, response.BookingID)
	})

	s.Run("error: missing fields surface the booking factory message", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
			check  func(in commands.CreateBookingInput) bool
			cause  error
			msg    string
		}{
			{
				name:   "missing listing_id",
				mutate: testutil.Field("listing_id", nil),
				check:  func(in commands.CreateBookingInput) bool { return in.ListingID == uuid.Nil },
				cause:  reservation.ErrMissingIDs,
				msg:    "missing required booking information",
			},
			{
				name:   "missing customer_phone",
				mutate: testutil.Field("customer_phone", nil),
				check:  func(in commands.CreateBookingInput) bool { return in.ContactPhone == "" },
				cause:  user.ErrInvalidPhone,
				msg:    "phone number must be at least 8 characters long",
			},
			{
				name:   "missing start_date",
				mutate: testutil.Field("start_date", nil),
				check:  func(in commands.CreateBookingInput) bool { return in.StartDate == "" },
				cause:  reservation.ErrInvalidDates,
				msg:    reservation.ErrInvalidDates.Error(),
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				s.mockCommands.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, _ *auth.Actor, in commands.CreateBookingInput) (*commands.CreateBookingResult, error) {
						s.True(tc.check(in))
						return nil, errs.Mark(tc.cause, commands.ErrBookingValidation)
					})

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: 400 Bad Request on malformed input", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"malformed listing_id", testutil.Field("listing_id", "not-a-uuid")},
			{"oversized customer_phone", testutil.Field("customer_phone", strings.Repeat("9", 33))},
			{"invalid customer_email", testutil.Field("customer_email", "not-an-email")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"date conflict", errs.Mark(errors.New("exclusion violation"), commands.ErrBookingConflict), http.StatusConflict, "Vehicle is no longer available for these dates"},
			{"stale rate", commands.ErrStaleRate, http.StatusConflict, "Daily rate has changed"},
			{"listing hidden", commands.ErrListingUnavailable, http.StatusConflict, "not available"},
			{"listing missing", commands.ErrListingNotFound, http.StatusNotFound, "Listing not found"},
			{"invalid range", errs.Mark(reservation.ErrInvalidDateRange, commands.ErrBookingValidation), http.StatusBadRequest, "end date must be after start date"},
			{"start in past", errs.Mark(reservation.ErrStartInPast, commands.ErrBookingValidation), http.StatusBadRequest, "start date cannot be in the past"},
			{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("success: returns the caller's bookings", func() {
		items := []queries.BookingListItem{{ID: uuid.New(), Reference: "BK-1", Status: "paid"}}
		s.mockQueries.EXPECT().ListUserBookings(gomock.Any(), s.customer).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/mine", nil, "token")

		var response []queries.BookingListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/mine", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

func (s *BookingHandlerTestSuite) TestPay() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/pay"

	s.Run("success: returns payment key", func() {
		s.mockCommands.EXPECT().PayForBooking(gomock.Any(), s.customer, bookingID).Return(&commands.PaymentResult{
			BookingID: bookingID,
			Reference: "BK-1",
			Amount:    money.FromRials(120),
			Payment:   &commands.PaymentKey{Token: "t", IframeURL: "u", OrderID: "o"},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response resdto.PayBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.InDelta(120.0, response.Amount, 0.0001)
		s.Equal("u", response.Payment.IframeURL)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/pay", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{"not payable", errs.Mark(reservation.ErrNotPayable, commands.ErrNotPayable), http.StatusConflict},
			{"not found", commands.ErrBookingNotFound, http.StatusNotFound},
			{"gateway down", errs.Mark(errors.New("timeout"), commands.ErrPaymentUnavailable), http.StatusBadGateway},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().PayForBooking(gomock.Any(), gomock.Any(), bookingID).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestVendorStatusAndQuote() {
	bookingID := uuid.New()

	s.Run("success: status update returns new status", func() {
		s.mockCommands.EXPECT().UpdateVendorStatus(gomock.Any(), gomock.Any(), bookingID, "confirmed").
			Return(&commands.BookingStatusResult{BookingID: bookingID, Status: "confirmed"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/vendor/bookings/"+bookingID.String()+"/status",
			reqdto.StatusUpdateRequest{Status: "confirmed"}, "token")

		var response resdto.BookingStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 403 when caller manages no company", func() {
		s.mockCommands.EXPECT().UpdateVendorStatus(gomock.Any(), gomock.Any(), bookingID, "paid").Return(nil, errs.ErrNoTenant)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/vendor/bookings/"+bookingID.String()+"/status",
			reqdto.StatusUpdateRequest{Status: "paid"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "No vendor account")
	})

	s.Run("error: 409 on illegal transition", func() {
		s.mockCommands.EXPECT().UpdateVendorStatus(gomock.Any(), gomock.Any(), bookingID, "confirmed").
			Return(nil, errs.Mark(reservation.ErrIllegalTransition, commands.ErrIllegalStatusChange))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/vendor/bookings/"+bookingID.String()+"/status",
			reqdto.StatusUpdateRequest{Status: "confirmed"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not allowed")
	})

	s.Run("success: quote is forwarded in OMR", func() {
		s.mockCommands.EXPECT().SendQuote(gomock.Any(), gomock.Any(), bookingID, 140.5).
			Return(&commands.BookingStatusResult{BookingID: bookingID, Status: "quote_issued"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/bookings/"+bookingID.String()+"/quote",
			reqdto.QuoteRequest{FinalPrice: 140.5}, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on non-positive quote", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/bookings/"+bookingID.String()+"/quote",
			map[string]any{"final_price": 0}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
