//go:build e2e

package booking_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"rental-marketplace/internal/domain/user"
	reqdto "rental-marketplace/internal/handler/dto/request"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/internal/usecase/shared"
	"rental-marketplace/tests/common/authtest"
	"rental-marketplace/tests/common/builder"
	"rental-marketplace/tests/common/dbtest"
	"rental-marketplace/tests/common/httptest"
	"rental-marketplace/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	// 25 OMR
	dailyRateBaisa = 25000
)

type bookingSuite struct {
	e2e.SharedSuite
	tenantID  uuid.UUID
	listingID uuid.UUID
	ownerTok  string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.tenantID = dbtest.CreateTestTenant(s.T(), s.DB, "Muscat Motors", "active")
	s.listingID = dbtest.CreateTestListing(s.T(), s.DB, s.tenantID, dailyRateBaisa)
	s.ownerTok = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@muscatmotors.om", string(user.RoleOwner), &s.tenantID)
}

// day returns a calendar date n days from today in the marketplace timezone
func (s *bookingSuite) day(n int) string {
	loc, err := time.LoadLocation("Asia/Muscat")
	s.Require().NoError(err)
	return time.Now().In(loc).AddDate(0, 0, n).Format(time.DateOnly)
}

func (s *bookingSuite) request(start, end string) reqdto.CreateBookingRequest {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ListingID = s.listingID
		b.TenantID = s.tenantID
	}).Dates(start, end).BuildCreateRequestDTO()
}

func (s *bookingSuite) book(start, end string) (*resdto.CreateBookingResponse, int) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, s.request(start, end), "")
	if rec.Code != http.StatusCreated {
		return nil, rec.Code
	}
	var resp resdto.CreateBookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
	return &resp, rec.Code
}

func (s *bookingSuite) TestCreateBooking() {
	s.Run("success: guest booking is priced by days and queues a confirmation", func() {
		resp, code := s.book(s.day(10), s.day(13))
		s.Require().Equal(http.StatusCreated, code)

		s.Equal("requested", resp.Status)
		s.Equal(3, resp.Days)
		s.InDelta(75.0, resp.TotalPrice, 0.0001)
		s.NotEmpty(resp.Reference)
		// the payment provider is unreachable in tests; the booking still stands
		s.False(resp.PaymentRequired)
		s.NotEmpty(resp.Hint)

		s.Equal(1, dbtest.CountBookings(s.T(), s.DB, s.listingID))
		s.Equal(1, dbtest.CountQueuedJobs(s.T(), s.DB, shared.TopicBookingConfirmation))
	})

	s.Run("error: 409 when dates overlap a held booking", func() {
		_, code := s.book(s.day(10), s.day(13))
		s.Require().Equal(http.StatusCreated, code)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, s.request(s.day(12), s.day(15)), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer available")
		s.Equal(1, dbtest.CountBookings(s.T(), s.DB, s.listingID))
	})

	s.Run("success: back-to-back bookings share the turnover day", func() {
		_, code := s.book(s.day(10), s.day(13))
		s.Require().Equal(http.StatusCreated, code)

		_, code = s.book(s.day(13), s.day(15))
		s.Equal(http.StatusCreated, code)
	})

	s.Run("error: 400 for past dates and reversed ranges", func() {
		for _, dates := range [][2]string{
			{s.day(-2), s.day(1)},
			{s.day(5), s.day(5)},
			{s.day(6), s.day(4)},
		} {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, s.request(dates[0], dates[1]), "")
			s.Equal(http.StatusBadRequest, rec.Code, "dates %v: %s", dates, rec.Body.String())
		}
		s.Zero(dbtest.CountBookings(s.T(), s.DB, s.listingID))
	})

	s.Run("error: 409 for listings of pending companies", func() {
		pendingID := dbtest.CreateTestTenant(s.T(), s.DB, "Pending Plant Hire", "pending")
		listingID := dbtest.CreateTestListing(s.T(), s.DB, pendingID, dailyRateBaisa)

		req := s.request(s.day(3), s.day(4))
		req.ListingID, req.TenantID = listingID, pendingID
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 409 when the shown rate is stale", func() {
		req := s.request(s.day(3), s.day(4))
		stale := 19.0
		req.DailyRate = &stale
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "rate")
	})
}

func (s *bookingSuite) TestConcurrentBookings() {
	s.Run("success: exactly one of many racing requests wins the dates", func() {
		const racers = 12
		start, end := s.day(20), s.day(24)

		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			codes = map[int]int{}
		)
		for i := 0; i < racers; i++ {
			wg.Add(1)
			go func(offset int) {
				defer wg.Done()
				// staggered but overlapping ranges all contend for day 22
				req := s.request(start, end)
				if offset%2 == 1 {
					req.StartDate = s.day(22)
					req.EndDate = s.day(26)
				}
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
				mu.Lock()
				codes[rec.Code]++
				mu.Unlock()
			}(i)
		}
		wg.Wait()

		s.Equal(1, codes[http.StatusCreated], "codes: %v", codes)
		s.Equal(racers-1, codes[http.StatusConflict], "codes: %v", codes)
		s.Equal(1, dbtest.CountBookings(s.T(), s.DB, s.listingID))
	})
}

func (s *bookingSuite) TestVendorWorkflow() {
	s.Run("success: cancelling frees the dates", func() {
		resp, code := s.book(s.day(30), s.day(33))
		s.Require().Equal(http.StatusCreated, code)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/vendor/bookings/"+resp.BookingID.String()+"/status",
			reqdto.StatusUpdateRequest{Status: "cancelled"}, s.ownerTok)
		var status resdto.BookingStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &status)
		s.Equal("cancelled", status.Status)

		_, code = s.book(s.day(31), s.day(32))
		s.Equal(http.StatusCreated, code)
	})

	s.Run("success: delivery requests wait for a quote", func() {
		req := s.request(s.day(40), s.day(42))
		req.DeliveryRequested = true
		req.DeliveryAddress = "Al Mouj, Muscat"

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		var created resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.False(created.PaymentRequired)
		s.Nil(created.Payment)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/vendor/bookings/"+created.BookingID.String()+"/quote",
			reqdto.QuoteRequest{FinalPrice: 62.5}, s.ownerTok)
		var quoted resdto.BookingStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &quoted)
		s.Equal("quote_issued", quoted.Status)
		s.Equal(1, dbtest.CountQueuedJobs(s.T(), s.DB, shared.TopicQuoteIssued))
	})

	s.Run("error: other companies cannot touch the booking", func() {
		resp, code := s.book(s.day(50), s.day(51))
		s.Require().Equal(http.StatusCreated, code)

		otherTenant := dbtest.CreateTestTenant(s.T(), s.DB, "Salalah Rentals", "active")
		otherTok := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@salalah.om", string(user.RoleOwner), &otherTenant)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/vendor/bookings/"+resp.BookingID.String()+"/status",
			reqdto.StatusUpdateRequest{Status: "confirmed"}, otherTok)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("success: vendor list shows only own bookings", func() {
		_, code := s.book(s.day(60), s.day(61))
		s.Require().Equal(http.StatusCreated, code)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/vendor/bookings", nil, s.ownerTok)
		var items []queries.BookingListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &items)
		s.Len(items, 1)
	})
}

func (s *bookingSuite) TestAvailability() {
	s.Run("success: reflects held bookings", func() {
		_, code := s.book(s.day(70), s.day(73))
		s.Require().Equal(http.StatusCreated, code)

		url := "/api/fleet/" + s.listingID.String() + "/availability?start_date=" + s.day(71) + "&end_date=" + s.day(72)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, "")
		var view queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.False(view.Available)

		url = "/api/fleet/" + s.listingID.String() + "/availability?start_date=" + s.day(73) + "&end_date=" + s.day(75)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.True(view.Available)
	})
}

func (s *bookingSuite) TestSignedInCustomer() {
	s.Run("success: bookings show up under mine", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "customer@example.com", string(user.RoleCustomer), nil)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, s.request(s.day(80), s.day(82)), token)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/mine", nil, token)
		var items []queries.BookingListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &items)
		s.Len(items, 1)
		s.Equal(2, items[0].Days)
	})
}
