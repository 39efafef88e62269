//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"rental-marketplace/internal/handler/api"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/tests/common/httptest"
	queriesmock "rental-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockFleet        *queriesmock.MockFleetQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockCompanies    *queriesmock.MockCompanyQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockFleet = queriesmock.NewMockFleetQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockCompanies = queriesmock.NewMockCompanyQueries(s.mockCtrl)
	handler := api.NewCatalogHandler(s.mockFleet, s.mockAvailability, s.mockCompanies)

	s.router.GET("/fleet", handler.SearchFleet)
	s.router.GET("/fleet/:id", handler.GetListing)
	s.router.GET("/fleet/:id/availability", handler.CheckAvailability)
	s.router.GET("/companies", handler.ListCompanies)
	s.router.GET("/companies/:slug", handler.GetCompany)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestSearchFleet() {
	s.Run("success: query string is parsed into the filter", func() {
		locationID := uuid.New()
		minPrice, maxPrice := 10.5, 40.0
		want := queries.FleetFilter{
			Category:   "car",
			LocationID: &locationID,
			MinPrice:   &minPrice,
			MaxPrice:   &maxPrice,
			Features:   []string{"GPS", "Bluetooth", "4x4"},
			StartDate:  "2024-02-01",
			EndDate:    "2024-02-04",
		}

		s.mockFleet.EXPECT().Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, got queries.FleetFilter) ([]queries.FleetItemView, error) {
				s.Empty(cmp.Diff(want, got))
				return []queries.FleetItemView{{ID: uuid.New(), Make: "Toyota"}}, nil
			})

		url := "/fleet?category=car&location_id=" + locationID.String() +
			"&min_price=10.5&max_price=40&features=GPS,Bluetooth&features=4x4" +
			"&start_date=2024-02-01&end_date=2024-02-04"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []queries.FleetItemView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: location all does not filter", func() {
		s.mockFleet.EXPECT().Search(gomock.Any(), queries.FleetFilter{}).Return([]queries.FleetItemView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fleet?location_id=all", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed numbers and ids", func() {
		for _, url := range []string{"/fleet?min_price=cheap", "/fleet?location_id=muscat"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid")
		}
	})

	s.Run("error: 400 when the query layer rejects the filter", func() {
		s.mockFleet.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, errs.Mark(errs.New("invalid listing category"), queries.ErrInvalidFilter))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fleet?category=boat", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid listing category")
	})
}

func (s *CatalogHandlerTestSuite) TestGetListing() {
	id := uuid.New()

	s.Run("success: returns listing", func() {
		s.mockFleet.EXPECT().GetListing(gomock.Any(), id).Return(&queries.FleetItemView{ID: id, Make: "Nissan"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fleet/"+id.String(), nil, "")

		var response queries.FleetItemView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Nissan", response.Make)
	})

	s.Run("error: 404 when hidden or missing", func() {
		s.mockFleet.EXPECT().GetListing(gomock.Any(), id).Return(nil, queries.ErrListingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fleet/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Listing not found")
	})
}

func (s *CatalogHandlerTestSuite) TestCheckAvailability() {
	id := uuid.New()
	url := "/fleet/" + id.String() + "/availability?start_date=2024-03-01&end_date=2024-03-05"

	s.Run("success: dates are forwarded verbatim", func() {
		s.mockAvailability.EXPECT().CheckAvailability(gomock.Any(), id, "2024-03-01", "2024-03-05").
			Return(&queries.AvailabilityView{Available: false, Message: "Vehicle is already booked for these dates"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
	})

	s.Run("error: 400 on invalid dates", func() {
		s.mockAvailability.EXPECT().CheckAvailability(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("end date must be after start date"), queries.ErrInvalidDates))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "end date must be after start date")
	})
}

func (s *CatalogHandlerTestSuite) TestCompanies() {
	s.Run("success: featured flag and city are passed through", func() {
		s.mockCompanies.EXPECT().ListCompanies(gomock.Any(), true, "Sohar").Return([]queries.CompanyView{{Name: "Sohar Wheels"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/companies?featured=true&city=Sohar", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 for unknown slug", func() {
		s.mockCompanies.EXPECT().GetCompanyBySlug(gomock.Any(), "nope").Return(nil, queries.ErrCompanyNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/companies/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Company not found")
	})
}
