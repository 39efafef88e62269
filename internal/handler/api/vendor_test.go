//go:build unit

package api_test

import (
	"context"
	"io"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/handler/api"
	reqdto "rental-marketplace/internal/handler/dto/request"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/tests/common/httptest"
	"rental-marketplace/tests/common/testutil"
	commandsmock "rental-marketplace/tests/mock/commands"
	queriesmock "rental-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VendorHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockTenants   *commandsmock.MockTenantCommands
	mockListings  *commandsmock.MockListingCommands
	mockFleet     *queriesmock.MockFleetQueries
	mockDashboard *queriesmock.MockDashboardQueries
	owner         *auth.Actor
}

func (s *VendorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockTenants = commandsmock.NewMockTenantCommands(s.mockCtrl)
	s.mockListings = commandsmock.NewMockListingCommands(s.mockCtrl)
	s.mockFleet = queriesmock.NewMockFleetQueries(s.mockCtrl)
	s.mockDashboard = queriesmock.NewMockDashboardQueries(s.mockCtrl)
	handler := api.NewVendorHandler(s.mockTenants, s.mockListings, s.mockFleet, s.mockDashboard)

	tenantID := uuid.New()
	s.owner = &auth.Actor{UserID: uuid.New(), Role: user.RoleOwner, TenantID: &tenantID}

	vendor := s.router.Group("/vendor", fakeAuth(s.owner, true))
	vendor.POST("/apply", handler.Apply)
	vendor.PATCH("/settings", handler.UpdateSettings)
	vendor.GET("/dashboard", handler.Dashboard)
	vendor.GET("/listings", handler.ListFleet)
	vendor.POST("/listings", handler.CreateListing)
	vendor.PATCH("/listings/:id", handler.UpdateListing)
	vendor.DELETE("/listings/:id", handler.DeleteListing)
	vendor.POST("/listings/:id/toggle-availability", handler.ToggleAvailability)
	vendor.POST("/listings/:id/images", handler.UploadImage)
}

func (s *VendorHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVendorHandlerSuite(t *testing.T) {
	suite.Run(t, new(VendorHandlerTestSuite))
}

func (s *VendorHandlerTestSuite) TestApply() {
	reqBody := reqdto.VendorApplicationRequest{
		Name:     "Muscat Heavy Movers",
		Phone:    "+96824000000",
		CRNumber: "1234567",
		Address:  "Rusayl Industrial Area",
		Email:    "ops@mhm.om",
	}

	s.Run("success: returns 201 with pending tenant", func() {
		s.mockTenants.EXPECT().ApplyVendor(gomock.Any(), s.owner, reqBody.ToInput()).
			Return(&commands.TenantResult{ID: uuid.New(), Name: reqBody.Name, Slug: "muscat-heavy-movers", Status: "pending"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/apply", reqBody, "token")

		var response resdto.TenantResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("muscat-heavy-movers", response.Slug)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 when cr_number is missing", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("cr_number", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/apply", body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 when name is taken", func() {
		s.mockTenants.EXPECT().ApplyVendor(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrTenantTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/apply", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Company name or slug already taken")
	})
}

func (s *VendorHandlerTestSuite) TestCreateListing() {
	reqBody := reqdto.CreateListingRequest{
		Category:    "car",
		Make:        "Toyota",
		Model:       "Land Cruiser",
		Year:        2022,
		VendorPrice: 30,
		Features:    []string{"GPS"},
		Specs:       map[string]any{"transmission": "automatic", "seats": "7"},
	}

	s.Run("success: rates are returned in OMR", func() {
		s.mockListings.EXPECT().CreateListing(gomock.Any(), s.owner, reqBody.ToInput()).
			Return(&commands.ListingResult{
				ID:          uuid.New(),
				DailyRate:   money.FromRials(33),
				BaseRate:    money.FromRials(30),
				IsAvailable: true,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/listings", reqBody, "token")

		var response resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.InDelta(33.0, response.DailyRate, 0.0001)
		s.InDelta(30.0, response.BaseRate, 0.0001)
		s.NotNil(response.Images)
	})

	s.Run("error: 400 on binding errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"unknown category", testutil.Field("category", "boat")},
			{"zero price", testutil.Field("vendor_price", 0)},
			{"missing make", testutil.Field("make", nil)},
			{"year out of range", testutil.Field("year", 1900)},
			{"specs is not an object", testutil.Field("specs", "automatic")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/listings", body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 exposes the specs validation message", func() {
		s.mockListings.EXPECT().CreateListing(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("transmission is required for cars"), commands.ErrListingValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/listings", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "transmission is required")
	})

	s.Run("success: nested specs values reach the command", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("specs.seats", "5"), testutil.Field("specs.transmission", nil))
		s.mockListings.EXPECT().CreateListing(gomock.Any(), s.owner, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *auth.Actor, in commands.ListingInput) (*commands.ListingResult, error) {
				s.Equal(map[string]any{"seats": "5"}, in.Specs)
				return &commands.ListingResult{ID: uuid.New(), DailyRate: money.FromRials(33)}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/listings", body, "token")
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("error: 403 for callers without a company", func() {
		s.mockListings.EXPECT().CreateListing(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.ErrNoTenant)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/listings", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *VendorHandlerTestSuite) TestListingLifecycle() {
	id := uuid.New()

	s.Run("success: partial update only sends given fields", func() {
		price := 45.0
		s.mockListings.EXPECT().UpdateListing(gomock.Any(), gomock.Any(), id, commands.ListingChanges{VendorPrice: &price}).
			Return(&commands.ListingResult{ID: id, DailyRate: money.FromRials(49.5), BaseRate: money.FromRials(45)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/vendor/listings/"+id.String(), map[string]any{"vendor_price": 45}, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: toggle returns new availability", func() {
		s.mockListings.EXPECT().ToggleAvailability(gomock.Any(), gomock.Any(), id).
			Return(&commands.ListingResult{ID: id, IsAvailable: false}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/listings/"+id.String()+"/toggle-availability", nil, "token")

		var response resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsAvailable)
	})

	s.Run("success: delete returns 204", func() {
		s.mockListings.EXPECT().DeleteListing(gomock.Any(), gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/vendor/listings/"+id.String(), nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for another vendor's listing", func() {
		s.mockListings.EXPECT().DeleteListing(gomock.Any(), gomock.Any(), id).Return(commands.ErrListingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/vendor/listings/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Listing not found")
	})
}

func (s *VendorHandlerTestSuite) upload(path, field, filename, contentType string, content []byte) *nethttptest.ResponseRecorder {
	return httptest.PerformUpload(s.T(), s.router, path, field, filename, contentType, content, "token")
}

func (s *VendorHandlerTestSuite) TestUploadImage() {
	id := uuid.New()
	path := "/vendor/listings/" + id.String() + "/images"
	png := []byte("\x89PNG\r\n\x1a\nfake")

	s.Run("success: file metadata and body reach the command", func() {
		s.mockListings.EXPECT().UploadImage(gomock.Any(), gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ any, _ *auth.Actor, _ uuid.UUID, img commands.ImageUpload) (*commands.ListingResult, error) {
				s.Equal("front.png", img.FileName)
				s.Equal("image/png", img.ContentType)
				s.EqualValues(len(png), img.Size)
				data, err := io.ReadAll(img.Body)
				s.Require().NoError(err)
				s.Equal(png, data)
				return &commands.ListingResult{ID: id, Images: []string{"https://cdn.example/front.png"}}, nil
			})

		rec := s.upload(path, "image", "front.png", "image/png", png)

		var response resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal([]string{"https://cdn.example/front.png"}, response.Images)
	})

	s.Run("error: 400 without a file part", func() {
		rec := s.upload(path, "", "", "", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Image file is required")
	})

	s.Run("error: size and type rejections map to 413 and 415", func() {
		s.mockListings.EXPECT().UploadImage(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(nil, commands.ErrImageTooLarge)
		rec := s.upload(path, "image", "big.png", "image/png", png)
		s.Equal(http.StatusRequestEntityTooLarge, rec.Code)

		s.mockListings.EXPECT().UploadImage(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(nil, commands.ErrImageType)
		rec = s.upload(path, "image", "doc.pdf", "application/pdf", []byte("%PDF"))
		s.Equal(http.StatusUnsupportedMediaType, rec.Code)
	})
}

func (s *VendorHandlerTestSuite) TestDashboardAndFleet() {
	s.Run("success: dashboard", func() {
		s.mockDashboard.EXPECT().VendorDashboard(gomock.Any(), s.owner).
			Return(&queries.VendorDashboardView{PendingCount: 2, Revenue: 410.5}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vendor/dashboard", nil, "token")

		var response queries.VendorDashboardView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.EqualValues(2, response.PendingCount)
	})

	s.Run("success: fleet includes hidden listings", func() {
		s.mockFleet.EXPECT().ListVendorFleet(gomock.Any(), s.owner).
			Return([]queries.VendorListingView{{FleetItemView: queries.FleetItemView{IsAvailable: false}}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vendor/listings", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})
}
