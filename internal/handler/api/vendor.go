package api

import (
	"net/http"

	reqdto "rental-marketplace/internal/handler/dto/request"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/handler/httperr"
	"rental-marketplace/internal/handler/middleware"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const imageFormField = "image"

type VendorHandler struct {
	tenants   commands.TenantCommands
	listings  commands.ListingCommands
	fleet     queries.FleetQueries
	dashboard queries.DashboardQueries
}

func NewVendorHandler(
	tenants commands.TenantCommands,
	listings commands.ListingCommands,
	fleet queries.FleetQueries,
	dashboard queries.DashboardQueries,
) *VendorHandler {
	return &VendorHandler{
		tenants:   tenants,
		listings:  listings,
		fleet:     fleet,
		dashboard: dashboard,
	}
}

// @Summary Apply as vendor
// @Description Registers a pending company owned by the caller
// @Tags vendor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.VendorApplicationRequest true "Company details"
// @Success 201 {object} resdto.TenantResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/vendor/apply [post]
func (h *VendorHandler) Apply(c *gin.Context) {
	var req reqdto.VendorApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.tenants.ApplyVendor(c.Request.Context(), middleware.GetActor(c), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTenantResult(result))
}

// @Summary Update company settings
// @Tags vendor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.TenantSettingsRequest true "Settings"
// @Success 200 {object} resdto.TenantResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/vendor/settings [patch]
func (h *VendorHandler) UpdateSettings(c *gin.Context) {
	var req reqdto.TenantSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.tenants.UpdateSettings(c.Request.Context(), middleware.GetActor(c), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTenantResult(result))
}

// @Summary Vendor dashboard
// @Tags vendor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.VendorDashboardView
// @Failure 403 {object} httperr.Response
// @Router /api/vendor/dashboard [get]
func (h *VendorHandler) Dashboard(c *gin.Context) {
	view, err := h.dashboard.VendorDashboard(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Vendor fleet
// @Description All listings of the caller's company, hidden ones included
// @Tags vendor
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.VendorListingView
// @Failure 403 {object} httperr.Response
// @Router /api/vendor/listings [get]
func (h *VendorHandler) ListFleet(c *gin.Context) {
	items, err := h.fleet.ListVendorFleet(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Create listing
// @Description vendor_price is the vendor's net daily rate; the public rate adds the commission
// @Tags vendor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateListingRequest true "Listing"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/vendor/listings [post]
func (h *VendorHandler) CreateListing(c *gin.Context) {
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.listings.CreateListing(c.Request.Context(), middleware.GetActor(c), req.ToInput())
	h.respondListing(c, http.StatusCreated, result, err)
}

// @Summary Update listing
// @Tags vendor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body reqdto.UpdateListingRequest true "Changes"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/vendor/listings/{id} [patch]
func (h *VendorHandler) UpdateListing(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.listings.UpdateListing(c.Request.Context(), middleware.GetActor(c), id, req.ToInput())
	h.respondListing(c, http.StatusOK, result, err)
}

// @Summary Delete listing
// @Tags vendor
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/vendor/listings/{id} [delete]
func (h *VendorHandler) DeleteListing(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.listings.DeleteListing(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Toggle listing availability
// @Tags vendor
// @Security BearerAuth
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/vendor/listings/{id}/toggle-availability [post]
func (h *VendorHandler) ToggleAvailability(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.listings.ToggleAvailability(c.Request.Context(), middleware.GetActor(c), id)
	h.respondListing(c, http.StatusOK, result, err)
}

// @Summary Upload listing image
// @Tags vendor
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Listing ID"
// @Param image formData file true "Image file"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 415 {object} httperr.Response
// @Router /api/vendor/listings/{id}/images [post]
func (h *VendorHandler) UploadImage(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	header, err := c.FormFile(imageFormField)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Image file is required", nil)
		return
	}
	file, err := header.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable image file", nil)
		return
	}
	defer file.Close()

	result, err := h.listings.UploadImage(c.Request.Context(), middleware.GetActor(c), id, commands.ImageUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	h.respondListing(c, http.StatusCreated, result, err)
}

func (h *VendorHandler) respondListing(c *gin.Context, status int, result *commands.ListingResult, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromListingResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, resp)
}
