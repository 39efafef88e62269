package api

import (
	"context"
	"net/http"

	"rental-marketplace/internal/domain/auth"
	reqdto "rental-marketplace/internal/handler/dto/request"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/handler/httperr"
	"rental-marketplace/internal/handler/middleware"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Books a listing for [start_date, end_date). Guests may book without an account.
// @Description Bookings with delivery wait for a vendor quote; the rest get a payment key right away.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), middleware.GetActor(c), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	resp, err := resdto.FromCreateBookingResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary My bookings
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.BookingListItem
// @Failure 401 {object} httperr.Response
// @Router /api/bookings/mine [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	items, err := h.q.ListUserBookings(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Pay for booking
// @Description Issues a payment key for an awaiting-payment booking the caller made
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.PayBookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings/{id}/pay [post]
func (h *BookingHandler) Pay(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.cmds.PayForBooking(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	resp, err := resdto.FromPaymentResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Vendor bookings
// @Tags vendor
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.BookingListItem
// @Failure 403 {object} httperr.Response
// @Router /api/vendor/bookings [get]
func (h *BookingHandler) ListVendor(c *gin.Context) {
	items, err := h.q.ListVendorBookings(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Update booking status (vendor)
// @Tags vendor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.StatusUpdateRequest true "New status"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/vendor/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateVendorStatus(c *gin.Context) {
	h.updateStatus(c, h.cmds.UpdateVendorStatus)
}

// @Summary Override booking status (admin)
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.StatusUpdateRequest true "New status"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateAdminStatus(c *gin.Context) {
	h.updateStatus(c, h.cmds.UpdateAdminStatus)
}

type statusUpdate func(ctx context.Context, actor *auth.Actor, bookingID uuid.UUID, status string) (*commands.BookingStatusResult, error)

func (h *BookingHandler) updateStatus(c *gin.Context, update statusUpdate) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := update(c.Request.Context(), middleware.GetActor(c), id, req.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingStatusResult(result))
}

// @Summary Send final quote
// @Description Sets the final price of a delivery booking and moves it to awaiting payment
// @Tags vendor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.QuoteRequest true "Final price in OMR"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/vendor/bookings/{id}/quote [post]
func (h *BookingHandler) SendQuote(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.SendQuote(c.Request.Context(), middleware.GetActor(c), id, req.FinalPrice)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingStatusResult(result))
}
