package api

import (
	"fmt"
	"net/http"
	"time"

	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/handler/httperr"
	"rental-marketplace/internal/handler/middleware"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

type AdminHandler struct {
	tenants   commands.TenantCommands
	dashboard queries.DashboardQueries
}

func NewAdminHandler(tenants commands.TenantCommands, dashboard queries.DashboardQueries) *AdminHandler {
	return &AdminHandler{tenants: tenants, dashboard: dashboard}
}

// @Summary Platform dashboard
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AdminDashboardView
// @Failure 403 {object} httperr.Response
// @Router /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	view, err := h.dashboard.AdminDashboard(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Approve vendor
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} resdto.TenantResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/tenants/{id}/approve [post]
func (h *AdminHandler) ApproveTenant(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.tenants.ApproveVendor(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTenantResult(result))
}

// @Summary Booking audit log
// @Description Newest bookings across all vendors; format=csv downloads the same rows
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Produce text/csv
// @Param limit query int false "Max rows (default 200)"
// @Param format query string false "json or csv"
// @Success 200 {array} queries.AuditEntryView
// @Failure 403 {object} httperr.Response
// @Router /api/admin/audit [get]
func (h *AdminHandler) Audit(c *gin.Context) {
	limit := queries.DefaultAuditLimit
	if v := c.Query("limit"); v != "" {
		limit = cast.ToInt(v)
	}
	actor := middleware.GetActor(c)

	if c.Query("format") == "csv" {
		data, err := h.dashboard.AuditCSV(c.Request.Context(), actor, limit)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		filename := fmt.Sprintf("bookings-audit-%s.csv", time.Now().Format("20060102"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
		return
	}

	entries, err := h.dashboard.AuditLog(c.Request.Context(), actor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
