package api

import (
	"net/http"
	"strings"

	"rental-marketplace/internal/handler/httperr"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// CatalogHandler serves the public browsing surface: fleet search, listing
// detail, availability checks, locations and company pages.
type CatalogHandler struct {
	fleet        queries.FleetQueries
	availability queries.AvailabilityQueries
	companies    queries.CompanyQueries
}

func NewCatalogHandler(fleet queries.FleetQueries, availability queries.AvailabilityQueries, companies queries.CompanyQueries) *CatalogHandler {
	return &CatalogHandler{fleet: fleet, availability: availability, companies: companies}
}

// @Summary Search fleet
// @Description Public search over available listings of active vendors
// @Tags fleet
// @Produce json
// @Param category query string false "car, heavy or all"
// @Param location_id query string false "Location ID"
// @Param min_price query number false "Minimum daily rate (OMR)"
// @Param max_price query number false "Maximum daily rate (OMR)"
// @Param features query string false "Comma separated features"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} queries.FleetItemView
// @Failure 400 {object} httperr.Response
// @Router /api/fleet [get]
func (h *CatalogHandler) SearchFleet(c *gin.Context) {
	filter, err := parseFleetFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	items, err := h.fleet.Search(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func parseFleetFilter(c *gin.Context) (queries.FleetFilter, error) {
	filter := queries.FleetFilter{
		Category:  c.Query("category"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	if v := c.Query("location_id"); v != "" && v != "all" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errs.Mark(errs.New("invalid location_id"), queries.ErrInvalidFilter)
		}
		filter.LocationID = &id
	}

	for key, dst := range map[string]**float64{"min_price": &filter.MinPrice, "max_price": &filter.MaxPrice} {
		v := c.Query(key)
		if v == "" {
			continue
		}
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return filter, errs.Mark(errs.Newf("invalid %s", key), queries.ErrInvalidFilter)
		}
		*dst = &f
	}

	// both ?features=a,b and repeated ?features=a&features=b are accepted
	for _, raw := range c.QueryArray("features") {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				filter.Features = append(filter.Features, f)
			}
		}
	}

	return filter, nil
}

// @Summary Listing detail
// @Tags fleet
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} queries.FleetItemView
// @Failure 404 {object} httperr.Response
// @Router /api/fleet/{id} [get]
func (h *CatalogHandler) GetListing(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.fleet.GetListing(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Check availability
// @Description Reports whether the listing is free for [start_date, end_date)
// @Tags fleet
// @Produce json
// @Param id path string true "Listing ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} httperr.Response
// @Router /api/fleet/{id}/availability [get]
func (h *CatalogHandler) CheckAvailability(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.availability.CheckAvailability(c.Request.Context(), id, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List locations
// @Tags fleet
// @Produce json
// @Success 200 {array} queries.LocationView
// @Router /api/locations [get]
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	locations, err := h.fleet.ListLocations(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// @Summary List companies
// @Tags companies
// @Produce json
// @Param featured query bool false "Only featured companies"
// @Param city query string false "City filter"
// @Success 200 {array} queries.CompanyView
// @Router /api/companies [get]
func (h *CatalogHandler) ListCompanies(c *gin.Context) {
	featured := cast.ToBool(c.Query("featured"))

	companies, err := h.companies.ListCompanies(c.Request.Context(), featured, c.Query("city"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// @Summary Company page
// @Tags companies
// @Produce json
// @Param slug path string true "Company slug"
// @Success 200 {object} queries.CompanyDetailView
// @Failure 404 {object} httperr.Response
// @Router /api/companies/{slug} [get]
func (h *CatalogHandler) GetCompany(c *gin.Context) {
	detail, err := h.companies.GetCompanyBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
