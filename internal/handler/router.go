package handler

import (
	"net/http"

	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/handler/api"
	"rental-marketplace/internal/handler/middleware"
	"rental-marketplace/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts
type Handlers struct {
	fx.In

	Auth    *api.AuthHandler
	Catalog *api.CatalogHandler
	Booking *api.BookingHandler
	Vendor  *api.VendorHandler
	Admin   *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.MaxMultipartMemory = cfg.Storage.MaxUploadMB << 20
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/fleet", Handler: h.Catalog.SearchFleet},
			{Method: http.MethodGet, Path: "/fleet/:id", Handler: h.Catalog.GetListing},
			{Method: http.MethodGet, Path: "/fleet/:id/availability", Handler: h.Catalog.CheckAvailability},
			{Method: http.MethodGet, Path: "/locations", Handler: h.Catalog.ListLocations},
			{Method: http.MethodGet, Path: "/companies", Handler: h.Catalog.ListCompanies},
			{Method: http.MethodGet, Path: "/companies/:slug", Handler: h.Catalog.GetCompany},
		})

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				// guests may book; a valid token links the booking to the account
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Booking.ListMine, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/pay", Handler: h.Booking.Pay, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		// tenant ownership is enforced by the use cases; apply is open to customers
		vendor := apiGroup.Group("/vendor")
		vendor.Use(requireAuth)
		{
			addRoutes(vendor, []route{
				{Method: http.MethodPost, Path: "/apply", Handler: h.Vendor.Apply},
				{Method: http.MethodPatch, Path: "/settings", Handler: h.Vendor.UpdateSettings},
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Vendor.Dashboard},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListVendor},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Booking.UpdateVendorStatus},
				{Method: http.MethodPost, Path: "/bookings/:id/quote", Handler: h.Booking.SendQuote},
				{Method: http.MethodGet, Path: "/listings", Handler: h.Vendor.ListFleet},
				{Method: http.MethodPost, Path: "/listings", Handler: h.Vendor.CreateListing},
				{Method: http.MethodPatch, Path: "/listings/:id", Handler: h.Vendor.UpdateListing},
				{Method: http.MethodDelete, Path: "/listings/:id", Handler: h.Vendor.DeleteListing},
				{Method: http.MethodPost, Path: "/listings/:id/toggle-availability", Handler: h.Vendor.ToggleAvailability},
				{Method: http.MethodPost, Path: "/listings/:id/images", Handler: h.Vendor.UploadImage},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, authMiddleware.RequireRoleAtLeast(user.RoleSuperAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Admin.Dashboard},
				{Method: http.MethodPost, Path: "/tenants/:id/approve", Handler: h.Admin.ApproveTenant},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Booking.UpdateAdminStatus},
				{Method: http.MethodGet, Path: "/audit", Handler: h.Admin.Audit},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

// chainHandlers runs route-level middleware inline; it is always the last
// handler of the route, so a c.Next() inside the chain is a no-op.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
