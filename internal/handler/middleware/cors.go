package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"rental-marketplace/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware accepts exact origins and wildcard patterns such as
// "https://*.rentals.om" for tenant storefront subdomains. A lone "*" opens
// the API to any origin and disables credentials.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
		corsCfg.AllowWildcard = slices.ContainsFunc(cfg.AllowOrigins, func(o string) bool {
			return strings.Contains(o, "*")
		})
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_all", corsCfg.AllowAllOrigins,
		"wildcard", corsCfg.AllowWildcard)
	return cors.New(corsCfg)
}
