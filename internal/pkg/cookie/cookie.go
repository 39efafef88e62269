package cookie

import (
	"net/http"
	"time"

	"rental-marketplace/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	// RefreshPath scopes the refresh cookie to the auth endpoints so it is not sent with every request
	RefreshPath = "/api/auth"
)

// Session is a freshly issued token pair and how long each half lives
type Session struct {
	AccessToken  string
	RefreshToken string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, s Session) {
	write(c, cfg, AccessTokenCookieName, s.AccessToken, "/", int(s.AccessTTL.Seconds()))
	write(c, cfg, RefreshTokenCookieName, s.RefreshToken, RefreshPath, int(s.RefreshTTL.Seconds()))
}

// ClearTokenCookies expires both cookies; paths must match the ones they were set with
func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, AccessTokenCookieName, "", "/", -1)
	write(c, cfg, RefreshTokenCookieName, "", RefreshPath, -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func write(c *gin.Context, cfg config.CookieConfig, name, value, path string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Domain:   cfg.Domain,
		MaxAge:   maxAge,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: sameSite(cfg.SameSite),
	})
}

func sameSite(v string) http.SameSite {
	switch v {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
