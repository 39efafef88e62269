package api

import (
	"net/http"
	"time"

	reqdto "rental-marketplace/internal/handler/dto/request"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/handler/httperr"
	"rental-marketplace/internal/handler/middleware"
	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/pkg/cookie"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// TokenLifetimes sizes the auth cookies to match the tokens they carry
type TokenLifetimes interface {
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type AuthHandler struct {
	cmds      commands.AuthCommands
	users     queries.UserQueries
	cookieCfg config.CookieConfig
	lifetimes TokenLifetimes
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cfg config.Config, lifetimes TokenLifetimes) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		users:     users,
		cookieCfg: cfg.Cookie,
		lifetimes: lifetimes,
	}
}

// @Summary Sign up
// @Description Create a customer account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Signup(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.setSession(c, result.TokenPair)
	c.JSON(http.StatusCreated, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		User:        result.User,
	})
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.setSession(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		User:        result.User,
	})
}

// @Summary Refresh tokens
// @Description Rotate the token pair using the refresh cookie or body token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		_ = c.ShouldBindJSON(&req)
		token = req.RefreshToken
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Refresh token required", nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		cookie.ClearTokenCookies(c, h.cookieCfg)
		httperr.Abort(c, err)
		return
	}

	h.setSession(c, pair)
	c.JSON(http.StatusOK, resdto.RefreshResponse{AccessToken: pair.AccessToken})
}

// @Summary User logout
// @Description Clear the session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; dropping the cookies ends the browser session
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "User not authenticated", nil)
		return
	}

	user, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setSession(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cookieCfg, cookie.Session{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		AccessTTL:    h.lifetimes.AccessTokenDuration(),
		RefreshTTL:   h.lifetimes.RefreshTokenDuration(),
	})
}
