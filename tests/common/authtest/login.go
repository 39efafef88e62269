//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"rental-marketplace/internal/pkg/cookie"
	"rental-marketplace/tests/common/builder"
	"rental-marketplace/tests/common/dbtest"
	"rental-marketplace/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	loginPath  = "/api/auth/login"
	logoutPath = "/api/auth/logout"
)

// Session is what a browser holds after signing in
type Session struct {
	AccessToken string
	Cookies     []*http.Cookie
}

// Login signs in through the real endpoint and fails the test on anything but 200
func Login(t *testing.T, h http.Handler, email, password string) Session {
	t.Helper()

	creds := builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) {
		a.Email, a.Password = email, password
	}).BuildDTO()
	w := httptest.Do(t, h, http.MethodPost, loginPath, creds)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, access, "no %s cookie on login", cookie.AccessTokenCookieName)
	require.NotEmpty(t, access.Value)

	return Session{AccessToken: access.Value, Cookies: httptest.ExtractCookies(w)}
}

func LoginUser(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()
	return Login(t, h, email, password).AccessToken
}

// CreateAndLogin inserts a user with the default password and returns its access token
func CreateAndLogin(t *testing.T, db dbtest.DBLike, h http.Handler, email, role string, tenantID *uuid.UUID) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role, tenantID)
	return LoginUser(t, h, email, dbtest.DefaultPassword)
}

func LogoutUser(t *testing.T, h http.Handler, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.Do(t, h, http.MethodPost, logoutPath, nil, httptest.WithCookies(cookies))
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	for _, c := range httptest.ExtractCookies(w) {
		require.Negative(t, c.MaxAge, "cookie %s not expired", c.Name)
	}
}
