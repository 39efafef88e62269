//go:build e2e

package auth_test

import (
	"net/http"
	"sync"
	"testing"

	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/handler/dto/request"
	"rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/tests/common/authtest"
	"rental-marketplace/tests/common/builder"
	"rental-marketplace/tests/common/dbtest"
	"rental-marketplace/tests/common/httptest"
	"rental-marketplace/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL  = "/api/auth/signup"
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	tenantID := dbtest.CreateTestTenant(s.T(), s.DB, "Batinah Equipment", "active")
	dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", string(user.RoleCustomer), nil)
	dbtest.CreateTestUser(s.T(), s.DB, "owner@batinah.om", string(user.RoleOwner), &tenantID)
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleSuperAdmin), nil)
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleCustomer), nil)

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{"success: valid credentials", "customer@example.com", dbtest.DefaultPassword, http.StatusOK},
		{"error: unknown email", "nobody@example.com", dbtest.DefaultPassword, http.StatusUnauthorized},
		{"error: wrong password", "customer@example.com", "wrongpassword", http.StatusUnauthorized},
		{"error: inactive account", "inactive@example.com", dbtest.DefaultPassword, http.StatusForbidden},
		{"error: empty email", "", dbtest.DefaultPassword, http.StatusBadRequest},
		{"error: empty password", "customer@example.com", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))
			}
		})
	}
}

func (s *authSuite) TestSignup() {
	s.Run("success: new customer is signed in", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, builder.NewAuthBuilder().WithEmail("new@example.com").BuildSignupDTO(), "")

		var resp response.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal("customer", resp.User.Role)
		s.Nil(resp.User.TenantID)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, resp.AccessToken)
		var me queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal("new@example.com", me.Email)
	})

	s.Run("error: 409 for a registered email", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, builder.NewAuthBuilder().WithEmail("customer@example.com").BuildSignupDTO(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Email already registered")
	})
}

func (s *authSuite) TestMe() {
	s.Run("success: owners see their company and vendor access", func() {
		token := authtest.LoginUser(s.T(), s.Router, "owner@batinah.om", dbtest.DefaultPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		var me queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Require().NotNil(me.TenantName)
		s.Equal("Batinah Equipment", *me.TenantName)
		s.Equal(queries.VendorAccessActive, me.VendorAccess)
	})

	s.Run("success: pending company keeps the owner on the waiting screen", func() {
		pendingID := dbtest.CreateTestTenant(s.T(), s.DB, "Sur Trucks", "pending")
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@surtrucks.om", string(user.RoleOwner), &pendingID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		var me queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal(queries.VendorAccessPending, me.VendorAccess)
	})
}

func (s *authSuite) TestRefreshAndLogout() {
	s.Run("success: refresh cookie yields a new pair", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "owner@batinah.om", Password: dbtest.DefaultPassword}, "")
		require.Equal(s.T(), http.StatusOK, w.Code)

		cookies := httptest.ExtractCookies(w)
		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		s.NotNil(httptest.ExtractCookie(w, "access_token"))
	})

	s.Run("error: refresh without a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("success: logout clears cookies", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "customer@example.com", Password: dbtest.DefaultPassword}, "")
		require.Equal(s.T(), http.StatusOK, w.Code)

		authtest.LogoutUser(s.T(), s.Router, httptest.ExtractCookies(w))
	})
}

func (s *authSuite) TestRoleGates() {
	tests := []struct {
		name           string
		email          string
		path           string
		expectedStatus int
	}{
		{"error: customers are kept out of admin", "customer@example.com", "/api/admin/dashboard", http.StatusForbidden},
		{"error: owners are kept out of admin", "owner@batinah.om", "/api/admin/dashboard", http.StatusForbidden},
		{"success: super admin reaches admin", "admin@example.com", "/api/admin/dashboard", http.StatusOK},
		{"error: customers have no vendor dashboard", "customer@example.com", "/api/vendor/dashboard", http.StatusForbidden},
		{"success: owners reach their dashboard", "owner@batinah.om", "/api/vendor/dashboard", http.StatusOK},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			token := authtest.LoginUser(s.T(), s.Router, tt.email, dbtest.DefaultPassword)
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, tt.path, nil, token)
			s.Equal(tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("error: expired token is rejected", func() {
		userID := dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", string(user.RoleCustomer), nil)
		token := s.jwt.CreateExpiredToken(s.T(), userID, user.RoleCustomer)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("error: protected endpoints need a token", func() {
		for _, path := range []string{meURL, "/api/bookings/mine", "/api/vendor/dashboard"} {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, "")
			s.Equal(http.StatusUnauthorized, w.Code, path)
		}
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("success: parallel logins all succeed", func() {
		const n = 8
		var wg sync.WaitGroup
		codes := make([]int, n)
		for i := range n {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
					request.LoginRequest{Email: "customer@example.com", Password: dbtest.DefaultPassword}, "")
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		for _, code := range codes {
			s.Equal(http.StatusOK, code)
		}
	})
}
