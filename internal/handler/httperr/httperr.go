package httperr

import (
	"net/http"

	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Hint    string `json:"hint,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Hint = errs.Hint(err)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type rule struct {
	sentinel error
	status   int
	// message overrides err.Error(); empty exposes the underlying validation message
	message string
}

var rules = []rule{
	{errs.ErrUnauthenticated, http.StatusUnauthorized, "Authentication required"},
	{errs.ErrForbidden, http.StatusForbidden, "Insufficient permissions"},
	{errs.ErrNoTenant, http.StatusForbidden, "No vendor account linked to this user"},

	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrUserNotFound, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{commands.ErrAuthenticationFailed, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrTokenValidation, http.StatusUnauthorized, "Invalid or expired token"},
	{commands.ErrSignupValidation, http.StatusBadRequest, ""},
	{commands.ErrEmailTaken, http.StatusConflict, "Email already registered"},

	{commands.ErrBookingValidation, http.StatusBadRequest, ""},
	{commands.ErrListingNotFound, http.StatusNotFound, "Listing not found"},
	{commands.ErrListingUnavailable, http.StatusConflict, "Listing is not available for booking"},
	{commands.ErrStaleRate, http.StatusConflict, "Daily rate has changed, please refresh"},
	{commands.ErrBookingConflict, http.StatusConflict, "Vehicle is no longer available for these dates"},
	{commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{commands.ErrIllegalStatusChange, http.StatusConflict, ""},
	{commands.ErrStatusNotAllowed, http.StatusBadRequest, "Status not allowed"},
	{commands.ErrInvalidQuote, http.StatusBadRequest, "Quote must be a positive amount"},
	{commands.ErrNotPayable, http.StatusConflict, "Booking is not awaiting payment"},
	{commands.ErrPaymentUnavailable, http.StatusBadGateway, "Payment provider unavailable, please try again"},

	{commands.ErrListingValidation, http.StatusBadRequest, ""},
	{commands.ErrImageTooLarge, http.StatusRequestEntityTooLarge, "Image exceeds the upload size limit"},
	{commands.ErrImageType, http.StatusUnsupportedMediaType, "Only image uploads are accepted"},
	{commands.ErrUploadFailed, http.StatusBadGateway, "Image upload failed"},

	{commands.ErrTenantValidation, http.StatusBadRequest, ""},
	{commands.ErrTenantTaken, http.StatusConflict, "Company name or slug already taken"},
	{commands.ErrTenantNotFound, http.StatusNotFound, "Company not found"},
	{commands.ErrAlreadyVendor, http.StatusConflict, "Account already manages a company"},

	{queries.ErrInvalidDates, http.StatusBadRequest, ""},
	{queries.ErrInvalidFilter, http.StatusBadRequest, ""},
	{queries.ErrListingNotFound, http.StatusNotFound, "Listing not found"},
	{queries.ErrCompanyNotFound, http.StatusNotFound, "Company not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
}

// Classify maps a use case error to its HTTP status and client message.
// Unknown errors are reported as 500 without leaking their text.
func Classify(err error) (int, string) {
	for _, r := range rules {
		if !errs.Is(err, r.sentinel) {
			continue
		}
		if r.message != "" {
			return r.status, r.message
		}
		return r.status, err.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Abort responds with the classified status of err
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}
