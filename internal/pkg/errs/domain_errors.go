package errs

// Caller-identity sentinels shared by command and query use cases
var (
	ErrUnauthenticated = New("authentication required")
	ErrForbidden       = New("insufficient permissions")
	ErrNoTenant        = New("no vendor account linked to caller")
)
