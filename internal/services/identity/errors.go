package identity

// IdentityError is a custom error type for identity-related errors
type IdentityError string

// Error implements the error interface
func (e IdentityError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidCredentials IdentityError = "invalid credentials"
	ErrInvalidSession     IdentityError = "invalid or expired session"
	ErrNilConfig          IdentityError = "config cannot be nil"
	ErrNilGameRepo        IdentityError = "game repository cannot be nil"
	ErrNilSessionRepo     IdentityError = "session repository cannot be nil"
	ErrNilClock           IdentityError = "clock cannot be nil"
	ErrNilUUIDGenerator   IdentityError = "UUID generator cannot be nil"
)
