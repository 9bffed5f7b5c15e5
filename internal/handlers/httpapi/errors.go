package httpapi

// HandlerError is a custom error type for handler-level errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          HandlerError = "config cannot be nil"
	ErrNilIdentityService HandlerError = "identity service cannot be nil"
	ErrNilGameService     HandlerError = "game service cannot be nil"
	ErrEmptyHostPin       HandlerError = "host pin cannot be empty"
	ErrNilLogger          HandlerError = "logger cannot be nil"

	ErrInvalidHostPin HandlerError = "invalid host pin"
	ErrUnknownAction  HandlerError = "unknown action"
	ErrGameNotSeeded  HandlerError = "game not seeded"
)
