package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidPayload is wrapped by every error produced from an invalid
	// [Result]. The accompanying [Issues] can be extracted with errors.As.
	ErrInvalidPayload = errors.New("invalid payload")
)

// Issue messages shared by the schemas.
const (
	msgRequired       = "is required"
	msgTooShort       = "must be at least %d characters"
	msgTooLong        = "must be at most %d characters"
	msgTooLongBytes   = "must be at most %d bytes"
	msgInvalidEmail   = "must be a valid email address"
	msgNoUpdateFields = "at least one of %s must be provided"
	msgNeedIdentifier = "either username or email is required"
)
