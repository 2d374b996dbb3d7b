package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure. The
	// validators.Issues describing it stay reachable with errors.As.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrMissingID is returned when an operation needs a resource id and
	// none was given.
	ErrMissingID = errors.New("resource id is required")

	ErrWrongPassword = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNotAuthor is returned when the caller tries to mutate a post or
	// comment owned by someone else.
	ErrNotAuthor = errors.New("caller is not the author")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
