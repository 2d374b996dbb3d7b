package validators

import (
	"fmt"
	"strings"
)

// Issue describes a single rejected field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return i.Field + " " + i.Message
}

// Issues is the list of problems found in a payload. It implements error so
// it can travel through the usual wrapping chain and be recovered with
// errors.As.
type Issues []Issue

func (is Issues) Error() string {
	parts := make([]string, 0, len(is))
	for _, i := range is {
		parts = append(parts, i.String())
	}
	return strings.Join(parts, "; ")
}

// Result is the tagged outcome of validating a payload of type T: either
// valid, carrying the data, or invalid, carrying the issues.
type Result[T any] struct {
	data   T
	issues Issues
}

// Valid builds a successful Result.
func Valid[T any](data T) Result[T] {
	return Result[T]{data: data}
}

// Invalid builds a failed Result. An empty issue list still yields an
// invalid result.
func Invalid[T any](issues ...Issue) Result[T] {
	if len(issues) == 0 {
		issues = Issues{{Field: "payload", Message: "is invalid"}}
	}
	return Result[T]{issues: issues}
}

func (r Result[T]) IsValid() bool {
	return len(r.issues) == 0
}

// Data returns the validated payload. It is the zero value for an invalid
// result.
func (r Result[T]) Data() T {
	return r.data
}

func (r Result[T]) Issues() Issues {
	return r.issues
}

// Err returns nil for a valid result, otherwise an error wrapping both
// [ErrInvalidPayload] and the [Issues].
func (r Result[T]) Err() error {
	if r.IsValid() {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidPayload, r.issues)
}
