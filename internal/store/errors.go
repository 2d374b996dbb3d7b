package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a new user collides with an
	// existing username or email.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a lookup by username or email
	// matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPostNotFound is returned when a read or a conditional write targets
	// a post that does not exist (or, for writes, is not owned by the caller).
	ErrPostNotFound = errors.New("post was not found")

	// ErrCommentNotFound is the comment counterpart of [ErrPostNotFound].
	ErrCommentNotFound = errors.New("comment was not found")

	// ErrReferencedRecordNotFound is returned when an insert references a
	// user or post that does not exist (foreign key violation).
	ErrReferencedRecordNotFound = errors.New("referenced record was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iteration over a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedBackend is returned by [NewStorages] for a DSN whose
	// scheme names no known backend.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
)
