package store

// ErrorClassification is the dialect-independent meaning of a failed
// database operation.
type ErrorClassification int

const (
	// Unclassified is the default for errors without a known meaning.
	Unclassified ErrorClassification = iota

	// UniqueViolation marks a UNIQUE constraint failure.
	UniqueViolation

	// ForeignKeyViolation marks a FOREIGN KEY constraint failure.
	ForeignKeyViolation

	// Retryable marks a transient failure (lost connection, deadlock,
	// busy database) that may succeed if attempted again.
	Retryable
)

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case Retryable:
		return "retryable"
	default:
		return "unclassified"
	}
}
