package store

import "strings"

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
// The driver reports constraint failures through the error text, which is
// stable across sqlite versions.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return UniqueViolation
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ForeignKeyViolation
	case strings.Contains(msg, "database is locked"), strings.Contains(msg, "database table is locked"):
		return Retryable
	default:
		return Unclassified
	}
}
