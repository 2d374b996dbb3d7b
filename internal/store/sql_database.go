package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/migrations"
)

// SQL dialects understood by the repositories and migrations.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// DB is a connection pool bound to one SQL dialect. It carries the squirrel
// statement builder with the dialect's placeholder format and the error
// classifier for its driver.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
	}
	log.Debug().Str("dialect", dialect).Msg("database connection opened")

	switch dialect {
	case DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate brings the schema up to date with the embedded migrations.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		return fmt.Errorf("error migrating %s database: %w", db.dialect, err)
	}
	return nil
}

// classify returns the store sentinel matching a failed write, or nil when
// the failure has no domain meaning.
func (db *DB) classify(err error) error {
	switch db.classification(err) {
	case UniqueViolation:
		return ErrUserAlreadyExists
	case ForeignKeyViolation:
		return ErrReferencedRecordNotFound
	default:
		return nil
	}
}

// classification returns the driver-level class of err, or Unclassified
// when the DB has no classifier.
func (db *DB) classification(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}
