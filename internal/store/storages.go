package store

import (
	"context"
	"fmt"

	"github.com/GIT-Saikat/Blog-Application/internal/config"
	"github.com/GIT-Saikat/Blog-Application/internal/logger"
)

// Storages groups the repositories of one backend.
type Storages struct {
	UserRepository    UserRepository
	PostRepository    PostRepository
	CommentRepository CommentRepository

	db *DB
}

// NewStorages opens the backend selected by cfg.DB.DSN. SQL backends are
// migrated before the repositories are returned.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch backend := cfg.DB.Backend(); backend {
	case config.BackendMemory:
		log.Info().Str("backend", backend).Msg("using in-memory storage")
		return NewMemoryStorages(NewMemoryDB()), nil

	case config.BackendPostgres, config.BackendSQLite:
		var (
			db  *DB
			err error
		)
		if backend == config.BackendPostgres {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		}
		if err != nil {
			return nil, err
		}

		if err = db.Migrate(); err != nil {
			log.Err(err).Str("backend", backend).Msg("error applying migrations")
			_ = db.Close()
			return nil, err
		}
		log.Info().Str("backend", backend).Msg("database is migrated")

		return NewSQLStorages(db, log), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.DB.DSN)
	}
}

// NewSQLStorages builds the repositories over an open [DB].
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		PostRepository:    NewPostRepository(db, log),
		CommentRepository: NewCommentRepository(db, log),
		db:                db,
	}
}

// NewMemoryStorages builds the repositories over a [MemoryDB].
func NewMemoryStorages(db *MemoryDB) *Storages {
	return &Storages{
		UserRepository:    NewMemoryUserRepository(db),
		PostRepository:    NewMemoryPostRepository(db),
		CommentRepository: NewMemoryCommentRepository(db),
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
