package store

import (
	"context"

	"github.com/GIT-Saikat/Blog-Application/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Users are never updated or deleted.
type UserRepository interface {
	// CreateUser inserts user as given. A username or email collision yields
	// [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns [ErrNoUserWasFound] when nothing matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByEmail returns [ErrNoUserWasFound] when nothing matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// PostRepository persists posts. Writes are conditional on the author so a
// mutation by anyone else affects nothing and reports [ErrPostNotFound].
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// FindAllPosts returns every post newest first, with author and comments.
	FindAllPosts(ctx context.Context) ([]models.Post, error)

	// FindPostByID returns the post with author and comments (newest first).
	FindPostByID(ctx context.Context, postID string) (models.Post, error)

	// FindPostAuthor returns the author_id projection used for ownership
	// checks.
	FindPostAuthor(ctx context.Context, postID string) (string, error)

	// UpdatePost applies the non-nil fields of update and returns the post
	// with its author.
	UpdatePost(ctx context.Context, postID, authorID string, update models.PostUpdate) (models.Post, error)

	DeletePost(ctx context.Context, postID, authorID string) error
}

// CommentRepository persists comments.
type CommentRepository interface {
	// CreateComment yields [ErrReferencedRecordNotFound] when the post or
	// the author does not exist.
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// FindAllComments returns every comment newest first with the author's
	// id and username.
	FindAllComments(ctx context.Context) ([]models.Comment, error)

	// FindCommentsByPost returns the comments of a post newest first with
	// the author's id, username and email.
	FindCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error)

	// FindCommentAuthor returns the author_id projection used for ownership
	// checks.
	FindCommentAuthor(ctx context.Context, commentID string) (string, error)

	UpdateComment(ctx context.Context, commentID, authorID string, update models.CommentUpdate) (models.Comment, error)

	DeleteComment(ctx context.Context, commentID, authorID string) error
}

// ErrorClassificator maps driver errors of one SQL dialect onto
// [ErrorClassification] values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
