package service

import (
	"context"

	"github.com/GIT-Saikat/Blog-Application/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialService hashes passwords and issues and verifies bearer tokens.
// It holds the token signing secret injected at construction.
type CredentialService interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) bool

	// IssueToken signs a token whose subject is subjectID.
	IssueToken(subjectID string) (models.Token, error)

	// VerifyToken fails with ErrTokenIsExpiredOrInvalid for any token that is
	// malformed, expired, signed with another key or issued by someone else.
	VerifyToken(token string) (models.Token, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PostService implements the post operations. callerID is the subject of
// the verified bearer token.
type PostService interface {
	CreatePost(ctx context.Context, authorID string, req models.CreatePostRequest) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	UpdatePost(ctx context.Context, callerID, postID string, req models.UpdatePostRequest) (models.Post, error)
	DeletePost(ctx context.Context, callerID, postID string) error
}

// CommentService implements the comment operations.
type CommentService interface {
	CreateComment(ctx context.Context, authorID string, req models.CreateCommentRequest) (models.Comment, error)
	ListComments(ctx context.Context) ([]models.Comment, error)
	ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error)
	UpdateComment(ctx context.Context, callerID, commentID string, req models.UpdateCommentRequest) (models.Comment, error)
	DeleteComment(ctx context.Context, callerID, commentID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper, PostServiceWrapper and CommentServiceWrapper define
// middleware composition for the services. Implementations wrap an existing
// service to add behavior such as validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type PostServiceWrapper interface {
	Wrap(PostService) PostService
}

type CommentServiceWrapper interface {
	Wrap(CommentService) CommentService
}
