package service

import (
	"context"
	"fmt"

	"github.com/GIT-Saikat/Blog-Application/internal/validators"
	"github.com/GIT-Saikat/Blog-Application/models"
)

// invalid wraps a validation error so that both ErrInvalidDataProvided and
// the validators.Issues behind it stay matchable.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

func requireID(id string) error {
	if id == "" {
		return invalid(ErrMissingID)
	}
	return nil
}

// ── auth ─────────────────────────────────────────────────────────────────────

// AuthValidationService validates register and login payloads before they
// reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewBlogValidator(),
	}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, invalid(err)
	}
	return v.inner.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, invalid(err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

// ── posts ────────────────────────────────────────────────────────────────────

type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewBlogValidator(),
	}
}

func (v *PostValidationService) Wrap(inner PostService) PostService {
	v.inner = inner
	return v
}

func (v *PostValidationService) CreatePost(ctx context.Context, authorID string, req models.CreatePostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Post{}, invalid(err)
	}
	return v.inner.CreatePost(ctx, authorID, req)
}

func (v *PostValidationService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return v.inner.ListPosts(ctx)
}

func (v *PostValidationService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	if err := requireID(postID); err != nil {
		return models.Post{}, err
	}
	return v.inner.GetPost(ctx, postID)
}

func (v *PostValidationService) UpdatePost(ctx context.Context, callerID, postID string, req models.UpdatePostRequest) (models.Post, error) {
	if err := requireID(postID); err != nil {
		return models.Post{}, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Post{}, invalid(err)
	}
	return v.inner.UpdatePost(ctx, callerID, postID, req)
}

func (v *PostValidationService) DeletePost(ctx context.Context, callerID, postID string) error {
	if err := requireID(postID); err != nil {
		return err
	}
	return v.inner.DeletePost(ctx, callerID, postID)
}

// ── comments ─────────────────────────────────────────────────────────────────

type CommentValidationService struct {
	inner     CommentService
	validator validators.Validator
}

func NewCommentValidationService() CommentServiceWrapper {
	return &CommentValidationService{
		validator: validators.NewBlogValidator(),
	}
}

func (v *CommentValidationService) Wrap(inner CommentService) CommentService {
	v.inner = inner
	return v
}

func (v *CommentValidationService) CreateComment(ctx context.Context, authorID string, req models.CreateCommentRequest) (models.Comment, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Comment{}, invalid(err)
	}
	return v.inner.CreateComment(ctx, authorID, req)
}

func (v *CommentValidationService) ListComments(ctx context.Context) ([]models.Comment, error) {
	return v.inner.ListComments(ctx)
}

func (v *CommentValidationService) ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return v.inner.ListCommentsByPost(ctx, postID)
}

func (v *CommentValidationService) UpdateComment(ctx context.Context, callerID, commentID string, req models.UpdateCommentRequest) (models.Comment, error) {
	if err := requireID(commentID); err != nil {
		return models.Comment{}, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Comment{}, invalid(err)
	}
	return v.inner.UpdateComment(ctx, callerID, commentID, req)
}

func (v *CommentValidationService) DeleteComment(ctx context.Context, callerID, commentID string) error {
	if err := requireID(commentID); err != nil {
		return err
	}
	return v.inner.DeleteComment(ctx, callerID, commentID)
}
