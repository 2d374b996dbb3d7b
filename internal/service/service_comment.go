package service

import (
	"context"
	"fmt"
	"time"

	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/internal/store"
	"github.com/GIT-Saikat/Blog-Application/internal/utils"
	"github.com/GIT-Saikat/Blog-Application/models"
)

type commentService struct {
	commentRepository store.CommentRepository

	ids *utils.IDGenerator
	now func() time.Time
}

func NewCommentService(commentRepository store.CommentRepository, logger *logger.Logger) CommentService {
	logger.Debug().Msg("creating comment service")
	return &commentService{
		commentRepository: commentRepository,
		ids:               utils.NewIDGenerator(),
		now:               utcNow,
	}
}

func (c *commentService) CreateComment(ctx context.Context, authorID string, req models.CreateCommentRequest) (models.Comment, error) {
	now := c.now()
	comment := models.Comment{
		ID:        c.ids.Generate(),
		Content:   req.Content,
		PostID:    req.PostID,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := c.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("author_id", authorID).
			Str("post_id", req.PostID).
			Msg("error creating comment")
		return models.Comment{}, fmt.Errorf("error creating comment: %w", err)
	}

	return created, nil
}

func (c *commentService) ListComments(ctx context.Context) ([]models.Comment, error) {
	comments, err := c.commentRepository.FindAllComments(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing comments")
		return nil, fmt.Errorf("error listing comments: %w", err)
	}

	return comments, nil
}

func (c *commentService) ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	comments, err := c.commentRepository.FindCommentsByPost(ctx, postID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("post_id", postID).Msg("error listing comments of post")
		return nil, fmt.Errorf("error listing comments of post %s: %w", postID, err)
	}

	return comments, nil
}

func (c *commentService) UpdateComment(ctx context.Context, callerID, commentID string, req models.UpdateCommentRequest) (models.Comment, error) {
	if err := c.authorize(ctx, callerID, commentID); err != nil {
		return models.Comment{}, err
	}

	var content string
	if req.Content != nil {
		content = *req.Content
	}

	comment, err := c.commentRepository.UpdateComment(ctx, commentID, callerID, models.CommentUpdate{
		Content:   content,
		UpdatedAt: c.now(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("comment_id", commentID).Msg("error updating comment")
		return models.Comment{}, fmt.Errorf("error updating comment %s: %w", commentID, err)
	}

	return comment, nil
}

func (c *commentService) DeleteComment(ctx context.Context, callerID, commentID string) error {
	if err := c.authorize(ctx, callerID, commentID); err != nil {
		return err
	}

	if err := c.commentRepository.DeleteComment(ctx, commentID, callerID); err != nil {
		logger.FromContext(ctx).Err(err).Str("comment_id", commentID).Msg("error deleting comment")
		return fmt.Errorf("error deleting comment %s: %w", commentID, err)
	}

	return nil
}

func (c *commentService) authorize(ctx context.Context, callerID, commentID string) error {
	authorID, err := c.commentRepository.FindCommentAuthor(ctx, commentID)
	if err != nil {
		return fmt.Errorf("error looking up comment %s: %w", commentID, err)
	}

	if err = checkOwnership(callerID, authorID); err != nil {
		logger.FromContext(ctx).Warn().
			Str("comment_id", commentID).
			Str("caller_id", callerID).
			Msg("caller does not own comment")
		return err
	}

	return nil
}
