package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/models"
)

type commentRepository struct {
	*DB
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		DB: db,
	}
}

// CreateComment inserts comment as given. A missing post or author surfaces
// as [ErrReferencedRecordNotFound].
func (c *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.insertCommentQuery(comment)
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*commentRepository.CreateComment").
			Str("post_id", comment.PostID).
			Stringer("classification", c.classification(err)).
			Msg("error inserting comment")
		if classified := c.classify(err); classified != nil {
			return models.Comment{}, fmt.Errorf("%w: %w", classified, err)
		}
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return comment, nil
}

// FindAllComments omits the author email.
func (c *commentRepository) FindAllComments(ctx context.Context) ([]models.Comment, error) {
	comments, err := c.queryComments(ctx, nil)
	if err != nil {
		return nil, err
	}

	for i := range comments {
		comments[i].Author.Email = ""
	}

	return comments, nil
}

func (c *commentRepository) FindCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return c.queryComments(ctx, sq.Eq{"c.post_id": postID})
}

func (c *commentRepository) FindCommentAuthor(ctx context.Context, commentID string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.selectCommentAuthorQuery(commentID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var authorID string
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&authorID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrCommentNotFound
	case err != nil:
		log.Err(err).Str("func", "*commentRepository.FindCommentAuthor").Str("comment_id", commentID).Msg("error scanning comment author")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return authorID, nil
}

func (c *commentRepository) UpdateComment(ctx context.Context, commentID, authorID string, update models.CommentUpdate) (models.Comment, error) {
	query, args, err := c.updateCommentQuery(commentID, authorID, update)
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = c.execOwned(ctx, "*commentRepository.UpdateComment", query, args, ErrCommentNotFound); err != nil {
		return models.Comment{}, err
	}

	comments, err := c.queryComments(ctx, sq.Eq{"c.id": commentID})
	if err != nil {
		return models.Comment{}, err
	}
	if len(comments) == 0 {
		return models.Comment{}, ErrCommentNotFound
	}

	return comments[0], nil
}

func (c *commentRepository) DeleteComment(ctx context.Context, commentID, authorID string) error {
	query, args, err := c.deleteCommentQuery(commentID, authorID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.execOwned(ctx, "*commentRepository.DeleteComment", query, args, ErrCommentNotFound)
}

func (c *commentRepository) queryComments(ctx context.Context, where sq.Sqlizer) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.selectCommentsQuery(where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.queryComments").Msg("failed to execute query for comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0, 16)
	for rows.Next() {
		var (
			comment models.Comment
			author  models.Author
		)
		scanErr := rows.Scan(
			&comment.ID,
			&comment.Content,
			&comment.PostID,
			&comment.AuthorID,
			&comment.CreatedAt,
			&comment.UpdatedAt,
			&author.Username,
			&author.Email,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*commentRepository.queryComments").Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		author.ID = comment.AuthorID
		comment.Author = &author

		comments = append(comments, comment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*commentRepository.queryComments").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return comments, nil
}
