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

type postRepository struct {
	*DB
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB: db,
	}
}

func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.insertPostQuery(post)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*postRepository.CreatePost").
			Str("author_id", post.AuthorID).
			Stringer("classification", p.classification(err)).
			Msg("error inserting post")
		if classified := p.classify(err); classified != nil {
			return models.Post{}, fmt.Errorf("%w: %w", classified, err)
		}
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return post, nil
}

// FindAllPosts loads every post with its author, then the comments of all
// loaded posts in a single query.
func (p *postRepository) FindAllPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.queryPosts(ctx, nil)
	if err != nil {
		return nil, err
	}

	if err = p.attachComments(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (p *postRepository) FindPostByID(ctx context.Context, postID string) (models.Post, error) {
	posts, err := p.queryPosts(ctx, sq.Eq{"p.id": postID})
	if err != nil {
		return models.Post{}, err
	}
	if len(posts) == 0 {
		return models.Post{}, ErrPostNotFound
	}

	if err = p.attachComments(ctx, posts); err != nil {
		return models.Post{}, err
	}

	return posts[0], nil
}

func (p *postRepository) FindPostAuthor(ctx context.Context, postID string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.selectPostAuthorQuery(postID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var authorID string
	err = p.DB.QueryRowContext(ctx, query, args...).Scan(&authorID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrPostNotFound
	case err != nil:
		log.Err(err).Str("func", "*postRepository.FindPostAuthor").Str("post_id", postID).Msg("error scanning post author")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return authorID, nil
}

// UpdatePost only touches the row when it is owned by authorID. Zero
// affected rows is reported as [ErrPostNotFound].
func (p *postRepository) UpdatePost(ctx context.Context, postID, authorID string, update models.PostUpdate) (models.Post, error) {
	query, args, err := p.updatePostQuery(postID, authorID, update)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = p.execOwned(ctx, "*postRepository.UpdatePost", query, args, ErrPostNotFound); err != nil {
		return models.Post{}, err
	}

	posts, err := p.queryPosts(ctx, sq.Eq{"p.id": postID})
	if err != nil {
		return models.Post{}, err
	}
	if len(posts) == 0 {
		return models.Post{}, ErrPostNotFound
	}

	return posts[0], nil
}

func (p *postRepository) DeletePost(ctx context.Context, postID, authorID string) error {
	query, args, err := p.deletePostQuery(postID, authorID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.execOwned(ctx, "*postRepository.DeletePost", query, args, ErrPostNotFound)
}

func (p *postRepository) queryPosts(ctx context.Context, where sq.Sqlizer) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.selectPostsQuery(where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.queryPosts").Msg("failed to execute query for posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 16)
	for rows.Next() {
		var (
			post   models.Post
			author models.Author
		)
		scanErr := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.AuthorID,
			&post.CreatedAt,
			&post.UpdatedAt,
			&author.Username,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.queryPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		author.ID = post.AuthorID
		post.Author = &author

		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*postRepository.queryPosts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

// attachComments fills the Comments of every post, keeping the newest-first
// order returned by the database.
func (p *postRepository) attachComments(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	ids := make([]string, len(posts))
	index := make(map[string]int, len(posts))
	for i, post := range posts {
		ids[i] = post.ID
		index[post.ID] = i
		posts[i].Comments = []models.Comment{}
	}

	query, args, err := p.selectCommentsOfPostsQuery(ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.attachComments").Int("posts", len(ids)).Msg("failed to execute query for comments")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Comment
		if scanErr := rows.Scan(&c.ID, &c.Content, &c.PostID, &c.AuthorID, &c.CreatedAt, &c.UpdatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.attachComments").Msg("failed to scan comment row")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if i, ok := index[c.PostID]; ok {
			posts[i].Comments = append(posts[i].Comments, c)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return nil
}

// execOwned runs a conditional write and maps zero affected rows to notFound.
func (db *DB) execOwned(ctx context.Context, funcName, query string, args []any, notFound error) error {
	log := logger.FromContext(ctx)

	result, err := db.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Stringer("class", db.classification(err)).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
