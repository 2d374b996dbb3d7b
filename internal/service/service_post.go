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

type postService struct {
	postRepository store.PostRepository

	ids *utils.IDGenerator
	now func() time.Time
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	logger.Debug().Msg("creating post service")
	return &postService{
		postRepository: postRepository,
		ids:            utils.NewIDGenerator(),
		now:            utcNow,
	}
}

func (p *postService) CreatePost(ctx context.Context, authorID string, req models.CreatePostRequest) (models.Post, error) {
	now := p.now()
	post := models.Post{
		ID:        p.ids.Generate(),
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("author_id", authorID).Msg("error creating post")
		return models.Post{}, fmt.Errorf("error creating post: %w", err)
	}

	return created, nil
}

func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.FindAllPosts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing posts")
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	return posts, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	post, err := p.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("error getting post %s: %w", postID, err)
	}

	return post, nil
}

// UpdatePost checks ownership on the author_id projection, then applies the
// write conditionally on the same author.
func (p *postService) UpdatePost(ctx context.Context, callerID, postID string, req models.UpdatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := p.authorize(ctx, callerID, postID); err != nil {
		return models.Post{}, err
	}

	update := models.PostUpdate{
		Title:     req.Title,
		Content:   req.Content,
		UpdatedAt: p.now(),
	}
	post, err := p.postRepository.UpdatePost(ctx, postID, callerID, update)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("error updating post")
		return models.Post{}, fmt.Errorf("error updating post %s: %w", postID, err)
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, callerID, postID string) error {
	if err := p.authorize(ctx, callerID, postID); err != nil {
		return err
	}

	if err := p.postRepository.DeletePost(ctx, postID, callerID); err != nil {
		logger.FromContext(ctx).Err(err).Str("post_id", postID).Msg("error deleting post")
		return fmt.Errorf("error deleting post %s: %w", postID, err)
	}

	return nil
}

func (p *postService) authorize(ctx context.Context, callerID, postID string) error {
	authorID, err := p.postRepository.FindPostAuthor(ctx, postID)
	if err != nil {
		return fmt.Errorf("error looking up post %s: %w", postID, err)
	}

	if err = checkOwnership(callerID, authorID); err != nil {
		logger.FromContext(ctx).Warn().
			Str("post_id", postID).
			Str("caller_id", callerID).
			Msg("caller does not own post")
		return err
	}

	return nil
}
