package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GIT-Saikat/Blog-Application/models"
)

func seedMemory(t *testing.T) (*Storages, context.Context) {
	t.Helper()
	ctx := context.Background()
	s := NewMemoryStorages(NewMemoryDB())

	for _, u := range []models.User{
		{ID: "u-1", Username: "alice", Email: "alice@example.com", PasswordHash: "h"},
		{ID: "u-2", Username: "bob", Email: "bob@example.com", PasswordHash: "h"},
	} {
		_, err := s.UserRepository.CreateUser(ctx, u)
		require.NoError(t, err)
	}
	return s, ctx
}

func TestMemoryUsers_Uniqueness(t *testing.T) {
	s, ctx := seedMemory(t)

	_, err := s.UserRepository.CreateUser(ctx, models.User{ID: "u-3", Username: "alice", Email: "new@example.com"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = s.UserRepository.CreateUser(ctx, models.User{ID: "u-3", Username: "carol", Email: "bob@example.com"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	u, err := s.UserRepository.FindUserByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-2", u.ID)

	_, err = s.UserRepository.FindUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestMemoryPosts_OrderingAndRelations(t *testing.T) {
	s, ctx := seedMemory(t)

	for i, id := range []string{"p-1", "p-2", "p-3"} {
		_, err := s.PostRepository.CreatePost(ctx, models.Post{ID: id, Title: id, Content: "body", AuthorID: "u-1", CreatedAt: ts(i)})
		require.NoError(t, err)
	}
	for i, id := range []string{"c-1", "c-2"} {
		_, err := s.CommentRepository.CreateComment(ctx, models.Comment{ID: id, Content: "hey", PostID: "p-2", AuthorID: "u-2", CreatedAt: ts(10 + i)})
		require.NoError(t, err)
	}

	posts, err := s.PostRepository.FindAllPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []string{"p-3", "p-2", "p-1"}, []string{posts[0].ID, posts[1].ID, posts[2].ID})
	assert.Equal(t, &models.Author{ID: posts[0].AuthorID, Username: "alice"}, posts[0].Author)

	post, err := s.PostRepository.FindPostByID(ctx, "p-2")
	require.NoError(t, err)
	require.Len(t, post.Comments, 2)
	assert.Equal(t, "c-2", post.Comments[0].ID)
	assert.Equal(t, "c-1", post.Comments[1].ID)
}

func TestMemoryPosts_TieBrokenByID(t *testing.T) {
	s, ctx := seedMemory(t)

	for _, id := range []string{"p-a", "p-b"} {
		_, err := s.PostRepository.CreatePost(ctx, models.Post{ID: id, AuthorID: "u-1", CreatedAt: ts(0)})
		require.NoError(t, err)
	}

	posts, err := s.PostRepository.FindAllPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p-b", posts[0].ID)
}

func TestMemoryPosts_ConditionalWrites(t *testing.T) {
	s, ctx := seedMemory(t)
	_, err := s.PostRepository.CreatePost(ctx, models.Post{ID: "p-1", Title: "Original", Content: "body", AuthorID: "u-1"})
	require.NoError(t, err)

	title := "Hijacked"
	_, err = s.PostRepository.UpdatePost(ctx, "p-1", "u-2", models.PostUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.ErrorIs(t, s.PostRepository.DeletePost(ctx, "p-1", "u-2"), ErrPostNotFound)

	post, err := s.PostRepository.FindPostByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Original", post.Title)

	title = "Edited"
	post, err = s.PostRepository.UpdatePost(ctx, "p-1", "u-1", models.PostUpdate{Title: &title, UpdatedAt: ts(5)})
	require.NoError(t, err)
	assert.Equal(t, "Edited", post.Title)
	assert.Equal(t, "body", post.Content)
	assert.Equal(t, ts(5), post.UpdatedAt)
}

func TestMemoryPosts_DeleteCascadesComments(t *testing.T) {
	s, ctx := seedMemory(t)
	_, err := s.PostRepository.CreatePost(ctx, models.Post{ID: "p-1", AuthorID: "u-1"})
	require.NoError(t, err)
	_, err = s.CommentRepository.CreateComment(ctx, models.Comment{ID: "c-1", PostID: "p-1", AuthorID: "u-2"})
	require.NoError(t, err)

	require.NoError(t, s.PostRepository.DeletePost(ctx, "p-1", "u-1"))

	all, err := s.CommentRepository.FindAllComments(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, s.PostRepository.DeletePost(ctx, "p-1", "u-1"), ErrPostNotFound)
}

func TestMemoryComments_ReferentialIntegrity(t *testing.T) {
	s, ctx := seedMemory(t)

	_, err := s.CommentRepository.CreateComment(ctx, models.Comment{ID: "c-1", PostID: "ghost", AuthorID: "u-1"})
	assert.ErrorIs(t, err, ErrReferencedRecordNotFound)

	_, err = s.PostRepository.CreatePost(ctx, models.Post{ID: "p-1", AuthorID: "ghost"})
	assert.ErrorIs(t, err, ErrReferencedRecordNotFound)
}

func TestMemoryComments_AuthorProjection(t *testing.T) {
	s, ctx := seedMemory(t)
	_, err := s.PostRepository.CreatePost(ctx, models.Post{ID: "p-1", AuthorID: "u-1"})
	require.NoError(t, err)
	_, err = s.CommentRepository.CreateComment(ctx, models.Comment{ID: "c-1", Content: "hello", PostID: "p-1", AuthorID: "u-2"})
	require.NoError(t, err)

	all, err := s.CommentRepository.FindAllComments(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.Author{ID: "u-2", Username: "bob"}, all[0].Author)

	byPost, err := s.CommentRepository.FindCommentsByPost(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, &models.Author{ID: "u-2", Username: "bob", Email: "bob@example.com"}, byPost[0].Author)

	authorID, err := s.CommentRepository.FindCommentAuthor(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "u-2", authorID)

	_, err = s.CommentRepository.UpdateComment(ctx, "c-1", "u-1", models.CommentUpdate{Content: "nope"})
	assert.ErrorIs(t, err, ErrCommentNotFound)

	updated, err := s.CommentRepository.UpdateComment(ctx, "c-1", "u-2", models.CommentUpdate{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	require.NoError(t, s.CommentRepository.DeleteComment(ctx, "c-1", "u-2"))
	_, err = s.CommentRepository.FindCommentAuthor(ctx, "c-1")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestMemory_ConcurrentWrites(t *testing.T) {
	s, ctx := seedMemory(t)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.PostRepository.CreatePost(ctx, models.Post{ID: string(rune('A' + i)), AuthorID: "u-1", CreatedAt: ts(i % 60)})
			_, _ = s.PostRepository.FindAllPosts(ctx)
		}()
	}
	wg.Wait()

	posts, err := s.PostRepository.FindAllPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 50)
}
