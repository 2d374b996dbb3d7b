package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/internal/store"
	"github.com/GIT-Saikat/Blog-Application/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices_MissingVersion(t *testing.T) {
	cfg := testAppConfig()
	cfg.Version = ""

	_, err := NewServices(store.NewMemoryStorages(store.NewMemoryDB()), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestNewServices_Flow(t *testing.T) {
	services, err := NewServices(store.NewMemoryStorages(store.NewMemoryDB()), testAppConfig(), logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	user, err := services.AuthService.RegisterUser(ctx, models.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret",
	})
	require.NoError(t, err)

	_, err = services.AuthService.RegisterUser(ctx, models.RegisterRequest{
		Username: "alice", Email: "other@example.com", Password: "secret",
	})
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)

	loggedIn, err := services.AuthService.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	token, err := services.AuthService.CreateToken(ctx, loggedIn)
	require.NoError(t, err)
	parsed, err := services.AuthService.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, user.ID, parsed.UserID)

	post, err := services.PostService.CreatePost(ctx, user.ID, models.CreatePostRequest{Title: "Hello", Content: "First post"})
	require.NoError(t, err)

	comment, err := services.CommentService.CreateComment(ctx, user.ID, models.CreateCommentRequest{Content: "Nice", PostID: post.ID})
	require.NoError(t, err)

	got, err := services.PostService.GetPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, comment.ID, got.Comments[0].ID)

	assert.ErrorIs(t, services.PostService.DeletePost(ctx, "someone-else", post.ID), ErrNotAuthor)
	require.NoError(t, services.PostService.DeletePost(ctx, user.ID, post.ID))
	assert.ErrorIs(t, services.PostService.DeletePost(ctx, user.ID, post.ID), store.ErrPostNotFound)

	assert.Equal(t, "test", services.AppInfoService.GetAppVersion(ctx))
}

func TestNewServices_LogsConstruction(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	_, err := NewServices(store.NewMemoryStorages(store.NewMemoryDB()), testAppConfig(), log)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "creating auth service")
	assert.Contains(t, out, "creating post service")
	assert.Contains(t, out, "creating comment service")
}
