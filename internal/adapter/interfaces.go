// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed Go client for the blog application's
// REST API.
//
// The primary abstraction is [ServerAdapter]; [NewHTTPServerAdapter] is its
// resty-based implementation. Non-2xx responses are mapped to the sentinel
// errors in errors.go so that callers can use [errors.Is] (e.g. [ErrForbidden]
// for 403, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/GIT-Saikat/Blog-Application/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a running blog server. Implementations keep the
// bearer token obtained by Login and attach it to every protected request.
type ServerAdapter interface {
	// SetToken stores the bearer token used by subsequent protected requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before a Login.
	Token() string

	// Register creates an account and returns its id. It does not log in.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	CreatePost(ctx context.Context, req models.CreatePostRequest) (string, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	UpdatePost(ctx context.Context, postID string, req models.UpdatePostRequest) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error

	CreateComment(ctx context.Context, req models.CreateCommentRequest) (string, error)
	ListComments(ctx context.Context) ([]models.Comment, error)
	ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error)
	UpdateComment(ctx context.Context, commentID string, req models.UpdateCommentRequest) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
