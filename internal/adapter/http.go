package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/internal/utils"
	"github.com/GIT-Saikat/Blog-Application/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// address may omit the scheme, in which case http is assumed. A
// non-positive timeout leaves requests unbounded except by their context.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request starts a JSON request bound to ctx.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

// authorized is request with the stored bearer token attached.
func (h *httpServerAdapter) authorized(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) do(resp *resty.Response, err error, op string) error {
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Int("status", resp.StatusCode()).Send()
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	var result models.RegisterResponse
	resp, err := h.request(ctx).SetBody(req).SetResult(&result).Post("/register")
	if err = h.do(resp, err, "register"); err != nil {
		return "", err
	}

	return result.UserID, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var result models.LoginResponse
	resp, err := h.request(ctx).SetBody(req).SetResult(&result).Post("/login")
	if err = h.do(resp, err, "login"); err != nil {
		return "", err
	}

	token := result.Token
	if token == "" {
		token = utils.ParseAuthorizationHeader(resp.Header().Get("Authorization"))
	}
	h.SetToken(token)

	return token, nil
}

func (h *httpServerAdapter) CreatePost(ctx context.Context, req models.CreatePostRequest) (string, error) {
	var result models.CreatePostResponse
	resp, err := h.authorized(ctx).SetBody(req).SetResult(&result).Post("/posts")
	if err = h.do(resp, err, "create post"); err != nil {
		return "", err
	}

	return result.PostID, nil
}

func (h *httpServerAdapter) ListPosts(ctx context.Context) ([]models.Post, error) {
	var result models.ListPostsResponse
	resp, err := h.authorized(ctx).SetResult(&result).Get("/posts")
	if err = h.do(resp, err, "list posts"); err != nil {
		return nil, err
	}

	return result.AllPosts, nil
}

func (h *httpServerAdapter) GetPost(ctx context.Context, postID string) (models.Post, error) {
	var result models.PostResponse
	resp, err := h.authorized(ctx).
		SetPathParam("postId", postID).
		SetResult(&result).
		Get("/posts/{postId}")
	if err = h.do(resp, err, "get post"); err != nil {
		return models.Post{}, err
	}

	return result.Post, nil
}

func (h *httpServerAdapter) UpdatePost(ctx context.Context, postID string, req models.UpdatePostRequest) (models.Post, error) {
	var result models.PostResponse
	resp, err := h.authorized(ctx).
		SetPathParam("postId", postID).
		SetBody(req).
		SetResult(&result).
		Put("/posts/{postId}")
	if err = h.do(resp, err, "update post"); err != nil {
		return models.Post{}, err
	}

	return result.Post, nil
}

func (h *httpServerAdapter) DeletePost(ctx context.Context, postID string) error {
	resp, err := h.authorized(ctx).
		SetPathParam("postId", postID).
		Delete("/posts/{postId}")
	return h.do(resp, err, "delete post")
}

func (h *httpServerAdapter) CreateComment(ctx context.Context, req models.CreateCommentRequest) (string, error) {
	var result models.CreateCommentResponse
	resp, err := h.authorized(ctx).SetBody(req).SetResult(&result).Post("/comments")
	if err = h.do(resp, err, "create comment"); err != nil {
		return "", err
	}

	return result.CommentID, nil
}

func (h *httpServerAdapter) ListComments(ctx context.Context) ([]models.Comment, error) {
	var result models.ListCommentsResponse
	resp, err := h.authorized(ctx).SetResult(&result).Get("/comments")
	if err = h.do(resp, err, "list comments"); err != nil {
		return nil, err
	}

	return result.AllComments, nil
}

func (h *httpServerAdapter) ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	var result models.PostCommentsResponse
	resp, err := h.authorized(ctx).
		SetPathParam("postId", postID).
		SetResult(&result).
		Get("/comments/post/{postId}")
	if err = h.do(resp, err, "list comments of post"); err != nil {
		return nil, err
	}

	return result.Comments, nil
}

func (h *httpServerAdapter) UpdateComment(ctx context.Context, commentID string, req models.UpdateCommentRequest) (models.Comment, error) {
	var result models.CommentResponse
	resp, err := h.authorized(ctx).
		SetPathParam("commentId", commentID).
		SetBody(req).
		SetResult(&result).
		Put("/comments/{commentId}")
	if err = h.do(resp, err, "update comment"); err != nil {
		return models.Comment{}, err
	}

	return result.Comment, nil
}

func (h *httpServerAdapter) DeleteComment(ctx context.Context, commentID string) error {
	resp, err := h.authorized(ctx).
		SetPathParam("commentId", commentID).
		Delete("/comments/{commentId}")
	return h.do(resp, err, "delete comment")
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).SetHeader("Accept", "text/plain").Get("/version")
	if err = h.do(resp, err, "version"); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
