package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GIT-Saikat/Blog-Application/internal/config"
	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/internal/mock"
	"github.com/GIT-Saikat/Blog-Application/internal/service"
	"github.com/GIT-Saikat/Blog-Application/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken  = "valid-token"
	testUserID = "user-1"
)

type testMocks struct {
	auth     *mock.MockAuthService
	posts    *mock.MockPostService
	comments *mock.MockCommentService
	appInfo  *mock.MockAppInfoService
}

// newTestHandler builds a Handler whose services are strict gomock mocks:
// any call without an expectation fails the test.
func newTestHandler(t *testing.T) (*Handler, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		auth:     mock.NewMockAuthService(ctrl),
		posts:    mock.NewMockPostService(ctrl),
		comments: mock.NewMockCommentService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:    m.auth,
		PostService:    m.posts,
		CommentService: m.comments,
		AppInfoService: m.appInfo,
	}

	return NewHandler(services, config.Server{AllowedOrigins: []string{"*"}}, logger.Nop()), m
}

// expectAuthorized makes testToken resolve to testUserID.
func (m *testMocks) expectAuthorized() {
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: testUserID}, nil).AnyTimes()
}

// serve runs one request through the full router.
func serve(t *testing.T, h *Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

func newPreflight(path, origin string) *http.Request {
	req := httptest.NewRequest(http.MethodOptions, path, nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	return req
}

func serveRequest(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}
