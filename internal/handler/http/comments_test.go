package http

import (
	"net/http"
	"testing"

	"github.com/GIT-Saikat/Blog-Application/internal/service"
	"github.com/GIT-Saikat/Blog-Application/internal/store"
	"github.com/GIT-Saikat/Blog-Application/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateComment(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()

	req := models.CreateCommentRequest{Content: "Nice post", PostID: "p1"}
	m.comments.EXPECT().CreateComment(gomock.Any(), testUserID, req).Return(models.Comment{ID: "c1"}, nil)

	rec := serve(t, h, http.MethodPost, "/comments", req, testToken)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody[models.CreateCommentResponse](t, rec)
	assert.Equal(t, "c1", body.CommentID)
}

func TestCreateComment_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"unknown post", store.ErrReferencedRecordNotFound, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.expectAuthorized()
			m.comments.EXPECT().CreateComment(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Comment{}, tt.err)

			rec := serve(t, h, http.MethodPost, "/comments", models.CreateCommentRequest{Content: "hi"}, testToken)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestListComments(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()

	m.comments.EXPECT().ListComments(gomock.Any()).Return([]models.Comment{
		{ID: "c2", Author: &models.Author{ID: "u1", Username: "alice"}},
		{ID: "c1", Author: &models.Author{ID: "u2", Username: "bob"}},
	}, nil)

	rec := serve(t, h, http.MethodGet, "/comments", nil, testToken)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[models.ListCommentsResponse](t, rec)
	require.Len(t, body.AllComments, 2)
	assert.Equal(t, "c2", body.AllComments[0].ID)
	assert.NotContains(t, rec.Body.String(), `"email"`)
}

func TestListCommentsByPost(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()

	m.comments.EXPECT().ListCommentsByPost(gomock.Any(), "p1").Return([]models.Comment{
		{ID: "c1", PostID: "p1", Author: &models.Author{ID: "u1", Username: "alice", Email: "alice@example.com"}},
	}, nil)
	m.comments.EXPECT().ListCommentsByPost(gomock.Any(), "p2").Return(nil, nil)

	rec := serve(t, h, http.MethodGet, "/comments/post/p1", nil, testToken)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[models.PostCommentsResponse](t, rec)
	require.Len(t, body.Comments, 1)
	assert.Equal(t, "alice@example.com", body.Comments[0].Author.Email)

	rec = serve(t, h, http.MethodGet, "/comments/post/p2", nil, testToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"comments":[]`)
}

func TestUpdateComment(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"owner", nil, http.StatusOK},
		{"not the author", service.ErrNotAuthor, http.StatusForbidden},
		{"missing", store.ErrCommentNotFound, http.StatusNotFound},
		{"too long", service.ErrInvalidDataProvided, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.expectAuthorized()

			content := "edited"
			m.comments.EXPECT().UpdateComment(gomock.Any(), testUserID, "c1", models.UpdateCommentRequest{Content: &content}).
				Return(models.Comment{ID: "c1", Content: content}, tt.err)

			rec := serve(t, h, http.MethodPut, "/comments/c1", models.UpdateCommentRequest{Content: &content}, testToken)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				body := decodeBody[models.CommentResponse](t, rec)
				assert.Equal(t, "edited", body.Comment.Content)
			}
		})
	}
}

func TestDeleteComment(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()

	m.comments.EXPECT().DeleteComment(gomock.Any(), testUserID, "c1").Return(nil)
	m.comments.EXPECT().DeleteComment(gomock.Any(), testUserID, "c2").Return(store.ErrCommentNotFound)

	rec := serve(t, h, http.MethodDelete, "/comments/c1", nil, testToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(t, h, http.MethodDelete, "/comments/c2", nil, testToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
