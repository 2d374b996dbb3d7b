package validators

import (
	"errors"
	"strings"
	"testing"

	"github.com/GIT-Saikat/Blog-Application/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func issueFields(is Issues) []string {
	out := make([]string, 0, len(is))
	for _, i := range is {
		out = append(out, i.Field)
	}
	return out
}

func TestRegisterSchema(t *testing.T) {
	valid := models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret"}

	tests := []struct {
		name       string
		mutate     func(r *models.RegisterRequest)
		wantFields []string
	}{
		{name: "valid", mutate: func(*models.RegisterRequest) {}},
		{name: "username too short", mutate: func(r *models.RegisterRequest) { r.Username = "al" }, wantFields: []string{FieldUsername}},
		{name: "username too long", mutate: func(r *models.RegisterRequest) { r.Username = strings.Repeat("a", 21) }, wantFields: []string{FieldUsername}},
		{name: "username at lower bound", mutate: func(r *models.RegisterRequest) { r.Username = "abc" }},
		{name: "username at upper bound", mutate: func(r *models.RegisterRequest) { r.Username = strings.Repeat("a", 20) }},
		{name: "multibyte username counted in runes", mutate: func(r *models.RegisterRequest) { r.Username = "ñññ" }},
		{name: "missing email", mutate: func(r *models.RegisterRequest) { r.Email = "" }, wantFields: []string{FieldEmail}},
		{name: "malformed email", mutate: func(r *models.RegisterRequest) { r.Email = "not-an-email" }, wantFields: []string{FieldEmail}},
		{name: "display name email rejected", mutate: func(r *models.RegisterRequest) { r.Email = "Alice <alice@example.com>" }, wantFields: []string{FieldEmail}},
		{name: "missing password", mutate: func(r *models.RegisterRequest) { r.Password = "" }, wantFields: []string{FieldPassword}},
		{name: "password at byte limit", mutate: func(r *models.RegisterRequest) { r.Password = strings.Repeat("p", 72) }},
		{name: "password over byte limit", mutate: func(r *models.RegisterRequest) { r.Password = strings.Repeat("p", 73) }, wantFields: []string{FieldPassword}},
		{name: "multibyte password counted in bytes", mutate: func(r *models.RegisterRequest) { r.Password = strings.Repeat("ñ", 37) }, wantFields: []string{FieldPassword}},
		{
			name:       "everything missing",
			mutate:     func(r *models.RegisterRequest) { *r = models.RegisterRequest{} },
			wantFields: []string{FieldUsername, FieldEmail, FieldPassword},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			res := RegisterSchema.Validate(req)

			if tt.wantFields == nil {
				require.True(t, res.IsValid(), res.Issues())
				assert.Equal(t, req, res.Data())
				assert.NoError(t, res.Err())
				return
			}
			require.False(t, res.IsValid())
			assert.Equal(t, tt.wantFields, issueFields(res.Issues()))
			assert.Zero(t, res.Data())
		})
	}
}

func TestLoginSchema(t *testing.T) {
	tests := []struct {
		name       string
		req        models.LoginRequest
		wantFields []string
	}{
		{name: "username only", req: models.LoginRequest{Username: "alice", Password: "p"}},
		{name: "email only", req: models.LoginRequest{Email: "alice@example.com", Password: "p"}},
		{name: "both present", req: models.LoginRequest{Username: "alice", Email: "whatever", Password: "p"}},
		{name: "no identifier", req: models.LoginRequest{Password: "p"}, wantFields: []string{FieldUsername}},
		{name: "bad email", req: models.LoginRequest{Email: "nope", Password: "p"}, wantFields: []string{FieldEmail}},
		{name: "short username", req: models.LoginRequest{Username: "al", Password: "p"}, wantFields: []string{FieldUsername}},
		{name: "no password", req: models.LoginRequest{Username: "alice"}, wantFields: []string{FieldPassword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := LoginSchema.Validate(tt.req)
			if tt.wantFields == nil {
				assert.True(t, res.IsValid(), res.Issues())
				return
			}
			assert.Equal(t, tt.wantFields, issueFields(res.Issues()))
		})
	}
}

func TestCreatePostSchema(t *testing.T) {
	tests := []struct {
		name       string
		req        models.CreatePostRequest
		wantFields []string
	}{
		{name: "valid", req: models.CreatePostRequest{Title: "Hello", Content: "World"}},
		{name: "long content allowed", req: models.CreatePostRequest{Title: "Hello", Content: strings.Repeat("x", 5000)}},
		{name: "title too long", req: models.CreatePostRequest{Title: strings.Repeat("t", 21), Content: "World"}, wantFields: []string{FieldTitle}},
		{name: "content too short", req: models.CreatePostRequest{Title: "Hello", Content: "hi"}, wantFields: []string{FieldContent}},
		{name: "empty", req: models.CreatePostRequest{}, wantFields: []string{FieldTitle, FieldContent}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CreatePostSchema.Validate(tt.req)
			if tt.wantFields == nil {
				assert.True(t, res.IsValid(), res.Issues())
				return
			}
			assert.Equal(t, tt.wantFields, issueFields(res.Issues()))
		})
	}
}

func TestUpdatePostSchema(t *testing.T) {
	tests := []struct {
		name       string
		req        models.UpdatePostRequest
		wantFields []string
	}{
		{name: "title only", req: models.UpdatePostRequest{Title: strPtr("New title")}},
		{name: "content only", req: models.UpdatePostRequest{Content: strPtr("New content")}},
		{name: "both", req: models.UpdatePostRequest{Title: strPtr("abc"), Content: strPtr("def")}},
		{name: "neither", req: models.UpdatePostRequest{}, wantFields: []string{FieldTitle}},
		{name: "empty title provided", req: models.UpdatePostRequest{Title: strPtr("")}, wantFields: []string{FieldTitle}},
		{name: "short content", req: models.UpdatePostRequest{Content: strPtr("ab")}, wantFields: []string{FieldContent}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := UpdatePostSchema.Validate(tt.req)
			if tt.wantFields == nil {
				assert.True(t, res.IsValid(), res.Issues())
				return
			}
			assert.Equal(t, tt.wantFields, issueFields(res.Issues()))
		})
	}
}

func TestCreateCommentSchema(t *testing.T) {
	tests := []struct {
		name       string
		req        models.CreateCommentRequest
		wantFields []string
	}{
		{name: "valid", req: models.CreateCommentRequest{Content: "Nice post", PostID: "p1"}},
		{name: "content at max", req: models.CreateCommentRequest{Content: strings.Repeat("c", 500), PostID: "p1"}},
		{name: "content over max", req: models.CreateCommentRequest{Content: strings.Repeat("c", 501), PostID: "p1"}, wantFields: []string{FieldContent}},
		{name: "missing post id", req: models.CreateCommentRequest{Content: "Nice post"}, wantFields: []string{FieldPostID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CreateCommentSchema.Validate(tt.req)
			if tt.wantFields == nil {
				assert.True(t, res.IsValid(), res.Issues())
				return
			}
			assert.Equal(t, tt.wantFields, issueFields(res.Issues()))
		})
	}
}

func TestUpdateCommentSchema(t *testing.T) {
	assert.True(t, UpdateCommentSchema.Validate(models.UpdateCommentRequest{Content: strPtr("edited")}).IsValid())

	res := UpdateCommentSchema.Validate(models.UpdateCommentRequest{})
	assert.Equal(t, []string{FieldContent}, issueFields(res.Issues()))

	res = UpdateCommentSchema.Validate(models.UpdateCommentRequest{Content: strPtr("no")})
	assert.Equal(t, []string{FieldContent}, issueFields(res.Issues()))
}

func TestSchema_ValidateFields_Scoping(t *testing.T) {
	req := models.RegisterRequest{Username: "a", Email: "bad"}

	res := RegisterSchema.ValidateFields(req, FieldPassword)
	assert.Equal(t, []string{FieldPassword}, issueFields(res.Issues()))

	res = RegisterSchema.ValidateFields(req, "nickname")
	require.False(t, res.IsValid())
	assert.Equal(t, []string{"nickname"}, issueFields(res.Issues()))
}

func TestSchema_Fields(t *testing.T) {
	assert.Equal(t, []string{FieldTitle, FieldContent}, UpdatePostSchema.Fields())
	assert.Equal(t, "update post", UpdatePostSchema.Name())
}

func TestResult_Err(t *testing.T) {
	res := Invalid[models.LoginRequest](Issue{Field: FieldPassword, Message: msgRequired})

	err := res.Err()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	var issues Issues
	require.True(t, errors.As(err, &issues))
	assert.Equal(t, Issues{{Field: FieldPassword, Message: msgRequired}}, issues)
	assert.Contains(t, err.Error(), "password is required")
}

func TestResult_InvalidWithoutIssues(t *testing.T) {
	res := Invalid[int]()

	assert.False(t, res.IsValid())
	assert.Len(t, res.Issues(), 1)
}
