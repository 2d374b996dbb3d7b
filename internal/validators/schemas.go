package validators

import (
	"fmt"

	"github.com/GIT-Saikat/Blog-Application/models"
)

// Field names reported in issues and accepted for field-level scoping.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldPostID   = "post_id"
)

// Length bounds, counted in Unicode code points.
const (
	UsernameMinLen = 3
	UsernameMaxLen = 20

	TitleMinLen = 3
	TitleMaxLen = 20

	PostContentMinLen = 3

	CommentContentMinLen = 3
	CommentContentMaxLen = 500
)

// PasswordMaxBytes is the longest input bcrypt accepts. It is counted in
// bytes, not code points.
const PasswordMaxBytes = 72

// RegisterSchema validates POST /register payloads.
var RegisterSchema = newSchema[models.RegisterRequest]("register").
	rule(FieldUsername, func(r models.RegisterRequest) string {
		return requiredString(r.Username, UsernameMinLen, UsernameMaxLen)
	}).
	rule(FieldEmail, func(r models.RegisterRequest) string {
		if r.Email == "" {
			return msgRequired
		}
		return checkEmail(r.Email)
	}).
	rule(FieldPassword, func(r models.RegisterRequest) string {
		if r.Password == "" {
			return msgRequired
		}
		if len(r.Password) > PasswordMaxBytes {
			return fmt.Sprintf(msgTooLongBytes, PasswordMaxBytes)
		}
		return ""
	})

// LoginSchema validates POST /login payloads. One of username or email
// must be present.
var LoginSchema = newSchema[models.LoginRequest]("login").
	rule(FieldUsername, func(r models.LoginRequest) string {
		if r.Username == "" && r.Email == "" {
			return msgNeedIdentifier
		}
		if r.Username == "" {
			return ""
		}
		return checkLength(r.Username, UsernameMinLen, UsernameMaxLen)
	}).
	rule(FieldEmail, func(r models.LoginRequest) string {
		if r.Email == "" || r.Username != "" {
			return ""
		}
		return checkEmail(r.Email)
	}).
	rule(FieldPassword, func(r models.LoginRequest) string {
		if r.Password == "" {
			return msgRequired
		}
		return ""
	})

// CreatePostSchema validates POST /posts payloads.
var CreatePostSchema = newSchema[models.CreatePostRequest]("create post").
	rule(FieldTitle, func(r models.CreatePostRequest) string {
		return requiredString(r.Title, TitleMinLen, TitleMaxLen)
	}).
	rule(FieldContent, func(r models.CreatePostRequest) string {
		return requiredString(r.Content, PostContentMinLen, 0)
	})

// UpdatePostSchema validates PUT /posts/{postId} payloads. Both fields are
// optional but at least one must be supplied.
var UpdatePostSchema = newSchema[models.UpdatePostRequest]("update post").
	rule(FieldTitle, func(r models.UpdatePostRequest) string {
		if r.Title == nil && r.Content == nil {
			return fmt.Sprintf(msgNoUpdateFields, "title, content")
		}
		return optionalString(r.Title, TitleMinLen, TitleMaxLen)
	}).
	rule(FieldContent, func(r models.UpdatePostRequest) string {
		return optionalString(r.Content, PostContentMinLen, 0)
	})

// CreateCommentSchema validates POST /comments payloads.
var CreateCommentSchema = newSchema[models.CreateCommentRequest]("create comment").
	rule(FieldContent, func(r models.CreateCommentRequest) string {
		return requiredString(r.Content, CommentContentMinLen, CommentContentMaxLen)
	}).
	rule(FieldPostID, func(r models.CreateCommentRequest) string {
		if r.PostID == "" {
			return msgRequired
		}
		return ""
	})

// UpdateCommentSchema validates PUT /comments/{commentId} payloads. Content
// is the only mutable field, so it is required.
var UpdateCommentSchema = newSchema[models.UpdateCommentRequest]("update comment").
	rule(FieldContent, func(r models.UpdateCommentRequest) string {
		if r.Content == nil {
			return fmt.Sprintf(msgNoUpdateFields, "content")
		}
		return checkLength(*r.Content, CommentContentMinLen, CommentContentMaxLen)
	})
