package validators

import (
	"context"

	"github.com/GIT-Saikat/Blog-Application/models"
)

// BlogValidator dispatches blog payloads to their schemas.
type BlogValidator struct{}

func NewBlogValidator() Validator {
	return &BlogValidator{}
}

func (v *BlogValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return RegisterSchema.ValidateFields(value, fields...).Err()
	case *models.RegisterRequest:
		return validatePtr(RegisterSchema, value, fields)

	case models.LoginRequest:
		return LoginSchema.ValidateFields(value, fields...).Err()
	case *models.LoginRequest:
		return validatePtr(LoginSchema, value, fields)

	case models.CreatePostRequest:
		return CreatePostSchema.ValidateFields(value, fields...).Err()
	case *models.CreatePostRequest:
		return validatePtr(CreatePostSchema, value, fields)

	case models.UpdatePostRequest:
		return UpdatePostSchema.ValidateFields(value, fields...).Err()
	case *models.UpdatePostRequest:
		return validatePtr(UpdatePostSchema, value, fields)

	case models.CreateCommentRequest:
		return CreateCommentSchema.ValidateFields(value, fields...).Err()
	case *models.CreateCommentRequest:
		return validatePtr(CreateCommentSchema, value, fields)

	case models.UpdateCommentRequest:
		return UpdateCommentSchema.ValidateFields(value, fields...).Err()
	case *models.UpdateCommentRequest:
		return validatePtr(UpdateCommentSchema, value, fields)

	default:
		return ErrUnsupportedType
	}
}

func validatePtr[T any](s *Schema[T], value *T, fields []string) error {
	if value == nil {
		return Invalid[T]().Err()
	}
	return s.ValidateFields(*value, fields...).Err()
}
