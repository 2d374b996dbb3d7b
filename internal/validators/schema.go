package validators

import (
	"fmt"
	"net/mail"
	"slices"
	"unicode/utf8"
)

// fieldRule checks one named field of T and returns an issue message, or an
// empty string when the field is acceptable.
type fieldRule[T any] struct {
	field string
	check func(T) string
}

// Schema describes the constraints of one operation's payload.
// Rules run in declaration order and every failing rule yields an [Issue].
type Schema[T any] struct {
	name  string
	rules []fieldRule[T]
}

func newSchema[T any](name string) *Schema[T] {
	return &Schema[T]{name: name}
}

func (s *Schema[T]) rule(field string, check func(T) string) *Schema[T] {
	s.rules = append(s.rules, fieldRule[T]{field: field, check: check})
	return s
}

// Name returns the operation the schema belongs to.
func (s *Schema[T]) Name() string {
	return s.name
}

// Fields lists the field names the schema knows about.
func (s *Schema[T]) Fields() []string {
	fields := make([]string, 0, len(s.rules))
	for _, r := range s.rules {
		if !slices.Contains(fields, r.field) {
			fields = append(fields, r.field)
		}
	}
	return fields
}

// Validate checks payload against every rule.
func (s *Schema[T]) Validate(payload T) Result[T] {
	return s.ValidateFields(payload)
}

// ValidateFields checks payload against the rules of the given fields only.
// With no fields every rule runs. A field unknown to the schema is reported
// as an issue of its own.
func (s *Schema[T]) ValidateFields(payload T, fields ...string) Result[T] {
	var issues Issues

	for _, f := range fields {
		if !slices.Contains(s.Fields(), f) {
			issues = append(issues, Issue{Field: f, Message: ErrUnknownField.Error()})
		}
	}

	for _, r := range s.rules {
		if len(fields) > 0 && !slices.Contains(fields, r.field) {
			continue
		}
		if msg := r.check(payload); msg != "" {
			issues = append(issues, Issue{Field: r.field, Message: msg})
		}
	}

	if len(issues) > 0 {
		return Invalid[T](issues...)
	}
	return Valid(payload)
}

// checkLength returns the issue message for a string outside [min, max]
// code points. max <= 0 means unbounded.
func checkLength(value string, min, max int) string {
	n := utf8.RuneCountInString(value)
	if n < min {
		return fmt.Sprintf(msgTooShort, min)
	}
	if max > 0 && n > max {
		return fmt.Sprintf(msgTooLong, max)
	}
	return ""
}

func requiredString(value string, min, max int) string {
	if value == "" {
		return msgRequired
	}
	return checkLength(value, min, max)
}

func optionalString(value *string, min, max int) string {
	if value == nil {
		return ""
	}
	return checkLength(*value, min, max)
}

func checkEmail(value string) string {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return msgInvalidEmail
	}
	return ""
}
