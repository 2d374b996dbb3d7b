package utils

import "github.com/google/uuid"

// IDGenerator issues identifiers for new users, posts and comments.
//
// Version 7 UUIDs are time ordered, so identifiers of rows created later
// sort after earlier ones. Stores use that to break created_at ties.
type IDGenerator struct{}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random v4 UUID
// if the v7 clock source fails.
func (g *IDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
