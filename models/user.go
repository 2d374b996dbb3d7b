package models

import "time"

// User represents a registered account. Users are created once at
// registration and are never mutated or deleted afterwards.
type User struct {
	// ID is the opaque unique identifier assigned at registration.
	ID string `json:"id"`

	// Username is unique across all users, 3 to 20 characters long.
	Username string `json:"username"`

	// Email is unique across all users.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Author is the public projection of a [User] embedded into posts and
// comments. Email is only filled where the operation exposes it.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}
