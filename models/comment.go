package models

import "time"

// Comment is a reply attached to a post and owned by its author.
type Comment struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	PostID   string `json:"post_id"`
	AuthorID string `json:"author_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Author is populated by reads that include the author relation.
	Author *Author `json:"author,omitempty"`
}

// CommentUpdate carries the new content of a comment.
type CommentUpdate struct {
	Content   string
	UpdatedAt time.Time
}
