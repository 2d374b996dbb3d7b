package models

import "time"

// Post is a blog entry owned by its author.
type Post struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID string `json:"author_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Author is populated by reads that include the author relation.
	Author *Author `json:"author,omitempty"`

	// Comments is populated by reads that include the comments relation,
	// newest first.
	Comments []Comment `json:"comments,omitempty"`
}

// PostUpdate carries a partial update of a post. Nil fields are left as is.
type PostUpdate struct {
	Title   *string
	Content *string

	UpdatedAt time.Time
}
