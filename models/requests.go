package models

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /login. Exactly one lookup path is
// taken: by username when it is set, by email otherwise.
type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostRequest is the body of PUT /posts/{postId}.
// Absent fields are left untouched.
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// CreateCommentRequest is the body of POST /comments.
type CreateCommentRequest struct {
	Content string `json:"content"`
	PostID  string `json:"post_id"`
}

// UpdateCommentRequest is the body of PUT /comments/{commentId}.
type UpdateCommentRequest struct {
	Content *string `json:"content,omitempty"`
}
