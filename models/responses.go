package models

// MessageResponse is the minimal response body. Every failure carries at
// least a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is returned when a payload fails validation.
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  []ValidationIssue `json:"errors,omitempty"`
}

// ValidationIssue describes a single rejected field.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type CreatePostResponse struct {
	Message string `json:"message"`
	PostID  string `json:"postId"`
}

type ListPostsResponse struct {
	Message  string `json:"message"`
	AllPosts []Post `json:"allPosts"`
}

type PostResponse struct {
	Message string `json:"message"`
	Post    Post   `json:"post"`
}

type CreateCommentResponse struct {
	Message   string `json:"message"`
	CommentID string `json:"commentId"`
}

type ListCommentsResponse struct {
	Message     string    `json:"message"`
	AllComments []Comment `json:"allComments"`
}

type PostCommentsResponse struct {
	Message  string    `json:"message"`
	Comments []Comment `json:"comments"`
}

type CommentResponse struct {
	Message string  `json:"message"`
	Comment Comment `json:"comment"`
}
