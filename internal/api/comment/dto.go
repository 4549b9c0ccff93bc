package comments

import "time"

type CreateCommentRequest struct {
	Body string `json:"body" validate:"required,min=5,max=1000"`
}

type CommentResponse struct {
	ID        string            `json:"id"`
	Body      string            `json:"body"`
	Author    string            `json:"author,omitempty"`
	BlogID    string            `json:"blog_id,omitempty"`
	ParentID  string            `json:"parent_id,omitempty"`
	Replies   []CommentResponse `json:"replies,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Total    int               `json:"total"`
}
