package blogs

import "time"

type CreateBlogRequest struct {
	Title          string   `json:"title" form:"title" validate:"required,min=1,max=100"`
	Body           string   `json:"body" form:"body" validate:"required,min=10"`
	Tags           []string `json:"tags" form:"tags" validate:"omitempty,dive,min=1,max=50"`
	CategoryIDs    []string `json:"category_ids" form:"category_ids" validate:"omitempty,dive,required"`
	SEOTitle       string   `json:"seo_title" form:"seo_title" validate:"omitempty,max=100"`
	SEODescription string   `json:"seo_description" form:"seo_description" validate:"omitempty,max=200"`
}

type UpdateBlogRequest struct {
	Title          string   `json:"title" form:"title" validate:"omitempty,min=1,max=100"`
	Body           string   `json:"body" form:"body" validate:"omitempty,min=10"`
	Tags           []string `json:"tags" form:"tags" validate:"omitempty,dive,min=1,max=50"`
	CategoryIDs    []string `json:"category_ids" form:"category_ids" validate:"omitempty,dive,required"`
	SEOTitle       string   `json:"seo_title" form:"seo_title" validate:"omitempty,max=100"`
	SEODescription string   `json:"seo_description" form:"seo_description" validate:"omitempty,max=200"`
	ImageURL       string   `json:"image_url" form:"image_url" validate:"omitempty"`
}

type SearchBlogsRequest struct {
	Query      string
	Tag        string
	CategoryID string
	Page       int
	Limit      int
}

type BlogResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	ImageURL       string    `json:"image_url,omitempty"`
	Author         string    `json:"author"`
	Views          int64     `json:"views"`
	IsPublished    bool      `json:"is_published"`
	Tags           []string  `json:"tags"`
	CategoryIDs    []string  `json:"category_ids"`
	LikeCount      int       `json:"like_count"`
	SEOTitle       string    `json:"seo_title,omitempty"`
	SEODescription string    `json:"seo_description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type BlogListResponse struct {
	Blogs []BlogResponse `json:"blogs"`
	Total int            `json:"total"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"omitempty,max=200"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name" validate:"omitempty,min=1,max=50"`
	Description string `json:"description" validate:"omitempty,max=200"`
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Author      string    `json:"author,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
