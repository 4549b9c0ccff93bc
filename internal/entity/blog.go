package entity

import "time"

type Blog struct {
	ID             string    `db:"id"`
	Title          string    `db:"title"`
	Body           string    `db:"body"`
	ImageURL       string    `db:"image_url"`
	Author         string    `db:"author"`
	Views          int64     `db:"views"`
	IsPublished    bool      `db:"is_published"`
	Tags           []string  `db:"tags"`
	SEOTitle       string    `db:"seo_title"`
	SEODescription string    `db:"seo_description"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`

	// Resolved on read, not stored on the blogs row.
	CategoryIDs []string `db:"-"`
	LikeCount   int      `db:"-"`
}

type BlogCategory struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Author      string    `db:"author"`
	CreatedAt   time.Time `db:"created_at"`
}
