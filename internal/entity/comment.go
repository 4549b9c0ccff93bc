package entity

import "time"

// Comment lives in exactly one container: BlogID for top-level comments,
// ParentID for replies. The unused field is empty.
type Comment struct {
	ID        string    `db:"id"`
	Body      string    `db:"body"`
	Author    string    `db:"author"`
	BlogID    string    `db:"blog_id"`
	ParentID  string    `db:"parent_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
