package entity

import (
	"time"
)

// Post belongs to exactly one author; AuthorID is set at creation and
// never reassigned.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	AuthorID  int64     `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostWithAuthor is a post joined with the public projection of its author.
type PostWithAuthor struct {
	Post
	Author PublicUser `json:"author"`
}
