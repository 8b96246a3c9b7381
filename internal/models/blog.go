package models

import (
	"time"
)

// BlogType distinguishes written posts from video posts.
type BlogType string

const (
	BlogTypeText  BlogType = "TEXT"
	BlogTypeVideo BlogType = "VIDEO"
)

// Blog is a published article or video post.
type Blog struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Type      BlogType  `json:"type"`
	Content   string    `json:"content"`
	CoverURL  *string   `json:"coverUrl,omitempty"`
	VideoURL  *string   `json:"videoUrl,omitempty"`
	Published bool      `json:"published"`
	ID        int64     `json:"id"`
}

// Video is a standalone gallery video, ordered for display.
type Video struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Title     string    `json:"title"`
	VideoLink string    `json:"videoLink"`
	Order     int       `json:"order"`
	ID        int64     `json:"id"`
}
