package domain

import "time"

type BlogPost struct {
	ID            int
	Slug          string
	Title         string
	Excerpt       *string
	Content       string
	ImagePath     *string
	CategoryID    *int
	AuthorID      *int
	PublishedDate *time.Time
	IsPublished   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined display fields.
	CategoryName *string
	AuthorName   *string
}

type BlogCategory struct {
	ID   int
	Name string
	Slug string
}
