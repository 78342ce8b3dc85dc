package dto

import "time"

type BlogPostDTO struct {
	ID            int        `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Excerpt       *string    `json:"excerpt"`
	Content       string     `json:"content"`
	ImagePath     *string    `json:"imagePath"`
	CategoryID    *int       `json:"categoryId"`
	CategoryName  *string    `json:"categoryName"`
	AuthorID      *int       `json:"authorId"`
	AuthorName    *string    `json:"authorName"`
	PublishedDate *time.Time `json:"publishedDate"`
	IsPublished   bool       `json:"isPublished"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type SaveBlogPostRequest struct {
	Slug          string     `json:"slug" validate:"required"`
	Title         string     `json:"title" validate:"required"`
	Excerpt       *string    `json:"excerpt"`
	Content       string     `json:"content" validate:"required"`
	ImagePath     *string    `json:"imagePath"`
	CategoryID    *int       `json:"categoryId"`
	AuthorID      *int       `json:"authorId"`
	PublishedDate *time.Time `json:"publishedDate"`
	IsPublished   bool       `json:"isPublished"`
}

type BlogCategoryDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type SaveBlogCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}
