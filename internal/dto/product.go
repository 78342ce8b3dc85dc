package dto

import "time"

type ProductDTO struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImagePath    *string   `json:"imagePath"`
	ColorClass   *string   `json:"colorClass"`
	IsFeatured   bool      `json:"isFeatured"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SaveProductRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	ImagePath    *string `json:"imagePath"`
	ColorClass   *string `json:"colorClass"`
	IsFeatured   bool    `json:"isFeatured"`
	DisplayOrder int     `json:"displayOrder"`
}
