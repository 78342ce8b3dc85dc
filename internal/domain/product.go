package domain

import "time"

type Product struct {
	ID           int
	Title        string
	Description  string
	ImagePath    *string
	ColorClass   *string
	IsFeatured   bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
