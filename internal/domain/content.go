package domain

import "time"

// Site content entities share a display_order driven shape; they are owned by
// the content module and read-only everywhere else.

type SiteService struct {
	ID           int
	Title        string
	Description  string
	IconName     *string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Partner struct {
	ID           int
	Name         string
	LogoPath     *string
	WebsiteURL   *string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type MissionPoint struct {
	ID           int
	Text         string
	IconName     *string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
