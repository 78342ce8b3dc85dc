package dto

import "time"

type SiteServiceDTO struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	IconName     *string   `json:"iconName"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SaveSiteServiceRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	IconName     *string `json:"iconName"`
	DisplayOrder int     `json:"displayOrder"`
}

type PartnerDTO struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	LogoPath     *string   `json:"logoPath"`
	WebsiteURL   *string   `json:"websiteUrl"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SavePartnerRequest struct {
	Name         string  `json:"name" validate:"required"`
	LogoPath     *string `json:"logoPath"`
	WebsiteURL   *string `json:"websiteUrl"`
	DisplayOrder int     `json:"displayOrder"`
}

type MissionPointDTO struct {
	ID           int       `json:"id"`
	Text         string    `json:"text"`
	IconName     *string   `json:"iconName"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SaveMissionPointRequest struct {
	Text         string  `json:"text" validate:"required"`
	IconName     *string `json:"iconName"`
	DisplayOrder int     `json:"displayOrder"`
}
