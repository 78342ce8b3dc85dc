package dto

import "time"

type SubmitContactRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject"`
	Message string  `json:"message" validate:"required"`
}

type SubmitContactResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

type ContactSubmissionDTO struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      *string    `json:"phone"`
	Subject    *string    `json:"subject"`
	Message    string     `json:"message"`
	IsRead     bool       `json:"isRead"`
	Status     string     `json:"status"`
	AdminReply *string    `json:"adminReply"`
	RepliedAt  *time.Time `json:"repliedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type MarkContactReadRequest struct {
	IsRead *bool `json:"isRead" validate:"required"`
}

type ReplyContactRequest struct {
	Reply     string `json:"reply" validate:"required"`
	AdminName string `json:"adminName" validate:"required"`
}

type InboxEntryDTO struct {
	Kind      string    `json:"kind"`
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
