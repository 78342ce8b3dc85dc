package domain

import "time"

type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
