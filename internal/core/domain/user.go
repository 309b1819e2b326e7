package domain

import "time"

type User struct {
	ID           int64
	Email        string `validate:"omitempty,email,max=255"`
	FullName     string `validate:"max=255"`
	PasswordHash string
	CreatedAt    time.Time
}
