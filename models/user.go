package models

import (
	"time"
)

// User is a customer identified by their WhatsApp phone number. Rows are
// created lazily on first inbound message or explicitly through the admin API.
type User struct {
	ID          int64     `db:"id" json:"id"`
	PhoneNumber string    `db:"phone_number" json:"phone_number"`
	Name        string    `db:"name" json:"name"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type UserCreate struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Name        string `json:"name"`
}
