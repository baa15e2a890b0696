package models

import (
	"time"
)

type Restaurant struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Address        string    `db:"address" json:"address"`
	PhoneNumber    string    `db:"phone_number" json:"phone_number"`
	WhatsappNumber *string   `db:"whatsapp_number" json:"whatsapp_number,omitempty"`
	Description    string    `db:"description" json:"description"`
	CuisineType    string    `db:"cuisine_type" json:"cuisine_type"`
	Latitude       float64   `db:"latitude" json:"latitude"`
	Longitude      float64   `db:"longitude" json:"longitude"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	OwnerID        *int64    `db:"owner_id" json:"owner_id,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type RestaurantCreate struct {
	Name           string  `json:"name" validate:"required"`
	Address        string  `json:"address"`
	PhoneNumber    string  `json:"phone_number"`
	WhatsappNumber *string `json:"whatsapp_number"`
	Description    string  `json:"description"`
	CuisineType    string  `json:"cuisine_type"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	IsActive       *bool   `json:"is_active"`
	OwnerID        *int64  `json:"owner_id"`
}

// RestaurantUpdate carries only the fields the caller supplied; nil means
// "leave untouched". An all-nil update is rejected by the handler.
type RestaurantUpdate struct {
	Name           *string  `json:"name"`
	Address        *string  `json:"address"`
	PhoneNumber    *string  `json:"phone_number"`
	WhatsappNumber *string  `json:"whatsapp_number"`
	Description    *string  `json:"description"`
	CuisineType    *string  `json:"cuisine_type"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	IsActive       *bool    `json:"is_active"`
	OwnerID        *int64   `json:"owner_id"`
}

func (u RestaurantUpdate) IsEmpty() bool {
	return u.Name == nil && u.Address == nil && u.PhoneNumber == nil &&
		u.WhatsappNumber == nil && u.Description == nil && u.CuisineType == nil &&
		u.Latitude == nil && u.Longitude == nil && u.IsActive == nil && u.OwnerID == nil
}

type MenuItem struct {
	ID           int64     `db:"id" json:"id"`
	RestaurantID int64     `db:"restaurant_id" json:"restaurant_id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	Price        float64   `db:"price" json:"price"`
	Category     string    `db:"category" json:"category"`
	ImageURL     string    `db:"image_url" json:"image_url"`
	IsAvailable  bool      `db:"is_available" json:"is_available"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type MenuItemCreate struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	IsAvailable *bool   `json:"is_available"`
}

type MenuItemUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
	IsAvailable *bool    `json:"is_available"`
}

func (u MenuItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil &&
		u.Category == nil && u.ImageURL == nil && u.IsAvailable == nil
}
