package dbhelper

import (
	"fmt"
	"strings"

	"github.com/chopexpress/chopexpress/models"
)

const restaurantColumns = `id, name, address, phone_number, whatsapp_number, description, cuisine_type, latitude, longitude, is_active, owner_id, created_at, updated_at`

func scanRestaurant(s scanner) (models.Restaurant, error) {
	var r models.Restaurant
	err := s.Scan(&r.ID, &r.Name, &r.Address, &r.PhoneNumber, &r.WhatsappNumber,
		&r.Description, &r.CuisineType, &r.Latitude, &r.Longitude, &r.IsActive,
		&r.OwnerID, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (s *Store) ListActiveRestaurants() ([]models.Restaurant, error) {
	rows, err := s.DB.Query(`SELECT ` + restaurantColumns + ` FROM restaurants WHERE is_active = TRUE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

func (s *Store) GetRestaurantByID(id int64) (models.Restaurant, error) {
	return scanRestaurant(s.DB.QueryRow(`SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id))
}

func (s *Store) CreateRestaurant(in models.RestaurantCreate) (models.Restaurant, error) {
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	return scanRestaurant(s.DB.QueryRow(`
		INSERT INTO restaurants (name, address, phone_number, whatsapp_number, description,
			cuisine_type, latitude, longitude, is_active, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+restaurantColumns,
		in.Name, in.Address, in.PhoneNumber, in.WhatsappNumber, in.Description,
		in.CuisineType, in.Latitude, in.Longitude, isActive, in.OwnerID))
}

// UpdateRestaurant applies only the supplied fields. Returns sql.ErrNoRows
// when the restaurant does not exist.
func (s *Store) UpdateRestaurant(id int64, in models.RestaurantUpdate) (models.Restaurant, error) {
	var set []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.Name != nil {
		add("name", *in.Name)
	}
	if in.Address != nil {
		add("address", *in.Address)
	}
	if in.PhoneNumber != nil {
		add("phone_number", *in.PhoneNumber)
	}
	if in.WhatsappNumber != nil {
		add("whatsapp_number", *in.WhatsappNumber)
	}
	if in.Description != nil {
		add("description", *in.Description)
	}
	if in.CuisineType != nil {
		add("cuisine_type", *in.CuisineType)
	}
	if in.Latitude != nil {
		add("latitude", *in.Latitude)
	}
	if in.Longitude != nil {
		add("longitude", *in.Longitude)
	}
	if in.IsActive != nil {
		add("is_active", *in.IsActive)
	}
	if in.OwnerID != nil {
		add("owner_id", *in.OwnerID)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE restaurants SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), restaurantColumns)
	return scanRestaurant(s.DB.QueryRow(query, args...))
}

// DeactivateRestaurant soft-deletes; calling it on an already inactive
// restaurant is a no-op. Returns sql.ErrNoRows when absent.
func (s *Store) DeactivateRestaurant(id int64) error {
	var updated int64
	return s.DB.QueryRow(`UPDATE restaurants SET is_active = FALSE WHERE id = $1 RETURNING id`, id).Scan(&updated)
}
