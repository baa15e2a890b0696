package dbhelper

import (
	"fmt"
	"strings"

	"github.com/chopexpress/chopexpress/models"
)

const menuItemColumns = `id, restaurant_id, name, description, price, category, image_url, is_available, created_at, updated_at`

func scanMenuItem(s scanner) (models.MenuItem, error) {
	var m models.MenuItem
	err := s.Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Description, &m.Price,
		&m.Category, &m.ImageURL, &m.IsAvailable, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (s *Store) ListAvailableMenuItems(restaurantID int64) ([]models.MenuItem, error) {
	rows, err := s.DB.Query(`
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE restaurant_id = $1 AND is_available = TRUE`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (s *Store) GetMenuItemByID(id int64) (models.MenuItem, error) {
	return scanMenuItem(s.DB.QueryRow(`SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id))
}

func (s *Store) CreateMenuItem(restaurantID int64, in models.MenuItemCreate) (models.MenuItem, error) {
	isAvailable := true
	if in.IsAvailable != nil {
		isAvailable = *in.IsAvailable
	}

	return scanMenuItem(s.DB.QueryRow(`
		INSERT INTO menu_items (restaurant_id, name, description, price, category, image_url, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+menuItemColumns,
		restaurantID, in.Name, in.Description, in.Price, in.Category, in.ImageURL, isAvailable))
}

func (s *Store) UpdateMenuItem(id int64, in models.MenuItemUpdate) (models.MenuItem, error) {
	var set []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.Name != nil {
		add("name", *in.Name)
	}
	if in.Description != nil {
		add("description", *in.Description)
	}
	if in.Price != nil {
		add("price", *in.Price)
	}
	if in.Category != nil {
		add("category", *in.Category)
	}
	if in.ImageURL != nil {
		add("image_url", *in.ImageURL)
	}
	if in.IsAvailable != nil {
		add("is_available", *in.IsAvailable)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE menu_items SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), menuItemColumns)
	return scanMenuItem(s.DB.QueryRow(query, args...))
}

// MarkMenuItemUnavailable soft-deletes; idempotent. Returns sql.ErrNoRows
// when absent.
func (s *Store) MarkMenuItemUnavailable(id int64) error {
	var updated int64
	return s.DB.QueryRow(`UPDATE menu_items SET is_available = FALSE WHERE id = $1 RETURNING id`, id).Scan(&updated)
}
