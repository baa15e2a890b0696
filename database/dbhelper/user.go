package dbhelper

import (
	"database/sql"

	"github.com/chopexpress/chopexpress/models"
)

const userColumns = `id, phone_number, name, created_at, updated_at`

func scanUser(s scanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.PhoneNumber, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (s *Store) GetUserByID(id int64) (models.User, error) {
	return scanUser(s.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (s *Store) GetUserByPhone(phone string) (models.User, error) {
	return scanUser(s.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE phone_number = $1`, phone))
}

func (s *Store) ListUsers() ([]models.User, error) {
	rows, err := s.DB.Query(`SELECT ` + userColumns + ` FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) CreateUser(phone, name string) (models.User, error) {
	return scanUser(s.DB.QueryRow(`
		INSERT INTO users (phone_number, name)
		VALUES ($1, $2)
		RETURNING `+userColumns, phone, name))
}

// GetOrCreateUserByPhone resolves the customer for an inbound message,
// inserting a row on first contact. Concurrent first contacts race on the
// unique phone constraint; the loser's insert fails and is surfaced as-is.
func (s *Store) GetOrCreateUserByPhone(phone, name string) (models.User, error) {
	user, err := s.GetUserByPhone(phone)
	if err == nil {
		return user, nil
	}
	if err != sql.ErrNoRows {
		return models.User{}, err
	}
	return s.CreateUser(phone, name)
}
