package dbhelper

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Store wraps the shared connection pool. Handlers receive a constructed
// Store instead of reaching for a package-level handle.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// failure (code 23505), e.g. a duplicate phone number.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
