package handlers_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chopexpress/chopexpress/models"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid payload returns 201", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("237650000001", "Awa").
			WillReturnRows(userRows(1, "237650000001", "Awa"))

		rec := doRequest(svr, http.MethodPost, "/api/users",
			map[string]interface{}{"phone_number": "237650000001", "name": "Awa"})

		require.Equal(t, http.StatusCreated, rec.Code)
		var user models.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, int64(1), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate phone number is a conflict", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("237650000001", "").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_phone_number_key"})

		rec := doRequest(svr, http.MethodPost, "/api/users",
			map[string]interface{}{"phone_number": "237650000001"})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing phone number is rejected", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		rec := doRequest(svr, http.MethodPost, "/api/users",
			map[string]interface{}{"name": "no phone"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetUser(t *testing.T) {
	t.Run("unknown id is 404", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnError(sql.ErrNoRows)

		rec := doRequest(svr, http.MethodGet, "/api/users/7", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("existing user is returned", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(userRows(1, "237650000001", "Awa"))

		rec := doRequest(svr, http.MethodGet, "/api/users/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var user models.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "237650000001", user.PhoneNumber)
	})
}
