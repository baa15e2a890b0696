package handlers_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chopexpress/chopexpress/models"
)

func TestCreateRestaurant(t *testing.T) {
	t.Run("valid payload returns 201 with generated fields", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO restaurants`).
			WillReturnRows(restaurantRows(1, "Chez Awa", true))

		rec := doRequest(svr, http.MethodPost, "/api/restaurants",
			map[string]interface{}{"name": "Chez Awa", "is_active": true})

		require.Equal(t, http.StatusCreated, rec.Code)
		var created models.Restaurant
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, "Chez Awa", created.Name)
		assert.True(t, created.IsActive)
		assert.False(t, created.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		rec := doRequest(svr, http.MethodPost, "/api/restaurants",
			map[string]interface{}{"description": "no name"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetRestaurant(t *testing.T) {
	t.Run("inactive restaurant reads as absent", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM restaurants WHERE id = \$1`).
			WithArgs(int64(5)).
			WillReturnRows(restaurantRows(5, "Closed", false))

		rec := doRequest(svr, http.MethodGet, "/api/restaurants/5", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM restaurants WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		rec := doRequest(svr, http.MethodGet, "/api/restaurants/99", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateRestaurant(t *testing.T) {
	t.Run("empty payload is rejected", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		rec := doRequest(svr, http.MethodPut, "/api/restaurants/1", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("only supplied fields are updated", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		mock.ExpectQuery(`UPDATE restaurants SET name = \$1 WHERE id = \$2 RETURNING`).
			WithArgs("Chez Awa 2", int64(1)).
			WillReturnRows(restaurantRows(1, "Chez Awa 2", true))

		rec := doRequest(svr, http.MethodPut, "/api/restaurants/1",
			map[string]interface{}{"name": "Chez Awa 2"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteRestaurant(t *testing.T) {
	t.Run("soft delete returns 204", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		mock.ExpectQuery(`UPDATE restaurants SET is_active = FALSE WHERE id = \$1 RETURNING id`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		rec := doRequest(svr, http.MethodDelete, "/api/restaurants/1", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleting an already inactive restaurant is a no-op success", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		// The flag flip matches the row whether or not it was active.
		mock.ExpectQuery(`UPDATE restaurants SET is_active = FALSE WHERE id = \$1 RETURNING id`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		rec := doRequest(svr, http.MethodDelete, "/api/restaurants/1", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestListRestaurants(t *testing.T) {
	svr, mock, db := newTestServer(t)
	defer db.Close()

	rows := restaurantRows(1, "Chez Awa", true).AddRow(
		2, "Mama Put", "", "", nil, "", "", 0.0, 0.0, true, nil, testTime, testTime)
	mock.ExpectQuery(`SELECT (.+) FROM restaurants WHERE is_active = TRUE`).
		WillReturnRows(rows)

	rec := doRequest(svr, http.MethodGet, "/api/restaurants", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Restaurants []models.Restaurant `json:"restaurants"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Restaurants, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
