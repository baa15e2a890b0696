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

func TestCreateMenuItem(t *testing.T) {
	t.Run("valid payload under active restaurant returns 201", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM restaurants WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(restaurantRows(1, "Chez Awa", true))
		mock.ExpectQuery(`INSERT INTO menu_items`).
			WillReturnRows(menuItemRows(10, 1, "Ndolé", 2500, true))

		rec := doRequest(svr, http.MethodPost, "/api/restaurants/1/menu-items",
			map[string]interface{}{"name": "Ndolé", "price": 2500})

		require.Equal(t, http.StatusCreated, rec.Code)
		var item models.MenuItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
		assert.Equal(t, int64(10), item.ID)
		assert.Equal(t, 2500.0, item.Price)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inactive restaurant yields 404 regardless of payload", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM restaurants WHERE id = \$1`).
			WithArgs(int64(2)).
			WillReturnRows(restaurantRows(2, "Closed", false))

		rec := doRequest(svr, http.MethodPost, "/api/restaurants/2/menu-items",
			map[string]interface{}{"name": "Ndolé", "price": 2500})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nonexistent restaurant yields 404", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM restaurants WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		rec := doRequest(svr, http.MethodPost, "/api/restaurants/42/menu-items",
			map[string]interface{}{"name": "Ndolé", "price": 2500})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-positive price is rejected", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM restaurants WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(restaurantRows(1, "Chez Awa", true))

		rec := doRequest(svr, http.MethodPost, "/api/restaurants/1/menu-items",
			map[string]interface{}{"name": "Ndolé", "price": -5})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateMenuItem(t *testing.T) {
	t.Run("parent inactive yields 403", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM menu_items WHERE id = \$1`).
			WithArgs(int64(10)).
			WillReturnRows(menuItemRows(10, 2, "Ndolé", 2500, true))
		mock.ExpectQuery(`SELECT (.+) FROM restaurants WHERE id = \$1`).
			WithArgs(int64(2)).
			WillReturnRows(restaurantRows(2, "Closed", false))

		rec := doRequest(svr, http.MethodPut, "/api/menu-items/10",
			map[string]interface{}{"price": 3000})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("partial update touches only supplied fields", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM menu_items WHERE id = \$1`).
			WithArgs(int64(10)).
			WillReturnRows(menuItemRows(10, 1, "Ndolé", 2500, true))
		mock.ExpectQuery(`SELECT (.+) FROM restaurants WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(restaurantRows(1, "Chez Awa", true))
		mock.ExpectQuery(`UPDATE menu_items SET price = \$1 WHERE id = \$2 RETURNING`).
			WithArgs(3000.0, int64(10)).
			WillReturnRows(menuItemRows(10, 1, "Ndolé", 3000, true))

		rec := doRequest(svr, http.MethodPut, "/api/menu-items/10",
			map[string]interface{}{"price": 3000})

		require.Equal(t, http.StatusOK, rec.Code)
		var item models.MenuItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
		assert.Equal(t, 3000.0, item.Price)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty payload is rejected", func(t *testing.T) {
		svr, mock, db := newTestServer(t)
		defer db.Close()

		rec := doRequest(svr, http.MethodPut, "/api/menu-items/10", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteMenuItem(t *testing.T) {
	svr, mock, db := newTestServer(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE menu_items SET is_available = FALSE WHERE id = \$1 RETURNING id`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	rec := doRequest(svr, http.MethodDelete, "/api/menu-items/10", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
