package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/chopexpress/chopexpress/models"
	"github.com/chopexpress/chopexpress/utils"
)

// activeRestaurant fetches the parent restaurant and writes a 404 when it is
// missing or inactive. Reports false when the response has been written.
func (h *Handler) activeRestaurant(w http.ResponseWriter, id int64) (models.Restaurant, bool) {
	restaurant, err := h.Store.GetRestaurantByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "restaurant not found")
		return models.Restaurant{}, false
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch restaurant")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch restaurant")
		return models.Restaurant{}, false
	}
	if !restaurant.IsActive {
		utils.RespondError(w, http.StatusNotFound, "restaurant not found")
		return models.Restaurant{}, false
	}
	return restaurant, true
}

func (h *Handler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	restaurantID, err := utils.PathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}
	if _, ok := h.activeRestaurant(w, restaurantID); !ok {
		return
	}

	items, err := h.Store.ListAvailableMenuItems(restaurantID)
	if err != nil {
		logrus.WithError(err).Error("failed to list menu items")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch menu items")
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"menu_items": items})
}

func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	restaurantID, err := utils.PathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}
	if _, ok := h.activeRestaurant(w, restaurantID); !ok {
		return
	}

	var in models.MenuItemCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Store.CreateMenuItem(restaurantID, in)
	if err != nil {
		logrus.WithError(err).Error("failed to create menu item")
		utils.RespondError(w, http.StatusInternalServerError, "failed to create menu item")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, item)
}

func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	id, err := utils.PathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	item, err := h.Store.GetMenuItemByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "menu item not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch menu item")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch menu item")
		return
	}

	restaurant, err := h.Store.GetRestaurantByID(item.RestaurantID)
	if err != nil || !restaurant.IsActive {
		utils.RespondError(w, http.StatusNotFound, "menu item not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, item)
}

func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	id, err := utils.PathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	var in models.MenuItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.IsEmpty() {
		utils.RespondError(w, http.StatusBadRequest, "no fields to update")
		return
	}
	if err := validate.Struct(in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Store.GetMenuItemByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "menu item not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch menu item")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch menu item")
		return
	}

	restaurant, err := h.Store.GetRestaurantByID(item.RestaurantID)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch parent restaurant")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch restaurant")
		return
	}
	if !restaurant.IsActive {
		utils.RespondError(w, http.StatusForbidden, "restaurant is not active")
		return
	}

	updated, err := h.Store.UpdateMenuItem(id, in)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "menu item not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to update menu item")
		utils.RespondError(w, http.StatusInternalServerError, "failed to update menu item")
		return
	}
	utils.RespondJSON(w, http.StatusOK, updated)
}

// DeleteMenuItem soft-deletes by flipping is_available; idempotent.
func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	id, err := utils.PathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	err = h.Store.MarkMenuItemUnavailable(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "menu item not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to mark menu item unavailable")
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete menu item")
		return
	}
	utils.RespondJSON(w, http.StatusNoContent, nil)
}
