package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/chopexpress/chopexpress/database/dbhelper"
	"github.com/chopexpress/chopexpress/models"
	"github.com/chopexpress/chopexpress/utils"
)

func (h *Handler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	restaurants, err := h.Store.ListActiveRestaurants()
	if err != nil {
		logrus.WithError(err).Error("failed to list restaurants")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch restaurants")
		return
	}
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"restaurants": restaurants})
}

func (h *Handler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	var in models.RestaurantCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	restaurant, err := h.Store.CreateRestaurant(in)
	if err != nil {
		if dbhelper.IsUniqueViolation(err) {
			utils.RespondError(w, http.StatusConflict, "restaurant with this whatsapp number already exists")
			return
		}
		logrus.WithError(err).Error("failed to create restaurant")
		utils.RespondError(w, http.StatusInternalServerError, "failed to create restaurant")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, restaurant)
}

func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	id, err := utils.PathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	restaurant, err := h.Store.GetRestaurantByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "restaurant not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch restaurant")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch restaurant")
		return
	}
	if !restaurant.IsActive {
		utils.RespondError(w, http.StatusNotFound, "restaurant not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	id, err := utils.PathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	var in models.RestaurantUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.IsEmpty() {
		utils.RespondError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	restaurant, err := h.Store.UpdateRestaurant(id, in)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "restaurant not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to update restaurant")
		utils.RespondError(w, http.StatusInternalServerError, "failed to update restaurant")
		return
	}
	utils.RespondJSON(w, http.StatusOK, restaurant)
}

// DeleteRestaurant soft-deletes by flipping is_active; deleting an already
// inactive restaurant succeeds as a no-op.
func (h *Handler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	id, err := utils.PathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	err = h.Store.DeactivateRestaurant(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "restaurant not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to deactivate restaurant")
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete restaurant")
		return
	}
	utils.RespondJSON(w, http.StatusNoContent, nil)
}
