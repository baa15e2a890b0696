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

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	users, err := h.Store.ListUsers()
	if err != nil {
		logrus.WithError(err).Error("failed to list users")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	var in models.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Store.CreateUser(in.PhoneNumber, in.Name)
	if err != nil {
		if dbhelper.IsUniqueViolation(err) {
			utils.RespondError(w, http.StatusConflict, "user with this phone number already exists")
			return
		}
		logrus.WithError(err).Error("failed to create user")
		utils.RespondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, user)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	id, err := utils.PathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.Store.GetUserByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "user not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch user")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, user)
}
