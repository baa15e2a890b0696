package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/chopexpress/chopexpress/models"
	"github.com/chopexpress/chopexpress/utils"
)

// CreateOrder validates the customer, the restaurant and every line item,
// computes the total from current menu prices and persists the header plus
// items atomically. price_at_order is snapshotted here and never recomputed.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	customerID, err := strconv.ParseInt(r.URL.Query().Get("current_user_id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "current_user_id query parameter is required")
		return
	}

	var in models.OrderCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Store.GetUserByID(customerID); err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "customer not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch customer")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch customer")
		return
	}

	restaurant, err := h.Store.GetRestaurantByID(in.RestaurantID)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "restaurant not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch restaurant")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch restaurant")
		return
	}
	if !restaurant.IsActive {
		utils.RespondError(w, http.StatusBadRequest, "restaurant is not active")
		return
	}

	if len(in.Items) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "order must contain at least one item")
		return
	}

	var total float64
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		menuItem, err := h.Store.GetMenuItemByID(line.MenuItemID)
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, fmt.Sprintf("menu item %d not found", line.MenuItemID))
			return
		} else if err != nil {
			logrus.WithError(err).Error("failed to fetch menu item")
			utils.RespondError(w, http.StatusInternalServerError, "failed to fetch menu item")
			return
		}
		if !menuItem.IsAvailable {
			utils.RespondError(w, http.StatusBadRequest, fmt.Sprintf("menu item %d is not available", line.MenuItemID))
			return
		}
		if menuItem.RestaurantID != in.RestaurantID {
			utils.RespondError(w, http.StatusBadRequest,
				fmt.Sprintf("menu item %d does not belong to restaurant %d", line.MenuItemID, in.RestaurantID))
			return
		}

		total += menuItem.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			MenuItemID:   line.MenuItemID,
			Quantity:     line.Quantity,
			PriceAtOrder: menuItem.Price,
			Notes:        line.Notes,
		})
	}

	order := models.Order{
		CustomerID:        customerID,
		RestaurantID:      in.RestaurantID,
		Status:            models.StatusPending,
		TotalAmount:       total,
		DeliveryAddress:   in.DeliveryAddress,
		DeliveryLatitude:  in.DeliveryLatitude,
		DeliveryLongitude: in.DeliveryLongitude,
		PaymentMethod:     in.PaymentMethod,
		PaymentStatus:     models.PaymentPending,
		Notes:             in.Notes,
	}

	created, err := h.Store.CreateOrderWithItems(order, items)
	if err != nil {
		logrus.WithError(err).Error("failed to create order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to create order")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	orders, err := h.Store.ListOrders()
	if err != nil {
		logrus.WithError(err).Error("failed to list orders")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	id, err := utils.PathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.Store.GetOrderByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch order")
		return
	}

	items, err := h.Store.GetOrderItems(id)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch order items")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch order items")
		return
	}
	order.Items = items
	utils.RespondJSON(w, http.StatusOK, order)
}

// UpdateOrder applies a partial update; any supplied status value is
// accepted as long as it names a real status, no transition check is made.
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	id, err := utils.PathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var in models.OrderUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.IsEmpty() {
		utils.RespondError(w, http.StatusBadRequest, "no fields to update")
		return
	}
	if in.Status != nil && !in.Status.IsValid() {
		utils.RespondError(w, http.StatusBadRequest, fmt.Sprintf("invalid status %q", *in.Status))
		return
	}
	if in.PaymentStatus != nil && !in.PaymentStatus.IsValid() {
		utils.RespondError(w, http.StatusBadRequest, fmt.Sprintf("invalid payment status %q", *in.PaymentStatus))
		return
	}

	order, err := h.Store.UpdateOrder(id, in)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to update order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to update order")
		return
	}
	utils.RespondJSON(w, http.StatusOK, order)
}

// CancelOrder transitions the order to cancelled. Orders already delivered
// or cancelled are terminal: the request fails with 400 and the current
// snapshot is attached in the X-Current-Order header.
func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	id, err := utils.PathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.Store.GetOrderByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch order")
		return
	}

	if order.Status.IsTerminal() {
		if snapshot, err := json.Marshal(order); err == nil {
			w.Header().Set("X-Current-Order", string(snapshot))
		}
		utils.RespondError(w, http.StatusBadRequest,
			fmt.Sprintf("order in status %q cannot be cancelled", order.Status))
		return
	}

	cancelled, err := h.Store.SetOrderStatus(id, models.StatusCancelled)
	if err != nil {
		logrus.WithError(err).Error("failed to cancel order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to cancel order")
		return
	}
	utils.RespondJSON(w, http.StatusOK, cancelled)
}
