package models

import (
	"time"
)

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReadyForPickup OrderStatus = "ready_for_pickup"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
	StatusRefunded       OrderStatus = "refunded"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReadyForPickup,
		StatusOutForDelivery, StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// IsTerminal reports whether an order can no longer be cancelled.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) IsValid() bool {
	return s == PaymentPending || s == PaymentPaid || s == PaymentFailed
}

type Order struct {
	ID                    int64         `db:"id" json:"id"`
	CustomerID            int64         `db:"customer_id" json:"customer_id"`
	RestaurantID          int64         `db:"restaurant_id" json:"restaurant_id"`
	Status                OrderStatus   `db:"status" json:"status"`
	TotalAmount           float64       `db:"total_amount" json:"total_amount"`
	DeliveryAddress       string        `db:"delivery_address" json:"delivery_address"`
	DeliveryLatitude      float64       `db:"delivery_latitude" json:"delivery_latitude"`
	DeliveryLongitude     float64       `db:"delivery_longitude" json:"delivery_longitude"`
	PaymentMethod         string        `db:"payment_method" json:"payment_method"`
	PaymentStatus         PaymentStatus `db:"payment_status" json:"payment_status"`
	TransactionID         string        `db:"transaction_id" json:"transaction_id"`
	Notes                 string        `db:"notes" json:"notes"`
	EstimatedDeliveryTime *time.Time    `db:"estimated_delivery_time" json:"estimated_delivery_time,omitempty"`
	CreatedAt             time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time     `db:"updated_at" json:"updated_at"`
	Items                 []OrderItem   `db:"-" json:"items,omitempty"`
}

type OrderItem struct {
	ID           int64   `db:"id" json:"id"`
	OrderID      int64   `db:"order_id" json:"order_id"`
	MenuItemID   int64   `db:"menu_item_id" json:"menu_item_id"`
	Quantity     int     `db:"quantity" json:"quantity"`
	PriceAtOrder float64 `db:"price_at_order" json:"price_at_order"`
	Notes        string  `db:"notes" json:"notes"`
}

type OrderItemCreate struct {
	MenuItemID int64  `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	Notes      string `json:"notes"`
}

type OrderCreate struct {
	RestaurantID      int64             `json:"restaurant_id" validate:"required"`
	DeliveryAddress   string            `json:"delivery_address"`
	DeliveryLatitude  float64           `json:"delivery_latitude"`
	DeliveryLongitude float64           `json:"delivery_longitude"`
	PaymentMethod     string            `json:"payment_method"`
	Notes             string            `json:"notes"`
	Items             []OrderItemCreate `json:"items" validate:"dive"`
}

type OrderUpdate struct {
	Status                *OrderStatus   `json:"status"`
	PaymentStatus         *PaymentStatus `json:"payment_status"`
	PaymentMethod         *string        `json:"payment_method"`
	TransactionID         *string        `json:"transaction_id"`
	Notes                 *string        `json:"notes"`
	EstimatedDeliveryTime *time.Time     `json:"estimated_delivery_time"`
}

func (u OrderUpdate) IsEmpty() bool {
	return u.Status == nil && u.PaymentStatus == nil && u.PaymentMethod == nil &&
		u.TransactionID == nil && u.Notes == nil && u.EstimatedDeliveryTime == nil
}
