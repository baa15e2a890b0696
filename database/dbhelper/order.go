package dbhelper

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/chopexpress/chopexpress/database"
	"github.com/chopexpress/chopexpress/models"
)

const orderColumns = `id, customer_id, restaurant_id, status, total_amount, delivery_address, delivery_latitude, delivery_longitude, payment_method, payment_status, transaction_id, notes, estimated_delivery_time, created_at, updated_at`

const orderItemColumns = `id, order_id, menu_item_id, quantity, price_at_order, notes`

func scanOrder(s scanner) (models.Order, error) {
	var o models.Order
	err := s.Scan(&o.ID, &o.CustomerID, &o.RestaurantID, &o.Status, &o.TotalAmount,
		&o.DeliveryAddress, &o.DeliveryLatitude, &o.DeliveryLongitude, &o.PaymentMethod,
		&o.PaymentStatus, &o.TransactionID, &o.Notes, &o.EstimatedDeliveryTime,
		&o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func scanOrderItem(s scanner) (models.OrderItem, error) {
	var it models.OrderItem
	err := s.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.Quantity, &it.PriceAtOrder, &it.Notes)
	return it, err
}

func (s *Store) ListOrders() ([]models.Order, error) {
	rows, err := s.DB.Query(`SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *Store) GetOrderByID(id int64) (models.Order, error) {
	return scanOrder(s.DB.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
}

func (s *Store) GetOrderItems(orderID int64) ([]models.OrderItem, error) {
	rows, err := s.DB.Query(`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		it, err := scanOrderItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// CreateOrderWithItems inserts the order header and all line items in a
// single transaction, so a failed line insert never leaves an orphaned
// header behind.
func (s *Store) CreateOrderWithItems(order models.Order, items []models.OrderItem) (models.Order, error) {
	var created models.Order

	txErr := database.Tx(s.DB, func(tx *sql.Tx) error {
		var err error
		created, err = scanOrder(tx.QueryRow(`
			INSERT INTO orders (customer_id, restaurant_id, status, total_amount,
				delivery_address, delivery_latitude, delivery_longitude,
				payment_method, payment_status, transaction_id, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING `+orderColumns,
			order.CustomerID, order.RestaurantID, order.Status, order.TotalAmount,
			order.DeliveryAddress, order.DeliveryLatitude, order.DeliveryLongitude,
			order.PaymentMethod, order.PaymentStatus, order.TransactionID, order.Notes))
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for _, item := range items {
			inserted, err := scanOrderItem(tx.QueryRow(`
				INSERT INTO order_items (order_id, menu_item_id, quantity, price_at_order, notes)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING `+orderItemColumns,
				created.ID, item.MenuItemID, item.Quantity, item.PriceAtOrder, item.Notes))
			if err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
			created.Items = append(created.Items, inserted)
		}
		return nil
	})
	if txErr != nil {
		return models.Order{}, txErr
	}
	return created, nil
}

func (s *Store) UpdateOrder(id int64, in models.OrderUpdate) (models.Order, error) {
	var set []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.Status != nil {
		add("status", *in.Status)
	}
	if in.PaymentStatus != nil {
		add("payment_status", *in.PaymentStatus)
	}
	if in.PaymentMethod != nil {
		add("payment_method", *in.PaymentMethod)
	}
	if in.TransactionID != nil {
		add("transaction_id", *in.TransactionID)
	}
	if in.Notes != nil {
		add("notes", *in.Notes)
	}
	if in.EstimatedDeliveryTime != nil {
		add("estimated_delivery_time", *in.EstimatedDeliveryTime)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE orders SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), orderColumns)
	return scanOrder(s.DB.QueryRow(query, args...))
}

func (s *Store) SetOrderStatus(id int64, status models.OrderStatus) (models.Order, error) {
	return scanOrder(s.DB.QueryRow(`
		UPDATE orders SET status = $1 WHERE id = $2
		RETURNING `+orderColumns, status, id))
}
