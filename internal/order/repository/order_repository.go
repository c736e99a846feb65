package repository

import (
	"context"
	"database/sql"
	"fmt"

	"stockroom/internal/domain"
	"stockroom/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error) {
	query := `INSERT INTO Orders (customerName, totalAmount, status) VALUES (?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, order.CustomerName, order.TotalAmount, order.Status)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `
		SELECT id, customerName, totalAmount, status, createdAt
		FROM Orders
		WHERE id = ?
	`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.CustomerName, &order.TotalAmount, &order.Status, &order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	items, err := r.findItems(ctx, []uint{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]

	return &order, nil
}

// ListAll returns every order, newest first, with items attached.
func (r *MySQLOrderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, customerName, totalAmount, status, createdAt
		FROM Orders
		ORDER BY createdAt DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	var ids []uint
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.TotalAmount, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	items, err := r.findItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}

	return orders, nil
}

// UpdateStatus performs the conditional write of the transition engine:
// the row is only touched while it still holds expectedCurrent. Zero rows
// with the order present means another caller won the race.
func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id uint, newStatus, expectedCurrent domain.OrderStatus) error {
	query := `UPDATE Orders SET status = ? WHERE id = ? AND status = ?`

	result, err := r.db.ExecContext(ctx, query, newStatus, id, expectedCurrent)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		var exists bool
		err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM Orders WHERE id = ?)`, id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking order existence: %w", err)
		}
		if !exists {
			return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
		}
		return errors.NewConflictError("order status changed concurrently")
	}

	return nil
}

func (r *MySQLOrderRepository) Delete(ctx context.Context, id uint) error {
	query := `DELETE FROM Orders WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}

func (r *MySQLOrderRepository) findItems(ctx context.Context, orderIDs []uint) (map[uint][]domain.OrderItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	placeholders := ""
	args := make([]interface{}, 0, len(orderIDs))
	for i, id := range orderIDs {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "?"
		args = append(args, id)
	}

	query := fmt.Sprintf(`
		SELECT id, orderId, productId, name, quantity, price
		FROM OrderItems
		WHERE orderId IN (%s)
		ORDER BY id`,
		placeholders,
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	items := make(map[uint][]domain.OrderItem)
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		items[it.OrderID] = append(items[it.OrderID], it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return items, nil
}
