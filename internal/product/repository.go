package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"stockroom/internal/domain"
	"stockroom/internal/errors"
)

type MySQLProductRepository struct {
	db *sql.DB
}

func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

const productColumns = `id, name, price, stock, minStock, description, createdAt, updatedAt`

func (r *MySQLProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM Products ORDER BY id`, productColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// FindByIDs returns the products matching ids; missing ids are simply
// absent from the result.
func (r *MySQLProductRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, 0, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}

	query := fmt.Sprintf(`SELECT %s FROM Products WHERE id IN (%s)`,
		productColumns, strings.Join(placeholders, ", "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *MySQLProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM Products WHERE id = ?`, productColumns)

	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock, &p.MinStock, &p.Description,
		&p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return &p, nil
}

func (r *MySQLProductRepository) Insert(ctx context.Context, p domain.Product) (uint, error) {
	query := `INSERT INTO Products (name, price, stock, minStock, description) VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, p.Name, p.Price, p.Stock, p.MinStock, p.Description)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLProductRepository) Update(ctx context.Context, p domain.Product) error {
	query := `UPDATE Products SET name = ?, price = ?, stock = ?, minStock = ?, description = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, p.Name, p.Price, p.Stock, p.MinStock, p.Description, p.ID)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", p.ID))
	}

	return nil
}

func (r *MySQLProductRepository) UpdateStock(ctx context.Context, id uint, stock int) error {
	query := `UPDATE Products SET stock = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, stock, id)
	if err != nil {
		return fmt.Errorf("updating product stock: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}

	return nil
}

func (r *MySQLProductRepository) Delete(ctx context.Context, id uint) error {
	query := `DELETE FROM Products WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}

	return nil
}

func scanProducts(rows *sql.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Price, &p.Stock, &p.MinStock, &p.Description,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}
