package repository

import (
	"context"
	"database/sql"
	"fmt"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/errors"
)

type MySQLProductRepository struct {
	db *sql.DB
}

func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

const productColumns = `id, title, description, image_path, color_class, is_featured, display_order, created_at, updated_at`

func (r *MySQLProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY display_order, id`, productColumns)
	return r.queryProducts(ctx, query)
}

func (r *MySQLProductRepository) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE is_featured = TRUE ORDER BY display_order, id`, productColumns)
	return r.queryProducts(ctx, query)
}

func (r *MySQLProductRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.ImagePath, &p.ColorClass,
			&p.IsFeatured, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *MySQLProductRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = ?`, productColumns)

	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.ImagePath, &p.ColorClass,
		&p.IsFeatured, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product: %w", err)
	}

	return &p, nil
}

func (r *MySQLProductRepository) Insert(ctx context.Context, p domain.Product) (int, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO products (title, description, image_path, color_class, is_featured, display_order)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.Title, p.Description, p.ImagePath, p.ColorClass, p.IsFeatured, p.DisplayOrder)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}
	return int(id), nil
}

func (r *MySQLProductRepository) Update(ctx context.Context, id int, p domain.Product) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET title = ?, description = ?, image_path = ?, color_class = ?,
		    is_featured = ?, display_order = ?, updated_at = NOW()
		WHERE id = ?
	`, p.Title, p.Description, p.ImagePath, p.ColorClass, p.IsFeatured, p.DisplayOrder, id)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	return requireRow(result, id)
}

func (r *MySQLProductRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	return requireRow(result, id)
}

func requireRow(result sql.Result, id int) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	return nil
}
