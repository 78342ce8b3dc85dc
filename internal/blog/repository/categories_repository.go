package repository

import (
	"context"
	"database/sql"
	"fmt"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/errors"
)

type MySQLBlogCategoryRepository struct {
	db *sql.DB
}

func NewMySQLBlogCategoryRepository(db *sql.DB) *MySQLBlogCategoryRepository {
	return &MySQLBlogCategoryRepository{db: db}
}

func (r *MySQLBlogCategoryRepository) List(ctx context.Context) ([]domain.BlogCategory, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, slug FROM blog_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying blog categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.BlogCategory
	for rows.Next() {
		var c domain.BlogCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("scanning blog category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blog category rows: %w", err)
	}

	return categories, nil
}

func (r *MySQLBlogCategoryRepository) Insert(ctx context.Context, c domain.BlogCategory) (int, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO blog_categories (name, slug) VALUES (?, ?)`, c.Name, c.Slug)
	if err != nil {
		return 0, fmt.Errorf("inserting blog category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}
	return int(id), nil
}

func (r *MySQLBlogCategoryRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blog_categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting blog category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("blog category with id %d not found", id))
	}
	return nil
}
