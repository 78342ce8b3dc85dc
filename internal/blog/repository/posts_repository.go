package repository

import (
	"context"
	"database/sql"
	"fmt"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/errors"
)

type MySQLBlogPostRepository struct {
	db *sql.DB
}

func NewMySQLBlogPostRepository(db *sql.DB) *MySQLBlogPostRepository {
	return &MySQLBlogPostRepository{db: db}
}

const postSelect = `
	SELECT p.id, p.slug, p.title, p.excerpt, p.content, p.image_path,
	       p.category_id, p.author_id, p.published_date, p.is_published,
	       p.created_at, p.updated_at, c.name, u.name
	FROM blog_posts p
	LEFT JOIN blog_categories c ON c.id = p.category_id
	LEFT JOIN users u ON u.id = p.author_id
`

func (r *MySQLBlogPostRepository) List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	query := postSelect
	if publishedOnly {
		query += ` WHERE p.is_published = TRUE`
	}
	query += ` ORDER BY p.published_date DESC, p.id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying blog posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blog post rows: %w", err)
	}

	return posts, nil
}

func (r *MySQLBlogPostRepository) FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	row := r.db.QueryRowContext(ctx, postSelect+` WHERE p.slug = ?`, slug)

	post, err := scanPost(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("blog post %q not found", slug))
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *MySQLBlogPostRepository) FindByID(ctx context.Context, id int) (*domain.BlogPost, error) {
	row := r.db.QueryRowContext(ctx, postSelect+` WHERE p.id = ?`, id)

	post, err := scanPost(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("blog post with id %d not found", id))
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func scanPost(scan func(dest ...interface{}) error) (*domain.BlogPost, error) {
	var post domain.BlogPost
	err := scan(
		&post.ID, &post.Slug, &post.Title, &post.Excerpt, &post.Content, &post.ImagePath,
		&post.CategoryID, &post.AuthorID, &post.PublishedDate, &post.IsPublished,
		&post.CreatedAt, &post.UpdatedAt, &post.CategoryName, &post.AuthorName,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning blog post: %w", err)
	}
	return &post, nil
}

func (r *MySQLBlogPostRepository) Insert(ctx context.Context, post domain.BlogPost) (int, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO blog_posts (slug, title, excerpt, content, image_path, category_id, author_id, published_date, is_published)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, post.Slug, post.Title, post.Excerpt, post.Content, post.ImagePath,
		post.CategoryID, post.AuthorID, post.PublishedDate, post.IsPublished)
	if err != nil {
		return 0, fmt.Errorf("inserting blog post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}
	return int(id), nil
}

// Update rewrites the post addressed by its current slug; post.Slug may
// carry a new slug.
func (r *MySQLBlogPostRepository) Update(ctx context.Context, slug string, post domain.BlogPost) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE blog_posts
		SET slug = ?, title = ?, excerpt = ?, content = ?, image_path = ?,
		    category_id = ?, author_id = ?, published_date = ?, is_published = ?, updated_at = NOW()
		WHERE slug = ?
	`, post.Slug, post.Title, post.Excerpt, post.Content, post.ImagePath,
		post.CategoryID, post.AuthorID, post.PublishedDate, post.IsPublished, slug)
	if err != nil {
		return fmt.Errorf("updating blog post: %w", err)
	}
	return requirePostRow(result, slug)
}

func (r *MySQLBlogPostRepository) Delete(ctx context.Context, slug string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE slug = ?`, slug)
	if err != nil {
		return fmt.Errorf("deleting blog post: %w", err)
	}
	return requirePostRow(result, slug)
}

func requirePostRow(result sql.Result, slug string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("blog post %q not found", slug))
	}
	return nil
}
