package repository

import (
	"context"
	"database/sql"
	"fmt"

	"orientalgroup/internal/dto"
)

type MySQLAnalyticsRepository struct {
	db *sql.DB
}

func NewMySQLAnalyticsRepository(db *sql.DB) *MySQLAnalyticsRepository {
	return &MySQLAnalyticsRepository{db: db}
}

func (r *MySQLAnalyticsRepository) UserStats(ctx context.Context) (dto.UserStats, error) {
	var stats dto.UserStats
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(created_at >= NOW() - INTERVAL 30 DAY), 0),
		       COALESCE(SUM(created_at >= NOW() - INTERVAL 7 DAY), 0),
		       COALESCE(SUM(role = 'admin'), 0)
		FROM users
	`).Scan(&stats.TotalUsers, &stats.NewUsers30d, &stats.NewUsers7d, &stats.AdminUsers)
	if err != nil {
		return stats, fmt.Errorf("querying user stats: %w", err)
	}
	return stats, nil
}

func (r *MySQLAnalyticsRepository) ContentStats(ctx context.Context) (dto.ContentStats, error) {
	var stats dto.ContentStats
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM products WHERE is_featured = TRUE),
			(SELECT COUNT(*) FROM blog_posts),
			(SELECT COUNT(*) FROM blog_posts WHERE is_published = TRUE),
			(SELECT COUNT(*) FROM services),
			(SELECT COUNT(*) FROM partners)
	`).Scan(
		&stats.TotalProducts, &stats.FeaturedProducts,
		&stats.TotalBlogPosts, &stats.PublishedPosts,
		&stats.TotalServices, &stats.TotalPartners,
	)
	if err != nil {
		return stats, fmt.Errorf("querying content stats: %w", err)
	}
	return stats, nil
}

func (r *MySQLAnalyticsRepository) ContactStats(ctx context.Context) (dto.ContactStats, error) {
	var stats dto.ContactStats
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(created_at >= NOW() - INTERVAL 30 DAY), 0),
		       COALESCE(SUM(is_read = FALSE), 0)
		FROM contact_submissions
	`).Scan(&stats.TotalContacts, &stats.Contacts30d, &stats.UnreadContacts)
	if err != nil {
		return stats, fmt.Errorf("querying contact stats: %w", err)
	}
	return stats, nil
}

// MonthlyUserSignups returns signups per month over the trailing year.
func (r *MySQLAnalyticsRepository) MonthlyUserSignups(ctx context.Context) ([]dto.MonthlyCount, error) {
	return r.monthlyCounts(ctx, "users")
}

func (r *MySQLAnalyticsRepository) MonthlyContacts(ctx context.Context) ([]dto.MonthlyCount, error) {
	return r.monthlyCounts(ctx, "contact_submissions")
}

func (r *MySQLAnalyticsRepository) monthlyCounts(ctx context.Context, table string) ([]dto.MonthlyCount, error) {
	query := fmt.Sprintf(`
		SELECT DATE_FORMAT(created_at, '%%Y-%%m') AS month, COUNT(*)
		FROM %s
		WHERE created_at >= NOW() - INTERVAL 12 MONTH
		GROUP BY month
		ORDER BY month
	`, table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying monthly counts for %s: %w", table, err)
	}
	defer rows.Close()

	var counts []dto.MonthlyCount
	for rows.Next() {
		var c dto.MonthlyCount
		if err := rows.Scan(&c.Month, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning monthly count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monthly count rows: %w", err)
	}

	return counts, nil
}

func (r *MySQLAnalyticsRepository) BlogPostsByCategory(ctx context.Context) ([]dto.CategoryCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT COALESCE(c.name, 'Uncategorized'), COUNT(p.id)
		FROM blog_posts p
		LEFT JOIN blog_categories c ON c.id = p.category_id
		GROUP BY c.name
		ORDER BY COUNT(p.id) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying blog posts by category: %w", err)
	}
	defer rows.Close()

	var counts []dto.CategoryCount
	for rows.Next() {
		var c dto.CategoryCount
		if err := rows.Scan(&c.Category, &c.Posts); err != nil {
			return nil, fmt.Errorf("scanning category count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category count rows: %w", err)
	}

	return counts, nil
}
