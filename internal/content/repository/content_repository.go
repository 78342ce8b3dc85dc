package repository

import (
	"context"
	"database/sql"
	"fmt"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/errors"
)

// The three site-content tables share the display_order driven shape, so the
// repositories live together.

type MySQLServiceRepository struct {
	db *sql.DB
}

func NewMySQLServiceRepository(db *sql.DB) *MySQLServiceRepository {
	return &MySQLServiceRepository{db: db}
}

func (r *MySQLServiceRepository) List(ctx context.Context) ([]domain.SiteService, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, icon_name, display_order, created_at, updated_at
		FROM services
		ORDER BY display_order, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying services: %w", err)
	}
	defer rows.Close()

	var services []domain.SiteService
	for rows.Next() {
		var s domain.SiteService
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.IconName, &s.DisplayOrder, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning service: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating service rows: %w", err)
	}

	return services, nil
}

func (r *MySQLServiceRepository) Insert(ctx context.Context, s domain.SiteService) (int, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO services (title, description, icon_name, display_order)
		VALUES (?, ?, ?, ?)
	`, s.Title, s.Description, s.IconName, s.DisplayOrder)
	if err != nil {
		return 0, fmt.Errorf("inserting service: %w", err)
	}
	return lastInt(result)
}

func (r *MySQLServiceRepository) Update(ctx context.Context, id int, s domain.SiteService) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE services
		SET title = ?, description = ?, icon_name = ?, display_order = ?, updated_at = NOW()
		WHERE id = ?
	`, s.Title, s.Description, s.IconName, s.DisplayOrder, id)
	if err != nil {
		return fmt.Errorf("updating service: %w", err)
	}
	return requireRow(result, "service", id)
}

func (r *MySQLServiceRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting service: %w", err)
	}
	return requireRow(result, "service", id)
}

type MySQLPartnerRepository struct {
	db *sql.DB
}

func NewMySQLPartnerRepository(db *sql.DB) *MySQLPartnerRepository {
	return &MySQLPartnerRepository{db: db}
}

func (r *MySQLPartnerRepository) List(ctx context.Context) ([]domain.Partner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, logo_path, website_url, display_order, created_at, updated_at
		FROM partners
		ORDER BY display_order, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying partners: %w", err)
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		var p domain.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.LogoPath, &p.WebsiteURL, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning partner: %w", err)
		}
		partners = append(partners, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating partner rows: %w", err)
	}

	return partners, nil
}

func (r *MySQLPartnerRepository) Insert(ctx context.Context, p domain.Partner) (int, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO partners (name, logo_path, website_url, display_order)
		VALUES (?, ?, ?, ?)
	`, p.Name, p.LogoPath, p.WebsiteURL, p.DisplayOrder)
	if err != nil {
		return 0, fmt.Errorf("inserting partner: %w", err)
	}
	return lastInt(result)
}

func (r *MySQLPartnerRepository) Update(ctx context.Context, id int, p domain.Partner) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE partners
		SET name = ?, logo_path = ?, website_url = ?, display_order = ?, updated_at = NOW()
		WHERE id = ?
	`, p.Name, p.LogoPath, p.WebsiteURL, p.DisplayOrder, id)
	if err != nil {
		return fmt.Errorf("updating partner: %w", err)
	}
	return requireRow(result, "partner", id)
}

func (r *MySQLPartnerRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM partners WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting partner: %w", err)
	}
	return requireRow(result, "partner", id)
}

type MySQLMissionPointRepository struct {
	db *sql.DB
}

func NewMySQLMissionPointRepository(db *sql.DB) *MySQLMissionPointRepository {
	return &MySQLMissionPointRepository{db: db}
}

func (r *MySQLMissionPointRepository) List(ctx context.Context) ([]domain.MissionPoint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, text, icon_name, display_order, created_at, updated_at
		FROM mission_points
		ORDER BY display_order, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying mission points: %w", err)
	}
	defer rows.Close()

	var points []domain.MissionPoint
	for rows.Next() {
		var p domain.MissionPoint
		if err := rows.Scan(&p.ID, &p.Text, &p.IconName, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning mission point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mission point rows: %w", err)
	}

	return points, nil
}

func (r *MySQLMissionPointRepository) Insert(ctx context.Context, p domain.MissionPoint) (int, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO mission_points (text, icon_name, display_order)
		VALUES (?, ?, ?)
	`, p.Text, p.IconName, p.DisplayOrder)
	if err != nil {
		return 0, fmt.Errorf("inserting mission point: %w", err)
	}
	return lastInt(result)
}

func (r *MySQLMissionPointRepository) Update(ctx context.Context, id int, p domain.MissionPoint) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE mission_points
		SET text = ?, icon_name = ?, display_order = ?, updated_at = NOW()
		WHERE id = ?
	`, p.Text, p.IconName, p.DisplayOrder, id)
	if err != nil {
		return fmt.Errorf("updating mission point: %w", err)
	}
	return requireRow(result, "mission point", id)
}

func (r *MySQLMissionPointRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM mission_points WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting mission point: %w", err)
	}
	return requireRow(result, "mission point", id)
}

func lastInt(result sql.Result) (int, error) {
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}
	return int(id), nil
}

func requireRow(result sql.Result, kind string, id int) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("%s with id %d not found", kind, id))
	}
	return nil
}
