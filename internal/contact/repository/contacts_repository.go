package repository

import (
	"context"
	"database/sql"
	"fmt"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/errors"
)

type MySQLContactRepository struct {
	db *sql.DB
}

func NewMySQLContactRepository(db *sql.DB) *MySQLContactRepository {
	return &MySQLContactRepository{db: db}
}

func (r *MySQLContactRepository) Insert(ctx context.Context, sub domain.ContactSubmission) (uint, error) {
	result, err := r.db.ExecContext(ctx, insertQuery,
		sub.Name, sub.Email, sub.Phone, sub.Subject, sub.Message, sub.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting contact submission: %w", err)
	}
	return lastID(result)
}

// InsertTx writes the mirrored quote-request notification inside the order
// submission transaction.
func (r *MySQLContactRepository) InsertTx(ctx context.Context, tx *sql.Tx, sub domain.ContactSubmission) (uint, error) {
	result, err := tx.ExecContext(ctx, insertQuery,
		sub.Name, sub.Email, sub.Phone, sub.Subject, sub.Message, sub.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting contact submission: %w", err)
	}
	return lastID(result)
}

const insertQuery = `
	INSERT INTO contact_submissions (name, email, phone, subject, message, status)
	VALUES (?, ?, ?, ?, ?, ?)
`

func lastID(result sql.Result) (uint, error) {
	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}
	return uint(lastInsertID), nil
}

func (r *MySQLContactRepository) FindByID(ctx context.Context, id uint) (*domain.ContactSubmission, error) {
	query := `
		SELECT id, name, email, phone, subject, message, is_read, status,
		       admin_reply, replied_at, created_at
		FROM contact_submissions
		WHERE id = ?
	`

	var sub domain.ContactSubmission
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sub.ID, &sub.Name, &sub.Email, &sub.Phone, &sub.Subject, &sub.Message,
		&sub.IsRead, &sub.Status, &sub.AdminReply, &sub.RepliedAt, &sub.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("contact submission with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying contact submission: %w", err)
	}

	return &sub, nil
}

func (r *MySQLContactRepository) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	query := `
		SELECT id, name, email, phone, subject, message, is_read, status,
		       admin_reply, replied_at, created_at
		FROM contact_submissions
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying contact submissions: %w", err)
	}
	defer rows.Close()

	var subs []domain.ContactSubmission
	for rows.Next() {
		var sub domain.ContactSubmission
		if err := rows.Scan(
			&sub.ID, &sub.Name, &sub.Email, &sub.Phone, &sub.Subject, &sub.Message,
			&sub.IsRead, &sub.Status, &sub.AdminReply, &sub.RepliedAt, &sub.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning contact submission: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contact rows: %w", err)
	}

	return subs, nil
}

func (r *MySQLContactRepository) SetRead(ctx context.Context, id uint, isRead bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE contact_submissions SET is_read = ? WHERE id = ?`, isRead, id)
	if err != nil {
		return fmt.Errorf("updating contact read flag: %w", err)
	}
	return requireRow(result, id)
}

func (r *MySQLContactRepository) RecordReply(ctx context.Context, id uint, reply string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE contact_submissions
		SET admin_reply = ?, replied_at = NOW(), is_read = TRUE
		WHERE id = ?
	`, reply, id)
	if err != nil {
		return fmt.Errorf("recording contact reply: %w", err)
	}
	return requireRow(result, id)
}

func (r *MySQLContactRepository) Delete(ctx context.Context, id uint) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contact_submissions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting contact submission: %w", err)
	}
	return requireRow(result, id)
}

func requireRow(result sql.Result, id uint) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("contact submission with id %d not found", id))
	}
	return nil
}

// Inbox is the read-side union of contact messages and quote-request orders.
// It exists so the admin view does not depend on the mirrored notification
// staying in sync with the order's own status. Mirrored quote-request rows
// are excluded from the contact arm so each request appears exactly once,
// sourced from its order.
func (r *MySQLContactRepository) Inbox(ctx context.Context) ([]domain.InboxEntry, error) {
	query := `
		SELECT 'contact' AS kind, id, name, email, COALESCE(subject, ''), status, is_read, created_at
		FROM contact_submissions
		WHERE subject IS NULL OR subject NOT LIKE CONCAT(?, '%')
		UNION ALL
		SELECT 'quote_request' AS kind, id, customer_name, customer_email,
		       CONCAT(?, id), status, status <> 'pending', created_at
		FROM orders
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query,
		domain.QuoteRequestSubjectPrefix, domain.QuoteRequestSubjectPrefix)
	if err != nil {
		return nil, fmt.Errorf("querying inbox: %w", err)
	}
	defer rows.Close()

	var entries []domain.InboxEntry
	for rows.Next() {
		var e domain.InboxEntry
		if err := rows.Scan(&e.Kind, &e.ID, &e.Name, &e.Email, &e.Subject, &e.Status, &e.IsRead, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning inbox entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inbox rows: %w", err)
	}

	return entries, nil
}
