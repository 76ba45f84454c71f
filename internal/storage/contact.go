package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/k1ngs/portfolio-api/internal/domain"
	"github.com/k1ngs/portfolio-api/internal/logger"
)

// ContactStore persists contact form submissions.
type ContactStore struct {
	db  *sql.DB
	log logger.Logger
}

// NewContactStore creates a ContactStore backed by the given database.
func NewContactStore(db *sql.DB, log logger.Logger) *ContactStore {
	return &ContactStore{db: db, log: log}
}

// CreateContactInput holds a contact form submission.
type CreateContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactPage is one page of the admin contact listing.
type ContactPage struct {
	Messages    []domain.ContactMessage
	Total       int
	UnreadCount int
}

// Insert stores a new contact message with UNREAD status. Name and subject
// are trimmed and the email lowercased before storage.
func (s *ContactStore) Insert(ctx context.Context, in CreateContactInput) (*domain.ContactMessage, error) {
	now := time.Now()
	msg := &domain.ContactMessage{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
		Status:    domain.ContactStatusUnread,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		msg.ID, msg.Name, msg.Email, nullable(msg.Subject), msg.Message,
		msg.Status, msg.CreatedAt, msg.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}

	s.log.Info("Contact form submission", logger.String("email", msg.Email))
	return msg, nil
}

// List returns a page of contact messages, unread first then newest, with
// the total and unread counts for the admin inbox.
func (s *ContactStore) List(ctx context.Context, f domain.ContactFilter) (*ContactPage, error) {
	query := `SELECT id, name, email, subject, message, status, created_at, updated_at
	          FROM contact_messages`
	countQuery := "SELECT COUNT(*) FROM contact_messages"
	args := []any{}

	if f.Status != nil {
		args = append(args, *f.Status)
		query += " WHERE status = $1"
		countQuery += " WHERE status = $1"
	}

	page := &ContactPage{Messages: []domain.ContactMessage{}}
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&page.Total); err != nil {
		return nil, fmt.Errorf("count contact messages: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM contact_messages WHERE status = $1",
		domain.ContactStatusUnread,
	).Scan(&page.UnreadCount); err != nil {
		return nil, fmt.Errorf("count unread messages: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	listArgs := append(args, limit, f.Offset)
	// Unread messages surface first regardless of enum spelling.
	query += fmt.Sprintf(
		" ORDER BY CASE WHEN status = 'UNREAD' THEN 0 ELSE 1 END, created_at DESC LIMIT $%d OFFSET $%d",
		len(listArgs)-1, len(listArgs))

	rows, err := s.db.QueryContext(ctx, query, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.ContactMessage
		var subject sql.NullString
		err := rows.Scan(&m.ID, &m.Name, &m.Email, &subject, &m.Message,
			&m.Status, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		m.Subject = subject.String
		page.Messages = append(page.Messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}
	return page, nil
}

// UpdateStatus sets the triage status of a contact message.
func (s *ContactStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ContactStatus) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE contact_messages SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update contact %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a contact message.
func (s *ContactStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM contact_messages WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete contact %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
