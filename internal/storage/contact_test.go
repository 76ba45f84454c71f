package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/k1ngs/portfolio-api/internal/domain"
	"github.com/k1ngs/portfolio-api/internal/logger"
	"github.com/k1ngs/portfolio-api/internal/storage"
)

func newContactStore(t *testing.T) (*storage.ContactStore, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	store := storage.NewContactStore(db, logger.NewNop())
	return store, mock, func() { _ = db.Close() }
}

func TestContactStore_Insert_NormalizesFields(t *testing.T) {
	store, mock, cleanup := newContactStore(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO contact_messages").
		WillReturnResult(sqlmock.NewResult(0, 1))

	msg, err := store.Insert(context.Background(), storage.CreateContactInput{
		Name:    "  Jane Doe  ",
		Email:   " Jane@Example.COM ",
		Subject: " Hello ",
		Message: " I would like to talk. ",
	})
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if msg.Name != "Jane Doe" {
		t.Errorf("expected trimmed name, got %q", msg.Name)
	}
	if msg.Email != "jane@example.com" {
		t.Errorf("expected lowercased email, got %q", msg.Email)
	}
	if msg.Status != domain.ContactStatusUnread {
		t.Errorf("expected UNREAD status, got %q", msg.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestContactStore_UpdateStatus_NotFound(t *testing.T) {
	store, mock, cleanup := newContactStore(t)
	defer cleanup()

	mock.ExpectExec("UPDATE contact_messages").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.UpdateStatus(context.Background(), uuid.New(), domain.ContactStatusRead)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
