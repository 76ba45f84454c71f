package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/k1ngs/portfolio-api/internal/domain"
	"github.com/k1ngs/portfolio-api/internal/logger"
	"github.com/k1ngs/portfolio-api/internal/storage"
)

var resolvedContentColumns = []string{
	"id", "key", "type", "category", "created_at", "updated_at",
	"t_id", "t_language", "t_value",
}

func newContentStore(t *testing.T) (*storage.ContentStore, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	store := storage.NewContentStore(db, logger.NewNop())
	return store, mock, func() { _ = db.Close() }
}

func TestContentStore_GetByKey(t *testing.T) {
	contentID := uuid.New()
	translationID := uuid.New()
	now := time.Now()

	testCases := []struct {
		name            string
		setupMock       func(mock sqlmock.Sqlmock)
		wantNil         bool
		wantTranslation bool
		wantErr         bool
	}{
		{
			name: "key with matching translation",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(resolvedContentColumns).AddRow(
					contentID, "hero.title", "TEXT", "hero", now, now,
					translationID, "pt", "Bem-vindo",
				)
				mock.ExpectQuery("SELECT c.id").
					WithArgs("pt", "hero.title").
					WillReturnRows(rows)
			},
			wantTranslation: true,
		},
		{
			name: "key without translation yields nil translation",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(resolvedContentColumns).AddRow(
					contentID, "hero.title", "TEXT", "hero", now, now,
					nil, nil, nil,
				)
				mock.ExpectQuery("SELECT c.id").
					WithArgs("pt", "hero.title").
					WillReturnRows(rows)
			},
		},
		{
			name: "missing key yields nil without error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT c.id").
					WithArgs("pt", "hero.title").
					WillReturnRows(sqlmock.NewRows(resolvedContentColumns))
			},
			wantNil: true,
		},
		{
			name: "database error is propagated",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT c.id").
					WithArgs("pt", "hero.title").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, mock, cleanup := newContentStore(t)
			defer cleanup()
			tc.setupMock(mock)

			rc, err := store.GetByKey(context.Background(), "hero.title", "pt")
			if (err != nil) != tc.wantErr {
				t.Fatalf("GetByKey() error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			if tc.wantNil {
				if rc != nil {
					t.Fatalf("expected nil content, got %+v", rc)
				}
				return
			}
			if rc == nil {
				t.Fatal("expected content, got nil")
			}
			if (rc.Translation != nil) != tc.wantTranslation {
				t.Fatalf("translation presence = %v, want %v", rc.Translation != nil, tc.wantTranslation)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

func TestContentStore_GetAll_GroupsByCategoryAndKey(t *testing.T) {
	store, mock, cleanup := newContentStore(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows(resolvedContentColumns).
		AddRow(uuid.New(), "hero.title", "TEXT", "hero", now, now, uuid.New(), "pt", "Bem-vindo").
		AddRow(uuid.New(), "hero.subtitle", "TEXT", "hero", now, now, nil, nil, nil).
		AddRow(uuid.New(), "footer.note", "TEXT", "footer", now, now, uuid.New(), "pt", "Feito em Go").
		AddRow(uuid.New(), "orphan", "TEXT", "", now, now, nil, nil, nil)
	mock.ExpectQuery("SELECT c.id").
		WithArgs("pt").
		WillReturnRows(rows)

	grouped, err := store.GetAll(context.Background(), "pt")
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}

	if len(grouped) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(grouped))
	}
	if len(grouped["hero"]) != 2 {
		t.Fatalf("expected 2 hero keys, got %d", len(grouped["hero"]))
	}
	if grouped["footer"]["footer.note"].Translation == nil {
		t.Fatal("expected footer.note translation to be resolved")
	}
	if grouped["hero"]["hero.subtitle"].Translation != nil {
		t.Fatal("expected hero.subtitle translation to be nil")
	}
}

func TestContentStore_Create_DuplicateKey(t *testing.T) {
	store, mock, cleanup := newContentStore(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO contents").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	_, err := store.Create(context.Background(), storage.CreateContentInput{
		Key:      "hero.title",
		Type:     domain.ContentTypeText,
		Category: "hero",
		Translations: []domain.TranslationInput{
			{Language: "pt", Value: "Bem-vindo"},
		},
	})
	if !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestContentStore_Create_InsertsTranslations(t *testing.T) {
	store, mock, cleanup := newContentStore(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO contents").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO content_translations").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO content_translations").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	content, err := store.Create(context.Background(), storage.CreateContentInput{
		Key:      "hero.title",
		Type:     domain.ContentTypeText,
		Category: "hero",
		Translations: []domain.TranslationInput{
			{Language: "pt", Value: "Bem-vindo"},
			{Language: "en", Value: "Welcome"},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if content.Key != "hero.title" {
		t.Fatalf("unexpected key: %q", content.Key)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestContentStore_Delete_RemovesTranslationsInSameTx(t *testing.T) {
	store, mock, cleanup := newContentStore(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM content_translations").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM contents").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := store.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Both deletes must land inside the one committed transaction.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestContentStore_Update_ReplacesTranslationSetInSameTx(t *testing.T) {
	store, mock, cleanup := newContentStore(t)
	defer cleanup()

	id := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE contents SET").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "key", "type", "category", "created_at", "updated_at",
		}).AddRow(id, "hero.title", "TEXT", "hero", now, now))
	mock.ExpectExec("DELETE FROM content_translations").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO content_translations").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO content_translations").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	content, err := store.Update(context.Background(), storage.UpdateContentInput{
		ID: id,
		Translations: []domain.TranslationInput{
			{Language: "pt", Value: "Bem-vindo"},
			{Language: "en", Value: "Welcome"},
		},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if content.Key != "hero.title" {
		t.Fatalf("unexpected key: %q", content.Key)
	}

	// Delete-old and insert-new run inside the one committed transaction,
	// so readers never observe a content row with zero translations.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestContentStore_Delete_NotFound(t *testing.T) {
	store, mock, cleanup := newContentStore(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM content_translations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM contents").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := store.Delete(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestContentStore_Update_NotFound(t *testing.T) {
	store, mock, cleanup := newContentStore(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE contents SET").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "key", "type", "category", "created_at", "updated_at",
		}))
	mock.ExpectRollback()

	newKey := "hero.subtitle"
	_, err := store.Update(context.Background(), storage.UpdateContentInput{
		ID:  uuid.New(),
		Key: &newKey,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
