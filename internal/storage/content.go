package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/k1ngs/portfolio-api/internal/domain"
	"github.com/k1ngs/portfolio-api/internal/logger"
)

// resolvedContentQuery joins a content row with the single translation
// matching the requested language. The join condition, not a WHERE clause,
// carries the language so rows without a match still come back.
const resolvedContentQuery = `
	SELECT c.id, c.key, c.type, c.category, c.created_at, c.updated_at,
	       t.id, t.language, t.value
	FROM contents c
	LEFT JOIN content_translations t ON t.content_id = c.id AND t.language = $1`

// ContentStore persists content items and their translations.
type ContentStore struct {
	db  *sql.DB
	log logger.Logger
}

// NewContentStore creates a ContentStore backed by the given database.
func NewContentStore(db *sql.DB, log logger.Logger) *ContentStore {
	return &ContentStore{db: db, log: log}
}

// CreateContentInput holds the fields for a new content item.
type CreateContentInput struct {
	Key          string
	Type         domain.ContentType
	Category     string
	Translations []domain.TranslationInput
}

// UpdateContentInput holds a partial content update. Nil fields are left
// unchanged; a non-nil Translations slice replaces the full translation set.
type UpdateContentInput struct {
	ID           uuid.UUID
	Key          *string
	Type         *domain.ContentType
	Category     *string
	Translations []domain.TranslationInput
}

// GetByKey returns the content item for key with the translation matching
// language, or nil when the key does not exist. A missing translation
// yields a nil Translation, never an error.
func (s *ContentStore) GetByKey(ctx context.Context, key, language string) (*domain.ResolvedContent, error) {
	row := s.db.QueryRowContext(ctx, resolvedContentQuery+" WHERE c.key = $2", language, key)

	rc, err := scanResolvedContent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get content by key: %w", err)
	}
	return rc, nil
}

// GetByCategory returns all content items in category with translations
// resolved for language, ordered by key ascending.
func (s *ContentStore) GetByCategory(ctx context.Context, category, language string) ([]domain.ResolvedContent, error) {
	rows, err := s.db.QueryContext(ctx,
		resolvedContentQuery+" WHERE c.category = $2 ORDER BY c.key ASC",
		language, category,
	)
	if err != nil {
		return nil, fmt.Errorf("get content by category: %w", err)
	}
	defer rows.Close()

	return collectResolvedContent(rows)
}

// GetAll returns every content item grouped by category then key, with
// translations resolved for language. Used to hydrate a full page of
// strings in one call.
func (s *ContentStore) GetAll(ctx context.Context, language string) (map[string]map[string]domain.ResolvedContent, error) {
	rows, err := s.db.QueryContext(ctx,
		resolvedContentQuery+" ORDER BY c.category ASC, c.key ASC",
		language,
	)
	if err != nil {
		return nil, fmt.Errorf("get all content: %w", err)
	}
	defer rows.Close()

	items, err := collectResolvedContent(rows)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string]map[string]domain.ResolvedContent)
	for _, item := range items {
		if item.Category == "" || item.Key == "" {
			continue
		}
		if grouped[item.Category] == nil {
			grouped[item.Category] = make(map[string]domain.ResolvedContent)
		}
		grouped[item.Category][item.Key] = item
	}
	return grouped, nil
}

// Create inserts a content item and its translations in one transaction.
// A duplicate key yields domain.ErrDuplicateKey.
func (s *ContentStore) Create(ctx context.Context, in CreateContentInput) (*domain.Content, error) {
	now := time.Now()
	content := &domain.Content{
		ID:        uuid.New(),
		Key:       in.Key,
		Type:      in.Type,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO contents (id, key, type, category, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			content.ID, content.Key, content.Type, content.Category,
			content.CreatedAt, content.UpdatedAt,
		)
		if err != nil {
			return mapConstraintError(err)
		}
		return insertContentTranslations(ctx, tx, content.ID, in.Translations)
	})
	if err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	s.log.Info("Content created",
		logger.String("key", content.Key),
		logger.String("category", content.Category),
	)
	return content, nil
}

// Update applies a partial update. When a translation set is supplied the
// old set is deleted and the new one inserted in the same transaction, so
// readers never observe a content item with zero translations.
func (s *ContentStore) Update(ctx context.Context, in UpdateContentInput) (*domain.Content, error) {
	var content domain.Content

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		query := "UPDATE contents SET updated_at = $1"
		args := []any{time.Now()}

		if in.Key != nil {
			args = append(args, *in.Key)
			query += fmt.Sprintf(", key = $%d", len(args))
		}
		if in.Type != nil {
			args = append(args, *in.Type)
			query += fmt.Sprintf(", type = $%d", len(args))
		}
		if in.Category != nil {
			args = append(args, *in.Category)
			query += fmt.Sprintf(", category = $%d", len(args))
		}

		args = append(args, in.ID)
		query += fmt.Sprintf(
			" WHERE id = $%d RETURNING id, key, type, category, created_at, updated_at",
			len(args),
		)

		err := tx.QueryRowContext(ctx, query, args...).Scan(
			&content.ID, &content.Key, &content.Type, &content.Category,
			&content.CreatedAt, &content.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return mapConstraintError(err)
		}

		if in.Translations == nil {
			return nil
		}
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM content_translations WHERE content_id = $1", in.ID,
		); err != nil {
			return fmt.Errorf("delete old translations: %w", err)
		}
		return insertContentTranslations(ctx, tx, in.ID, in.Translations)
	})
	if err != nil {
		return nil, fmt.Errorf("update content: %w", err)
	}
	return &content, nil
}

// Delete removes a content item and its translations together. Deleting a
// missing id yields domain.ErrNotFound.
func (s *ContentStore) Delete(ctx context.Context, id uuid.UUID) error {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM content_translations WHERE content_id = $1", id,
		); err != nil {
			return fmt.Errorf("delete translations: %w", err)
		}

		res, err := tx.ExecContext(ctx, "DELETE FROM contents WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("delete content: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete content %s: %w", id, err)
	}
	return nil
}

// AdminList returns a page of content items with their full translation
// sets, plus the total count for pagination. An empty category matches all.
func (s *ContentStore) AdminList(ctx context.Context, category string, limit, offset int) ([]domain.ContentDetail, int, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := "SELECT id, key, type, category, created_at, updated_at FROM contents"
	countQuery := "SELECT COUNT(*) FROM contents"
	args := []any{}
	if category != "" {
		args = append(args, category)
		query += " WHERE category = $1"
		countQuery += " WHERE category = $1"
	}

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contents: %w", err)
	}

	listArgs := append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY category ASC, key ASC LIMIT $%d OFFSET $%d",
		len(listArgs)-1, len(listArgs))

	rows, err := s.db.QueryContext(ctx, query, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list contents: %w", err)
	}
	defer rows.Close()

	var items []domain.ContentDetail
	var ids []uuid.UUID
	for rows.Next() {
		var d domain.ContentDetail
		if err := rows.Scan(&d.ID, &d.Key, &d.Type, &d.Category, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan content: %w", err)
		}
		d.Translations = []domain.ContentTranslation{}
		items = append(items, d)
		ids = append(ids, d.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate contents: %w", err)
	}

	if err := s.attachTranslations(ctx, items, ids); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// attachTranslations loads the full translation sets for the given content ids.
func (s *ContentStore) attachTranslations(ctx context.Context, items []domain.ContentDetail, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content_id, language, value
		 FROM content_translations
		 WHERE content_id = ANY($1)
		 ORDER BY language ASC`,
		pq.Array(ids),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	defer rows.Close()

	byContent := make(map[uuid.UUID][]domain.ContentTranslation, len(ids))
	for rows.Next() {
		var t domain.ContentTranslation
		if err := rows.Scan(&t.ID, &t.ContentID, &t.Language, &t.Value); err != nil {
			return fmt.Errorf("scan translation: %w", err)
		}
		byContent[t.ContentID] = append(byContent[t.ContentID], t)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate translations: %w", err)
	}

	for i := range items {
		if ts, ok := byContent[items[i].ID]; ok {
			items[i].Translations = ts
		}
	}
	return nil
}

// Categories returns the distinct content categories, ordered ascending.
func (s *ContentStore) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT category FROM contents ORDER BY category ASC")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// insertContentTranslations inserts a translation set inside a transaction.
func insertContentTranslations(ctx context.Context, tx *sql.Tx, contentID uuid.UUID, translations []domain.TranslationInput) error {
	for _, tr := range translations {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO content_translations (id, content_id, language, value)
			 VALUES ($1, $2, $3, $4)`,
			uuid.New(), contentID, tr.Language, tr.Value,
		)
		if err != nil {
			return fmt.Errorf("insert translation %q: %w", tr.Language, mapConstraintError(err))
		}
	}
	return nil
}

// rowScanner abstracts sql.Row and sql.Rows for shared scan code.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanResolvedContent scans a content row joined with an optional translation.
func scanResolvedContent(row rowScanner) (*domain.ResolvedContent, error) {
	var rc domain.ResolvedContent
	var tID uuid.NullUUID
	var tLanguage, tValue sql.NullString

	err := row.Scan(
		&rc.ID, &rc.Key, &rc.Type, &rc.Category, &rc.CreatedAt, &rc.UpdatedAt,
		&tID, &tLanguage, &tValue,
	)
	if err != nil {
		return nil, err
	}

	if tID.Valid {
		rc.Translation = &domain.ContentTranslation{
			ID:        tID.UUID,
			ContentID: rc.ID,
			Language:  tLanguage.String,
			Value:     tValue.String,
		}
	}
	return &rc, nil
}

// collectResolvedContent scans all rows of a resolved content query.
func collectResolvedContent(rows *sql.Rows) ([]domain.ResolvedContent, error) {
	var items []domain.ResolvedContent
	for rows.Next() {
		rc, err := scanResolvedContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, *rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contents: %w", err)
	}
	return items, nil
}
