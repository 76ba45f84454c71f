package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/k1ngs/portfolio-api/internal/domain"
	"github.com/k1ngs/portfolio-api/internal/logger"
)

// TechnologyStore persists technology entries.
type TechnologyStore struct {
	db  *sql.DB
	log logger.Logger
}

// NewTechnologyStore creates a TechnologyStore backed by the given database.
func NewTechnologyStore(db *sql.DB, log logger.Logger) *TechnologyStore {
	return &TechnologyStore{db: db, log: log}
}

// CreateTechnologyInput holds the fields for a new technology.
type CreateTechnologyInput struct {
	Name     string
	Icon     string
	Color    string
	Category domain.TechnologyCategory
}

// UpdateTechnologyInput holds a partial technology update.
type UpdateTechnologyInput struct {
	ID       uuid.UUID
	Name     *string
	Icon     *string
	Color    *string
	Category *domain.TechnologyCategory
}

// List returns technologies matching the filter, ordered by category then name.
func (s *TechnologyStore) List(ctx context.Context, f domain.TechnologyFilter) ([]domain.Technology, error) {
	query := `SELECT id, name, icon, color, category, created_at, updated_at
	          FROM technologies WHERE 1=1`
	args := []any{}

	if f.Category != nil {
		args = append(args, *f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY category ASC, name ASC LIMIT $%d", len(args))
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list technologies: %w", err)
	}
	defer rows.Close()

	var technologies []domain.Technology
	for rows.Next() {
		var t domain.Technology
		if err := rows.Scan(&t.ID, &t.Name, &t.Icon, &t.Color, &t.Category, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan technology: %w", err)
		}
		technologies = append(technologies, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate technologies: %w", err)
	}
	return technologies, nil
}

// Create inserts a technology. A duplicate name yields domain.ErrDuplicateKey.
func (s *TechnologyStore) Create(ctx context.Context, in CreateTechnologyInput) (*domain.Technology, error) {
	now := time.Now()
	tech := &domain.Technology{
		ID:        uuid.New(),
		Name:      in.Name,
		Icon:      in.Icon,
		Color:     in.Color,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO technologies (id, name, icon, color, category, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		tech.ID, tech.Name, tech.Icon, tech.Color, tech.Category, tech.CreatedAt, tech.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create technology: %w", mapConstraintError(err))
	}

	s.log.Info("Technology created", logger.String("name", tech.Name))
	return tech, nil
}

// Update applies a partial update to a technology.
func (s *TechnologyStore) Update(ctx context.Context, in UpdateTechnologyInput) error {
	query := "UPDATE technologies SET updated_at = $1"
	args := []any{time.Now()}

	appendSet := func(column string, value any) {
		args = append(args, value)
		query += fmt.Sprintf(", %s = $%d", column, len(args))
	}
	if in.Name != nil {
		appendSet("name", *in.Name)
	}
	if in.Icon != nil {
		appendSet("icon", *in.Icon)
	}
	if in.Color != nil {
		appendSet("color", *in.Color)
	}
	if in.Category != nil {
		appendSet("category", *in.Category)
	}

	args = append(args, in.ID)
	query += fmt.Sprintf(" WHERE id = $%d", len(args))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update technology %s: %w", in.ID, mapConstraintError(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update technology %s: %w", in.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a technology and its project links together.
func (s *TechnologyStore) Delete(ctx context.Context, id uuid.UUID) error {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM project_technologies WHERE technology_id = $1", id,
		); err != nil {
			return fmt.Errorf("delete project links: %w", err)
		}

		res, err := tx.ExecContext(ctx, "DELETE FROM technologies WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("delete technology: %w", err)
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
		return fmt.Errorf("delete technology %s: %w", id, err)
	}
	return nil
}
