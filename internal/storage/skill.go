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

// resolvedSkillQuery joins a skill row with the translation matching the
// requested language, if any.
const resolvedSkillQuery = `
	SELECT s.id, s.name, s.level, s.category, s.years_of_exp, s.technology_id,
	       s.created_at, s.updated_at,
	       t.id, t.language, t.name, t.description
	FROM skills s
	LEFT JOIN skill_translations t ON t.skill_id = s.id AND t.language = $1`

// SkillStore persists rated skills.
type SkillStore struct {
	db  *sql.DB
	log logger.Logger
}

// NewSkillStore creates a SkillStore backed by the given database.
func NewSkillStore(db *sql.DB, log logger.Logger) *SkillStore {
	return &SkillStore{db: db, log: log}
}

// CreateSkillInput holds the fields for a new skill.
type CreateSkillInput struct {
	Name         string
	Level        int
	Category     domain.SkillCategory
	YearsOfExp   int
	TechnologyID *uuid.UUID
	Translations []domain.SkillTranslationInput
}

// UpdateSkillInput holds a partial skill update. Nil fields are left
// unchanged; a non-nil Translations slice replaces the full set.
type UpdateSkillInput struct {
	ID           uuid.UUID
	Name         *string
	Level        *int
	Category     *domain.SkillCategory
	YearsOfExp   *int
	TechnologyID *uuid.UUID
	Translations []domain.SkillTranslationInput
}

// List returns skills matching the filter, highest level first then by
// name, with translations resolved for the filter language.
func (s *SkillStore) List(ctx context.Context, f domain.SkillFilter) ([]domain.ResolvedSkill, error) {
	query := resolvedSkillQuery + " WHERE 1=1"
	args := []any{f.Language}

	if f.Category != nil {
		args = append(args, *f.Category)
		query += fmt.Sprintf(" AND s.category = $%d", len(args))
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY s.level DESC, s.name ASC LIMIT $%d", len(args))
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	var skills []domain.ResolvedSkill
	for rows.Next() {
		var rs domain.ResolvedSkill
		var techID uuid.NullUUID
		var tID uuid.NullUUID
		var tLanguage, tName, tDescription sql.NullString

		err := rows.Scan(
			&rs.ID, &rs.Name, &rs.Level, &rs.Category, &rs.YearsOfExp, &techID,
			&rs.CreatedAt, &rs.UpdatedAt,
			&tID, &tLanguage, &tName, &tDescription,
		)
		if err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		if techID.Valid {
			id := techID.UUID
			rs.TechnologyID = &id
		}
		if tID.Valid {
			rs.Translation = &domain.SkillTranslation{
				ID:          tID.UUID,
				SkillID:     rs.ID,
				Language:    tLanguage.String,
				Name:        tName.String,
				Description: tDescription.String,
			}
		}
		skills = append(skills, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skills: %w", err)
	}
	return skills, nil
}

// Create inserts a skill and its translations in one transaction.
func (s *SkillStore) Create(ctx context.Context, in CreateSkillInput) (*domain.Skill, error) {
	now := time.Now()
	skill := &domain.Skill{
		ID:           uuid.New(),
		Name:         in.Name,
		Level:        in.Level,
		Category:     in.Category,
		YearsOfExp:   in.YearsOfExp,
		TechnologyID: in.TechnologyID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO skills (id, name, level, category, years_of_exp, technology_id, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			skill.ID, skill.Name, skill.Level, skill.Category, skill.YearsOfExp,
			skill.TechnologyID, skill.CreatedAt, skill.UpdatedAt,
		)
		if err != nil {
			return mapConstraintError(err)
		}
		return insertSkillTranslations(ctx, tx, skill.ID, in.Translations)
	})
	if err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}

	s.log.Info("Skill created", logger.String("name", skill.Name))
	return skill, nil
}

// Update applies a partial update, replacing the translation set when supplied.
func (s *SkillStore) Update(ctx context.Context, in UpdateSkillInput) error {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		query := "UPDATE skills SET updated_at = $1"
		args := []any{time.Now()}

		appendSet := func(column string, value any) {
			args = append(args, value)
			query += fmt.Sprintf(", %s = $%d", column, len(args))
		}
		if in.Name != nil {
			appendSet("name", *in.Name)
		}
		if in.Level != nil {
			appendSet("level", *in.Level)
		}
		if in.Category != nil {
			appendSet("category", *in.Category)
		}
		if in.YearsOfExp != nil {
			appendSet("years_of_exp", *in.YearsOfExp)
		}
		if in.TechnologyID != nil {
			appendSet("technology_id", *in.TechnologyID)
		}

		args = append(args, in.ID)
		query += fmt.Sprintf(" WHERE id = $%d", len(args))

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return mapConstraintError(err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			return domain.ErrNotFound
		}

		if in.Translations == nil {
			return nil
		}
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM skill_translations WHERE skill_id = $1", in.ID,
		); err != nil {
			return fmt.Errorf("delete old translations: %w", err)
		}
		return insertSkillTranslations(ctx, tx, in.ID, in.Translations)
	})
	if err != nil {
		return fmt.Errorf("update skill %s: %w", in.ID, err)
	}
	return nil
}

// Delete removes a skill and its translations together.
func (s *SkillStore) Delete(ctx context.Context, id uuid.UUID) error {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM skill_translations WHERE skill_id = $1", id,
		); err != nil {
			return fmt.Errorf("delete translations: %w", err)
		}

		res, err := tx.ExecContext(ctx, "DELETE FROM skills WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("delete skill: %w", err)
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
		return fmt.Errorf("delete skill %s: %w", id, err)
	}
	return nil
}

// insertSkillTranslations inserts a skill translation set inside a transaction.
func insertSkillTranslations(ctx context.Context, tx *sql.Tx, skillID uuid.UUID, translations []domain.SkillTranslationInput) error {
	for _, tr := range translations {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO skill_translations (id, skill_id, language, name, description)
			 VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), skillID, tr.Language, tr.Name, tr.Description,
		)
		if err != nil {
			return fmt.Errorf("insert translation %q: %w", tr.Language, mapConstraintError(err))
		}
	}
	return nil
}
