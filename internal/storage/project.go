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

// resolvedProjectQuery joins a project row with the translation matching
// the requested language, if any.
const resolvedProjectQuery = `
	SELECT p.id, p.title, p.description, p.content, p.category, p.featured,
	       p.github_url, p.demo_url, p.image_url, p.tags, p.created_at, p.updated_at,
	       t.id, t.language, t.title, t.description, t.content
	FROM projects p
	LEFT JOIN project_translations t ON t.project_id = p.id AND t.language = $1`

// projectOrder lists featured projects first, newest first within each group.
// GetByIndex relies on this ordering matching List exactly.
const projectOrder = " ORDER BY p.featured DESC, p.created_at DESC"

// ProjectStore persists portfolio projects.
type ProjectStore struct {
	db  *sql.DB
	log logger.Logger
}

// NewProjectStore creates a ProjectStore backed by the given database.
func NewProjectStore(db *sql.DB, log logger.Logger) *ProjectStore {
	return &ProjectStore{db: db, log: log}
}

// CreateProjectInput holds the fields for a new project.
type CreateProjectInput struct {
	Title        string
	Description  string
	Content      string
	Category     domain.ProjectCategory
	Featured     bool
	GithubURL    string
	DemoURL      string
	ImageURL     string
	Technologies []uuid.UUID
	Tags         []string
	Translations []domain.ProjectTranslationInput
}

// UpdateProjectInput holds a partial project update. Nil fields are left
// unchanged; non-nil Translations and Technologies replace their sets.
type UpdateProjectInput struct {
	ID           uuid.UUID
	Title        *string
	Description  *string
	Content      *string
	Category     *domain.ProjectCategory
	Featured     *bool
	GithubURL    *string
	DemoURL      *string
	ImageURL     *string
	Technologies []uuid.UUID
	Tags         []string
	Translations []domain.ProjectTranslationInput
}

// List returns projects matching the filter with translations resolved for
// the filter language, featured first then newest.
func (s *ProjectStore) List(ctx context.Context, f domain.ProjectFilter) ([]domain.ResolvedProject, error) {
	query := resolvedProjectQuery + " WHERE 1=1"
	args := []any{f.Language}

	if f.Category != nil {
		args = append(args, *f.Category)
		query += fmt.Sprintf(" AND p.category = $%d", len(args))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		query += fmt.Sprintf(" AND p.featured = $%d", len(args))
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	args = append(args, limit)
	query += projectOrder + fmt.Sprintf(" LIMIT $%d", len(args))
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects, err := collectResolvedProjects(rows)
	if err != nil {
		return nil, err
	}
	if err := s.attachTechnologies(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByIndex returns the project at the given 1-based position in the
// public listing order. Out-of-range indexes yield domain.ErrNotFound.
func (s *ProjectStore) GetByIndex(ctx context.Context, index int, language string) (*domain.ResolvedProject, error) {
	if index < 1 {
		return nil, domain.ErrNotFound
	}

	row := s.db.QueryRowContext(ctx,
		resolvedProjectQuery+projectOrder+" LIMIT 1 OFFSET $2",
		language, index-1,
	)

	rp, err := scanResolvedProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project by index: %w", err)
	}

	projects := []domain.ResolvedProject{*rp}
	if err := s.attachTechnologies(ctx, projects); err != nil {
		return nil, err
	}
	return &projects[0], nil
}

// Count returns the total number of projects.
func (s *ProjectStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects").Scan(&n); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

// Create inserts a project with its translations and technology links in
// one transaction.
func (s *ProjectStore) Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error) {
	now := time.Now()
	project := &domain.Project{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Category:    in.Category,
		Featured:    in.Featured,
		GithubURL:   in.GithubURL,
		DemoURL:     in.DemoURL,
		ImageURL:    in.ImageURL,
		Tags:        in.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if project.Tags == nil {
		project.Tags = []string{}
	}

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, title, description, content, category, featured,
			                       github_url, demo_url, image_url, tags, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			project.ID, project.Title, project.Description, project.Content,
			project.Category, project.Featured,
			nullable(project.GithubURL), nullable(project.DemoURL), nullable(project.ImageURL),
			pq.Array(project.Tags), project.CreatedAt, project.UpdatedAt,
		)
		if err != nil {
			return mapConstraintError(err)
		}
		if err := insertProjectTranslations(ctx, tx, project.ID, in.Translations); err != nil {
			return err
		}
		return insertTechnologyLinks(ctx, tx, project.ID, in.Technologies)
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.Info("Project created", logger.String("title", project.Title))
	return project, nil
}

// Update applies a partial update, replacing translation and technology
// sets when supplied.
func (s *ProjectStore) Update(ctx context.Context, in UpdateProjectInput) error {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		query := "UPDATE projects SET updated_at = $1"
		args := []any{time.Now()}

		appendSet := func(column string, value any) {
			args = append(args, value)
			query += fmt.Sprintf(", %s = $%d", column, len(args))
		}
		if in.Title != nil {
			appendSet("title", *in.Title)
		}
		if in.Description != nil {
			appendSet("description", *in.Description)
		}
		if in.Content != nil {
			appendSet("content", *in.Content)
		}
		if in.Category != nil {
			appendSet("category", *in.Category)
		}
		if in.Featured != nil {
			appendSet("featured", *in.Featured)
		}
		if in.GithubURL != nil {
			appendSet("github_url", nullable(*in.GithubURL))
		}
		if in.DemoURL != nil {
			appendSet("demo_url", nullable(*in.DemoURL))
		}
		if in.ImageURL != nil {
			appendSet("image_url", nullable(*in.ImageURL))
		}
		if in.Tags != nil {
			appendSet("tags", pq.Array(in.Tags))
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

		if in.Translations != nil {
			if _, err := tx.ExecContext(ctx,
				"DELETE FROM project_translations WHERE project_id = $1", in.ID,
			); err != nil {
				return fmt.Errorf("delete old translations: %w", err)
			}
			if err := insertProjectTranslations(ctx, tx, in.ID, in.Translations); err != nil {
				return err
			}
		}
		if in.Technologies != nil {
			if _, err := tx.ExecContext(ctx,
				"DELETE FROM project_technologies WHERE project_id = $1", in.ID,
			); err != nil {
				return fmt.Errorf("delete old technology links: %w", err)
			}
			if err := insertTechnologyLinks(ctx, tx, in.ID, in.Technologies); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update project %s: %w", in.ID, err)
	}
	return nil
}

// Delete removes a project, its translations and technology links together.
func (s *ProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM project_translations WHERE project_id = $1", id,
		); err != nil {
			return fmt.Errorf("delete translations: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM project_technologies WHERE project_id = $1", id,
		); err != nil {
			return fmt.Errorf("delete technology links: %w", err)
		}

		res, err := tx.ExecContext(ctx, "DELETE FROM projects WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("delete project: %w", err)
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
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	return nil
}

// attachTechnologies loads technology names for the given projects.
func (s *ProjectStore) attachTechnologies(ctx context.Context, projects []domain.ResolvedProject) error {
	if len(projects) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(projects))
	for i := range projects {
		ids[i] = projects[i].ID
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT pt.project_id, t.name
		 FROM project_technologies pt
		 JOIN technologies t ON t.id = pt.technology_id
		 WHERE pt.project_id = ANY($1)
		 ORDER BY t.name ASC`,
		pq.Array(ids),
	)
	if err != nil {
		return fmt.Errorf("load project technologies: %w", err)
	}
	defer rows.Close()

	byProject := make(map[uuid.UUID][]string, len(ids))
	for rows.Next() {
		var projectID uuid.UUID
		var name string
		if err := rows.Scan(&projectID, &name); err != nil {
			return fmt.Errorf("scan project technology: %w", err)
		}
		byProject[projectID] = append(byProject[projectID], name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate project technologies: %w", err)
	}

	for i := range projects {
		if names, ok := byProject[projects[i].ID]; ok {
			projects[i].Technologies = names
		} else {
			projects[i].Technologies = []string{}
		}
	}
	return nil
}

// insertProjectTranslations inserts a project translation set inside a transaction.
func insertProjectTranslations(ctx context.Context, tx *sql.Tx, projectID uuid.UUID, translations []domain.ProjectTranslationInput) error {
	for _, tr := range translations {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO project_translations (id, project_id, language, title, description, content)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), projectID, tr.Language, tr.Title, tr.Description, tr.Content,
		)
		if err != nil {
			return fmt.Errorf("insert translation %q: %w", tr.Language, mapConstraintError(err))
		}
	}
	return nil
}

// insertTechnologyLinks inserts project/technology join rows inside a transaction.
func insertTechnologyLinks(ctx context.Context, tx *sql.Tx, projectID uuid.UUID, technologyIDs []uuid.UUID) error {
	for _, techID := range technologyIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO project_technologies (project_id, technology_id)
			 VALUES ($1, $2)`,
			projectID, techID,
		)
		if err != nil {
			return fmt.Errorf("link technology %s: %w", techID, mapConstraintError(err))
		}
	}
	return nil
}

// scanResolvedProject scans a project row joined with an optional translation.
func scanResolvedProject(row rowScanner) (*domain.ResolvedProject, error) {
	var rp domain.ResolvedProject
	var githubURL, demoURL, imageURL sql.NullString
	var tags pq.StringArray
	var tID uuid.NullUUID
	var tLanguage, tTitle, tDescription, tContent sql.NullString

	err := row.Scan(
		&rp.ID, &rp.Title, &rp.Description, &rp.Content, &rp.Category, &rp.Featured,
		&githubURL, &demoURL, &imageURL, &tags, &rp.CreatedAt, &rp.UpdatedAt,
		&tID, &tLanguage, &tTitle, &tDescription, &tContent,
	)
	if err != nil {
		return nil, err
	}

	rp.GithubURL = githubURL.String
	rp.DemoURL = demoURL.String
	rp.ImageURL = imageURL.String
	rp.Tags = []string(tags)
	if rp.Tags == nil {
		rp.Tags = []string{}
	}

	if tID.Valid {
		rp.Translation = &domain.ProjectTranslation{
			ID:          tID.UUID,
			ProjectID:   rp.ID,
			Language:    tLanguage.String,
			Title:       tTitle.String,
			Description: tDescription.String,
			Content:     tContent.String,
		}
	}
	return &rp, nil
}

// collectResolvedProjects scans all rows of a resolved project query.
func collectResolvedProjects(rows *sql.Rows) ([]domain.ResolvedProject, error) {
	var projects []domain.ResolvedProject
	for rows.Next() {
		rp, err := scanResolvedProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *rp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}
