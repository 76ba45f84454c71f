package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectCategory classifies a portfolio project.
type ProjectCategory string

// Supported project categories.
const (
	ProjectCategoryWeb     ProjectCategory = "WEB"
	ProjectCategoryMobile  ProjectCategory = "MOBILE"
	ProjectCategoryAPI     ProjectCategory = "API"
	ProjectCategoryDesktop ProjectCategory = "DESKTOP"
	ProjectCategoryOther   ProjectCategory = "OTHER"
)

// Valid reports whether c is one of the supported project categories.
func (c ProjectCategory) Valid() bool {
	switch c {
	case ProjectCategoryWeb, ProjectCategoryMobile, ProjectCategoryAPI,
		ProjectCategoryDesktop, ProjectCategoryOther:
		return true
	default:
		return false
	}
}

// Project is a portfolio project entry. Title, Description and Content hold
// the default-language text; per-language overrides live in translations.
type Project struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Content      string          `json:"content"`
	Category     ProjectCategory `json:"category"`
	Featured     bool            `json:"featured"`
	GithubURL    string          `json:"github_url,omitempty"`
	DemoURL      string          `json:"demo_url,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
	Technologies []string        `json:"technologies"`
	Tags         []string        `json:"tags"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProjectTranslation is the per-language text of a project.
type ProjectTranslation struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Language    string    `json:"language"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
}

// ResolvedProject is a project with the translation matching a requested
// language, or nil when no match exists.
type ResolvedProject struct {
	Project
	Translation *ProjectTranslation `json:"translation"`
}

// ProjectTranslationInput is a translation supplied on project writes.
type ProjectTranslationInput struct {
	Language    string `json:"language" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

// ProjectFilter narrows a project listing.
type ProjectFilter struct {
	Language string
	Category *ProjectCategory
	Featured *bool
	Limit    int
	Offset   int
}
