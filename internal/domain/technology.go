package domain

import (
	"time"

	"github.com/google/uuid"
)

// TechnologyCategory classifies a technology entry.
type TechnologyCategory string

// Supported technology categories.
const (
	TechnologyCategoryFrontend TechnologyCategory = "FRONTEND"
	TechnologyCategoryBackend  TechnologyCategory = "BACKEND"
	TechnologyCategoryDatabase TechnologyCategory = "DATABASE"
	TechnologyCategoryDevOps   TechnologyCategory = "DEVOPS"
	TechnologyCategoryMobile   TechnologyCategory = "MOBILE"
	TechnologyCategoryAI       TechnologyCategory = "AI"
	TechnologyCategoryDesign   TechnologyCategory = "DESIGN"
	TechnologyCategoryOther    TechnologyCategory = "OTHER"
)

// Valid reports whether c is one of the supported technology categories.
func (c TechnologyCategory) Valid() bool {
	switch c {
	case TechnologyCategoryFrontend, TechnologyCategoryBackend,
		TechnologyCategoryDatabase, TechnologyCategoryDevOps,
		TechnologyCategoryMobile, TechnologyCategoryAI,
		TechnologyCategoryDesign, TechnologyCategoryOther:
		return true
	default:
		return false
	}
}

// Technology is a named technology with display metadata.
type Technology struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Icon      string             `json:"icon"`
	Color     string             `json:"color"`
	Category  TechnologyCategory `json:"category"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// TechnologyFilter narrows a technology listing.
type TechnologyFilter struct {
	Category *TechnologyCategory
	Limit    int
	Offset   int
}
