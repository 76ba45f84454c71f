package domain

import (
	"time"

	"github.com/google/uuid"
)

// SkillCategory classifies a technical or soft skill.
type SkillCategory string

// Supported skill categories.
const (
	SkillCategoryFrontend   SkillCategory = "FRONTEND"
	SkillCategoryBackend    SkillCategory = "BACKEND"
	SkillCategoryDatabase   SkillCategory = "DATABASE"
	SkillCategoryDevOps     SkillCategory = "DEVOPS"
	SkillCategoryMobile     SkillCategory = "MOBILE"
	SkillCategorySoftSkills SkillCategory = "SOFT_SKILLS"
	SkillCategoryOther      SkillCategory = "OTHER"
)

// Valid reports whether c is one of the supported skill categories.
func (c SkillCategory) Valid() bool {
	switch c {
	case SkillCategoryFrontend, SkillCategoryBackend, SkillCategoryDatabase,
		SkillCategoryDevOps, SkillCategoryMobile, SkillCategorySoftSkills,
		SkillCategoryOther:
		return true
	default:
		return false
	}
}

// Skill is a rated skill entry. Level is a 0-100 proficiency score.
type Skill struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Level        int           `json:"level"`
	Category     SkillCategory `json:"category"`
	YearsOfExp   int           `json:"years_of_exp"`
	TechnologyID *uuid.UUID    `json:"technology_id,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// SkillTranslation is the per-language name and description of a skill.
type SkillTranslation struct {
	ID          uuid.UUID `json:"id"`
	SkillID     uuid.UUID `json:"skill_id"`
	Language    string    `json:"language"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// ResolvedSkill is a skill with the translation matching a requested
// language, or nil when no match exists.
type ResolvedSkill struct {
	Skill
	Translation *SkillTranslation `json:"translation"`
}

// SkillTranslationInput is a translation supplied on skill writes.
type SkillTranslationInput struct {
	Language    string `json:"language" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// SkillFilter narrows a skill listing.
type SkillFilter struct {
	Language string
	Category *SkillCategory
	Limit    int
	Offset   int
}
