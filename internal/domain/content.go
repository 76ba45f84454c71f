package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContentType is an advisory rendering hint for a content item's value.
// It is not enforced at the storage layer.
type ContentType string

// Supported content types.
const (
	ContentTypeText     ContentType = "TEXT"
	ContentTypeMarkdown ContentType = "MARKDOWN"
	ContentTypeHTML     ContentType = "HTML"
)

// Valid reports whether t is one of the supported content types.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeText, ContentTypeMarkdown, ContentTypeHTML:
		return true
	default:
		return false
	}
}

// Content is a named, categorized unit of user-facing text.
// Keys are dot-namespaced, e.g. "about.welcome".
type Content struct {
	ID        uuid.UUID   `json:"id"`
	Key       string      `json:"key"`
	Type      ContentType `json:"type"`
	Category  string      `json:"category"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ContentTranslation is the per-language value of a content item.
// At most one translation exists per (content, language) pair.
type ContentTranslation struct {
	ID        uuid.UUID `json:"id"`
	ContentID uuid.UUID `json:"content_id"`
	Language  string    `json:"language"`
	Value     string    `json:"value"`
}

// ResolvedContent is a content item with the single translation matching a
// requested language, or a nil translation when no match exists. Resolution
// never fails for a missing language; it degrades to nil.
type ResolvedContent struct {
	Content
	Translation *ContentTranslation `json:"translation"`
}

// ContentDetail is a content item with its full translation set,
// used by the admin listing.
type ContentDetail struct {
	Content
	Translations []ContentTranslation `json:"translations"`
}

// TranslationInput is a language/value pair supplied on content writes.
type TranslationInput struct {
	Language string `json:"language" binding:"required"`
	Value    string `json:"value" binding:"required"`
}
