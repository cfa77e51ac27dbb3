package models

import (
	"time"

	"github.com/google/uuid"
)

// Section is a named, typed, orderable block of the public page (hero,
// about, services, header). Its text lives in per-language SectionContent
// rows.
type Section struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	Name        string           `db:"name" json:"name"`
	Type        string           `db:"type" json:"type"`
	OrderIndex  int              `db:"order_index" json:"orderIndex"`
	IsPublished bool             `db:"is_published" json:"isPublished"`
	CreatedAt   time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updatedAt"`
	Contents    []SectionContent `json:"contents"`
}

// SectionContent holds one language's payload for a section. Content is
// an opaque string: prose or HTML for most section types, a JSON
// services document for type "services" (see internal/content).
// At most one row exists per (section, language).
type SectionContent struct {
	ID             uuid.UUID `db:"id" json:"id"`
	SectionID      uuid.UUID `db:"section_id" json:"sectionId"`
	Language       string    `db:"language" json:"language"`
	Title          string    `db:"title" json:"title"`
	Subtitle       string    `db:"subtitle" json:"subtitle,omitempty"`
	BottomSubtitle string    `db:"bottom_subtitle" json:"bottomSubtitle,omitempty"`
	Content        string    `db:"content" json:"content,omitempty"`
	ImageURL       string    `db:"image_url" json:"imageUrl,omitempty"`
}

const (
	SectionTypeHero     = "hero"
	SectionTypeAbout    = "about"
	SectionTypeServices = "services"
	SectionTypeHeader   = "header"
)

const (
	LanguageEN = "en"
	LanguageHE = "he"
)
