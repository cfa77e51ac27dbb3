package models

import (
	"time"

	"github.com/google/uuid"
)

// Article is a published piece addressed by a globally unique slug.
type Article struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	Slug        string           `db:"slug" json:"slug"`
	IsPublished bool             `db:"is_published" json:"isPublished"`
	PublishDate time.Time        `db:"publish_date" json:"publishDate"`
	CreatedAt   time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updatedAt"`
	Contents    []ArticleContent `json:"contents"`
}

// ArticleContent is one language's payload for an article. Same
// one-row-per-language invariant as SectionContent.
type ArticleContent struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ArticleID uuid.UUID `db:"article_id" json:"articleId"`
	Language  string    `db:"language" json:"language"`
	Title     string    `db:"title" json:"title"`
	Excerpt   string    `db:"excerpt" json:"excerpt,omitempty"`
	Content   string    `db:"content" json:"content,omitempty"`
	ImageURL  string    `db:"image_url" json:"imageUrl,omitempty"`
	PDFURL    string    `db:"pdf_url" json:"pdfUrl,omitempty"`
}
