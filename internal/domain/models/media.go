package models

import (
	"time"

	"github.com/google/uuid"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypePDF   MediaType = "pdf"
)

// Media records one uploaded file. Content fields reference media by URL
// only; rows are never strongly linked to sections or articles.
type Media struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Filename  string    `db:"filename" json:"filename"`
	Path      string    `db:"path" json:"path"`
	Type      MediaType `db:"type" json:"type"`
	Size      int64     `db:"size" json:"size"`
	MimeType  string    `db:"mime_type" json:"mimeType"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
