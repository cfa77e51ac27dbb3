package models

import "github.com/google/uuid"

// ContactInfo is the contact block shown on the public page, one row per
// language, upserted and never duplicated.
type ContactInfo struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Language string    `db:"language" json:"language"`
	Phone    string    `db:"phone" json:"phone,omitempty"`
	Email    string    `db:"email" json:"email,omitempty"`
	Whatsapp string    `db:"whatsapp" json:"whatsapp,omitempty"`
	Address  string    `db:"address" json:"address,omitempty"`
	MapURL   string    `db:"map_url" json:"mapUrl,omitempty"`
}
