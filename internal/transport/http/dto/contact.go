package dto

import "marketing_site/internal/domain/models"

type UpdateContactRequest struct {
	Language string `json:"language" validate:"required,oneof=en he"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
	Whatsapp string `json:"whatsapp"`
	Address  string `json:"address"`
	MapURL   string `json:"mapUrl"`
}

func (r UpdateContactRequest) ToModel() models.ContactInfo {
	return models.ContactInfo{
		Language: r.Language,
		Phone:    r.Phone,
		Email:    r.Email,
		Whatsapp: r.Whatsapp,
		Address:  r.Address,
		MapURL:   r.MapURL,
	}
}

type ContactMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}
