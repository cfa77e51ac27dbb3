package dto

import "marketing_site/internal/domain/models"

type SectionContentInput struct {
	Language       string `json:"language" validate:"required,oneof=en he"`
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	BottomSubtitle string `json:"bottomSubtitle"`
	Content        string `json:"content"`
	ImageURL       string `json:"imageUrl"`
}

type CreateSectionRequest struct {
	Name        string                `json:"name" validate:"required"`
	Type        string                `json:"type" validate:"required,oneof=hero about services header"`
	OrderIndex  int                   `json:"orderIndex"`
	IsPublished *bool                 `json:"isPublished"`
	Contents    []SectionContentInput `json:"contents" validate:"required,min=1,dive"`
}

type UpdateSectionRequest struct {
	Name        *string `json:"name"`
	Type        *string `json:"type" validate:"omitempty,oneof=hero about services header"`
	OrderIndex  *int    `json:"orderIndex"`
	IsPublished *bool   `json:"isPublished"`
}

// Updates maps the set fields onto storage column names.
func (r UpdateSectionRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Type != nil {
		updates["type"] = *r.Type
	}
	if r.OrderIndex != nil {
		updates["order_index"] = *r.OrderIndex
	}
	if r.IsPublished != nil {
		updates["is_published"] = *r.IsPublished
	}
	return updates
}

func (r CreateSectionRequest) ToModel() models.Section {
	published := true
	if r.IsPublished != nil {
		published = *r.IsPublished
	}

	section := models.Section{
		Name:        r.Name,
		Type:        r.Type,
		OrderIndex:  r.OrderIndex,
		IsPublished: published,
	}
	for _, c := range r.Contents {
		section.Contents = append(section.Contents, models.SectionContent{
			Language:       c.Language,
			Title:          c.Title,
			Subtitle:       c.Subtitle,
			BottomSubtitle: c.BottomSubtitle,
			Content:        c.Content,
			ImageURL:       c.ImageURL,
		})
	}
	return section
}
