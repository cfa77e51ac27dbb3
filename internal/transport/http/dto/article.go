package dto

import (
	"time"

	"marketing_site/internal/domain/models"
)

type ArticleContentInput struct {
	Language string `json:"language" validate:"required,oneof=en he"`
	Title    string `json:"title" validate:"required"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
	PDFURL   string `json:"pdfUrl"`
}

type CreateArticleRequest struct {
	Slug        string                `json:"slug" validate:"required"`
	IsPublished bool                  `json:"isPublished"`
	PublishDate *time.Time            `json:"publishDate"`
	Contents    []ArticleContentInput `json:"contents" validate:"dive"`
}

type UpdateArticleRequest struct {
	Slug        *string    `json:"slug"`
	IsPublished *bool      `json:"isPublished"`
	PublishDate *time.Time `json:"publishDate"`
}

func (r UpdateArticleRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Slug != nil {
		updates["slug"] = *r.Slug
	}
	if r.IsPublished != nil {
		updates["is_published"] = *r.IsPublished
	}
	if r.PublishDate != nil {
		updates["publish_date"] = *r.PublishDate
	}
	return updates
}

func (r CreateArticleRequest) ToModel() models.Article {
	article := models.Article{
		Slug:        r.Slug,
		IsPublished: r.IsPublished,
	}
	if r.PublishDate != nil {
		article.PublishDate = *r.PublishDate
	}
	for _, c := range r.Contents {
		article.Contents = append(article.Contents, models.ArticleContent{
			Language: c.Language,
			Title:    c.Title,
			Excerpt:  c.Excerpt,
			Content:  c.Content,
			ImageURL: c.ImageURL,
			PDFURL:   c.PDFURL,
		})
	}
	return article
}
