package repository

import (
	"context"
	"time"

	"marketing_site/internal/domain/models"

	"github.com/google/uuid"
)

type SectionRepository interface {
	SaveSection(ctx context.Context, section models.Section) (uuid.UUID, error)
	GetSection(ctx context.Context, id uuid.UUID) (*models.Section, error)
	ListSections(ctx context.Context, sectionType, language string, published *bool) ([]models.Section, error)
	FindByType(ctx context.Context, sectionType, language string, published *bool) (*models.Section, error)
	UpdateSectionFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	UpsertContent(ctx context.Context, content models.SectionContent) error
	UpdateContentByID(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteSection(ctx context.Context, id uuid.UUID) error
}

type ArticleRepository interface {
	SaveArticle(ctx context.Context, article models.Article) (uuid.UUID, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*models.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	ListArticles(ctx context.Context, published *bool) ([]models.Article, error)
	UpdateArticleFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	UpsertContent(ctx context.Context, content models.ArticleContent) error
	UpdateContentByID(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteArticle(ctx context.Context, id uuid.UUID) error
}

type ContactRepository interface {
	GetByLanguage(ctx context.Context, language string) (*models.ContactInfo, error)
	Upsert(ctx context.Context, info models.ContactInfo) (*models.ContactInfo, error)
}

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error
	GetRefreshToken(ctx context.Context, userID, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID, token string) error
	DeleteAllUserTokens(ctx context.Context, userID string) error
}

type MediaRepository interface {
	CreateMedia(ctx context.Context, media *models.Media) (*models.Media, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Media, error)
}
