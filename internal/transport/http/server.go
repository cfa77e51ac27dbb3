// Package http holds the echo handlers. Route registration and server
// lifecycle live in internal/app/http.
package http

import (
	"context"
	"log/slog"
	"mime/multipart"

	"marketing_site/internal/domain/models"
	"marketing_site/internal/email"

	"github.com/google/uuid"
)

type SectionService interface {
	GetSections(ctx context.Context, sectionType, language string, admin bool) ([]models.Section, error)
	GetSectionByType(ctx context.Context, sectionType, language string) (*models.Section, error)
	GetSection(ctx context.Context, id uuid.UUID) (*models.Section, error)
	CreateSection(ctx context.Context, section models.Section) (uuid.UUID, error)
	UpdateSection(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	UpsertSectionContent(ctx context.Context, content models.SectionContent) error
	DeleteSection(ctx context.Context, id uuid.UUID) error
}

type ArticleService interface {
	CreateArticle(ctx context.Context, article models.Article) (uuid.UUID, error)
	GetArticle(ctx context.Context, id uuid.UUID, language string) (*models.Article, error)
	GetArticleBySlug(ctx context.Context, slug, language string) (*models.Article, error)
	ListArticles(ctx context.Context, language string, admin bool) ([]models.Article, error)
	UpdateArticle(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	UpsertArticleContent(ctx context.Context, content models.ArticleContent) error
	DeleteArticle(ctx context.Context, id uuid.UUID) error
}

type ContactService interface {
	GetContact(ctx context.Context, language string) (*models.ContactInfo, error)
	UpdateContact(ctx context.Context, info models.ContactInfo) (*models.ContactInfo, error)
	SendMessage(ctx context.Context, data email.ContactMessageData) error
}

type UserService interface {
	Login(ctx context.Context, email, password string) (models.User, *models.TokenPair, error)
	RegisterNewUser(ctx context.Context, email, name, password string) (uuid.UUID, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type AuthService interface {
	RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type MediaService interface {
	Upload(ctx context.Context, field string, file *multipart.FileHeader) (*models.Media, error)
}

type Routers struct {
	log            *slog.Logger
	SectionService SectionService
	ArticleService ArticleService
	ContactService ContactService
	UserService    UserService
	AuthService    AuthService
	MediaService   MediaService
}

func NewRouter(
	log *slog.Logger,
	sectionService SectionService,
	articleService ArticleService,
	contactService ContactService,
	userService UserService,
	authService AuthService,
	mediaService MediaService,
) *Routers {
	return &Routers{
		log:            log,
		SectionService: sectionService,
		ArticleService: articleService,
		ContactService: contactService,
		UserService:    userService,
		AuthService:    authService,
		MediaService:   mediaService,
	}
}

// language reads the requested content language from the query string.
// Absent or unknown values fall back to english rather than erroring, so
// stale clients keep working.
func language(value string) string {
	switch value {
	case models.LanguageEN, models.LanguageHE:
		return value
	default:
		return models.LanguageEN
	}
}
