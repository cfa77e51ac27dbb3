package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"marketing_site/internal/domain/models"
	"marketing_site/internal/repository"
	"marketing_site/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrSlugTaken       = errors.New("slug already taken")
)

type ArticleService struct {
	log  *slog.Logger
	repo repository.ArticleRepository
}

func NewArticleService(log *slog.Logger, repo repository.ArticleRepository) *ArticleService {
	return &ArticleService{log: log, repo: repo}
}

func (s *ArticleService) CreateArticle(ctx context.Context, article models.Article) (uuid.UUID, error) {
	const op = "article_service.CreateArticle"

	id, err := s.repo.SaveArticle(ctx, article)
	if err != nil {
		if errors.Is(err, storage.ErrSlugTaken) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrSlugTaken)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("article created",
		slog.String("op", op),
		slog.String("article_id", id.String()),
		slog.String("slug", article.Slug),
	)

	return id, nil
}

func (s *ArticleService) GetArticle(ctx context.Context, id uuid.UUID, language string) (*models.Article, error) {
	const op = "article_service.GetArticle"

	article, err := s.repo.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrArticleNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	filterArticleLanguage(article, language)

	return article, nil
}

func (s *ArticleService) GetArticleBySlug(ctx context.Context, slug, language string) (*models.Article, error) {
	const op = "article_service.GetArticleBySlug"

	article, err := s.repo.GetArticleBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrArticleNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	filterArticleLanguage(article, language)

	return article, nil
}

// ListArticles returns articles newest first. Public callers see only
// published articles in their language; admin callers see everything.
func (s *ArticleService) ListArticles(ctx context.Context, language string, admin bool) ([]models.Article, error) {
	const op = "article_service.ListArticles"

	var published *bool
	if !admin {
		p := true
		published = &p
	}

	articles, err := s.repo.ListArticles(ctx, published)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !admin && language != "" {
		for i := range articles {
			var filtered []models.ArticleContent
			for _, content := range articles[i].Contents {
				if content.Language == language {
					filtered = append(filtered, content)
				}
			}
			if filtered != nil {
				articles[i].Contents = filtered
			}
		}
	}

	return articles, nil
}

func (s *ArticleService) UpdateArticle(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "article_service.UpdateArticle"

	if err := s.repo.UpdateArticleFields(ctx, id, updates); err != nil {
		if errors.Is(err, storage.ErrSlugTaken) {
			return fmt.Errorf("%s: %w", op, ErrSlugTaken)
		}
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrArticleNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *ArticleService) UpsertArticleContent(ctx context.Context, content models.ArticleContent) error {
	const op = "article_service.UpsertArticleContent"

	if _, err := s.repo.GetArticle(ctx, content.ArticleID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrArticleNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.UpsertContent(ctx, content); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	const op = "article_service.DeleteArticle"

	if err := s.repo.DeleteArticle(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrArticleNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("article deleted", slog.String("op", op), slog.String("article_id", id.String()))

	return nil
}

// filterArticleLanguage keeps only the requested language when the
// article has a row for it; otherwise all rows stay so a reader in a
// language without a translation still sees something.
func filterArticleLanguage(article *models.Article, language string) {
	if language == "" {
		return
	}

	var filtered []models.ArticleContent
	for _, content := range article.Contents {
		if content.Language == language {
			filtered = append(filtered, content)
		}
	}
	if filtered != nil {
		article.Contents = filtered
	}
}
