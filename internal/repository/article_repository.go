package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketing_site/internal/domain/models"
	"marketing_site/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const uniqueViolationCode = "23505"

var articleColumns = map[string]struct{}{
	"slug":         {},
	"is_published": {},
	"publish_date": {},
}

var articleContentColumns = map[string]struct{}{
	"title":     {},
	"excerpt":   {},
	"content":   {},
	"image_url": {},
	"pdf_url":   {},
}

type ArticleRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewArticleRepository(db *pgxpool.Pool) *ArticleRepo {
	return &ArticleRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ArticleRepo) SaveArticle(ctx context.Context, article models.Article) (uuid.UUID, error) {
	const op = "repository.article_repository.SaveArticle"

	publishDate := article.PublishDate
	if publishDate.IsZero() {
		publishDate = time.Now().UTC()
	}

	query, args, err := r.sb.Insert("articles").
		Columns("slug", "is_published", "publish_date").
		Values(article.Slug, article.IsPublished, publishDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrSlugTaken)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, content := range article.Contents {
		content.ArticleID = id
		if err := r.UpsertContent(ctx, content); err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return id, nil
}

func (r *ArticleRepo) GetArticle(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	const op = "repository.article_repository.GetArticle"

	article, err := r.findOne(ctx, sq.Eq{"id": id})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}

// GetArticleBySlug is a direct indexed lookup; slugs are unique so at most
// one row can match.
func (r *ArticleRepo) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	const op = "repository.article_repository.GetArticleBySlug"

	article, err := r.findOne(ctx, sq.Eq{"slug": slug})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}

func (r *ArticleRepo) ListArticles(ctx context.Context, published *bool) ([]models.Article, error) {
	const op = "repository.article_repository.ListArticles"

	builder := r.sb.
		Select("id", "slug", "is_published", "publish_date", "created_at", "updated_at").
		From("articles").
		OrderBy("publish_date DESC")

	if published != nil {
		builder = builder.Where(sq.Eq{"is_published": *published})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var articles []models.Article
	var ids []uuid.UUID
	for rows.Next() {
		var article models.Article
		err = rows.Scan(
			&article.ID,
			&article.Slug,
			&article.IsPublished,
			&article.PublishDate,
			&article.CreatedAt,
			&article.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		articles = append(articles, article)
		ids = append(ids, article.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(articles) == 0 {
		return []models.Article{}, nil
	}

	contents, err := r.contentsFor(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	byArticle := make(map[uuid.UUID][]models.ArticleContent, len(articles))
	for _, content := range contents {
		byArticle[content.ArticleID] = append(byArticle[content.ArticleID], content)
	}
	for i := range articles {
		articles[i].Contents = byArticle[articles[i].ID]
	}

	return articles, nil
}

func (r *ArticleRepo) UpdateArticleFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.article_repository.UpdateArticleFields"

	builder := r.sb.Update("articles").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})

	touched := false
	for column, value := range updates {
		if _, ok := articleColumns[column]; !ok {
			continue
		}
		builder = builder.Set(column, value)
		touched = true
	}
	if !touched {
		return nil
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrSlugTaken)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *ArticleRepo) UpsertContent(ctx context.Context, content models.ArticleContent) error {
	const op = "repository.article_repository.UpsertContent"

	query, args, err := r.sb.Insert("article_contents").
		Columns("article_id", "language", "title", "excerpt", "content", "image_url", "pdf_url").
		Values(
			content.ArticleID,
			content.Language,
			content.Title,
			content.Excerpt,
			content.Content,
			content.ImageURL,
			content.PDFURL,
		).
		Suffix(`ON CONFLICT (article_id, language) DO UPDATE SET
			title = EXCLUDED.title,
			excerpt = EXCLUDED.excerpt,
			content = EXCLUDED.content,
			image_url = EXCLUDED.image_url,
			pdf_url = EXCLUDED.pdf_url`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *ArticleRepo) UpdateContentByID(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.article_repository.UpdateContentByID"

	builder := r.sb.Update("article_contents").Where(sq.Eq{"id": id})

	touched := false
	for column, value := range updates {
		if _, ok := articleContentColumns[column]; !ok {
			continue
		}
		builder = builder.Set(column, value)
		touched = true
	}
	if !touched {
		return nil
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *ArticleRepo) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	const op = "repository.article_repository.DeleteArticle"

	query, args, err := r.sb.Delete("articles").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *ArticleRepo) findOne(ctx context.Context, where sq.Eq) (*models.Article, error) {
	query, args, err := r.sb.
		Select("id", "slug", "is_published", "publish_date", "created_at", "updated_at").
		From("articles").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("can't build sql: %w", err)
	}

	var article models.Article
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&article.ID,
		&article.Slug,
		&article.IsPublished,
		&article.PublishDate,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	article.Contents, err = r.contentsFor(ctx, []uuid.UUID{article.ID})
	if err != nil {
		return nil, err
	}

	return &article, nil
}

func (r *ArticleRepo) contentsFor(ctx context.Context, articleIDs []uuid.UUID) ([]models.ArticleContent, error) {
	const op = "repository.article_repository.contentsFor"

	query, args, err := r.sb.
		Select("id", "article_id", "language", "title", "excerpt", "content", "image_url", "pdf_url").
		From("article_contents").
		Where(sq.Eq{"article_id": articleIDs}).
		OrderBy("language ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var contents []models.ArticleContent
	for rows.Next() {
		var content models.ArticleContent
		err = rows.Scan(
			&content.ID,
			&content.ArticleID,
			&content.Language,
			&content.Title,
			&content.Excerpt,
			&content.Content,
			&content.ImageURL,
			&content.PDFURL,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		contents = append(contents, content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contents, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
