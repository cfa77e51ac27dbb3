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
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type MediaRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewMediaRepository(db *pgxpool.Pool) *MediaRepo {
	return &MediaRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *MediaRepo) CreateMedia(ctx context.Context, media *models.Media) (*models.Media, error) {
	const op = "repository.media_repository.CreateMedia"

	createdAt := media.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query, args, err := r.sb.Insert("media").
		Columns("filename", "path", "type", "size", "mime_type", "created_at").
		Values(media.Filename, media.Path, media.Type, media.Size, media.MimeType, createdAt).
		Suffix("RETURNING id, filename, path, type, size, mime_type, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var created models.Media
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&created.ID,
		&created.Filename,
		&created.Path,
		&created.Type,
		&created.Size,
		&created.MimeType,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &created, nil
}

func (r *MediaRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	const op = "repository.media_repository.FindByID"

	query, args, err := r.sb.
		Select("id", "filename", "path", "type", "size", "mime_type", "created_at").
		From("media").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var media models.Media
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&media.ID,
		&media.Filename,
		&media.Path,
		&media.Type,
		&media.Size,
		&media.MimeType,
		&media.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrFileNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &media, nil
}
