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

// sectionColumns is the set of section fields a partial update may touch.
// Anything outside this map is silently dropped, so a request body cannot
// rewrite ids or timestamps.
var sectionColumns = map[string]struct{}{
	"name":         {},
	"type":         {},
	"order_index":  {},
	"is_published": {},
}

// sectionContentColumns mirrors sectionColumns for per-language rows.
var sectionContentColumns = map[string]struct{}{
	"title":           {},
	"subtitle":        {},
	"bottom_subtitle": {},
	"content":         {},
	"image_url":       {},
}

type SectionRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSectionRepository(db *pgxpool.Pool) *SectionRepo {
	return &SectionRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *SectionRepo) SaveSection(ctx context.Context, section models.Section) (uuid.UUID, error) {
	const op = "repository.section_repository.SaveSection"

	builder := r.sb.Insert("sections")
	// Callers may pre-assign the id so content that embeds it (services
	// card ids) can be built before the insert.
	if section.ID != uuid.Nil {
		builder = builder.
			Columns("id", "name", "type", "order_index", "is_published").
			Values(section.ID, section.Name, section.Type, section.OrderIndex, section.IsPublished)
	} else {
		builder = builder.
			Columns("name", "type", "order_index", "is_published").
			Values(section.Name, section.Type, section.OrderIndex, section.IsPublished)
	}

	query, args, err := builder.
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, content := range section.Contents {
		content.SectionID = id
		if err := r.UpsertContent(ctx, content); err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return id, nil
}

func (r *SectionRepo) GetSection(ctx context.Context, id uuid.UUID) (*models.Section, error) {
	const op = "repository.section_repository.GetSection"

	query, args, err := r.sb.
		Select("id", "name", "type", "order_index", "is_published", "created_at", "updated_at").
		From("sections").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var section models.Section
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&section.ID,
		&section.Name,
		&section.Type,
		&section.OrderIndex,
		&section.IsPublished,
		&section.CreatedAt,
		&section.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	section.Contents, err = r.contentsFor(ctx, []uuid.UUID{section.ID})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &section, nil
}

func (r *SectionRepo) ListSections(ctx context.Context, sectionType, language string, published *bool) ([]models.Section, error) {
	const op = "repository.section_repository.ListSections"

	builder := r.sb.
		Select("id", "name", "type", "order_index", "is_published", "created_at", "updated_at").
		From("sections").
		OrderBy("order_index ASC", "created_at ASC")

	if sectionType != "" {
		builder = builder.Where(sq.Eq{"type": sectionType})
	}
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

	var sections []models.Section
	var ids []uuid.UUID
	for rows.Next() {
		var section models.Section
		err = rows.Scan(
			&section.ID,
			&section.Name,
			&section.Type,
			&section.OrderIndex,
			&section.IsPublished,
			&section.CreatedAt,
			&section.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		sections = append(sections, section)
		ids = append(ids, section.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(sections) == 0 {
		return []models.Section{}, nil
	}

	contents, err := r.contentsFor(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bySection := make(map[uuid.UUID][]models.SectionContent, len(sections))
	for _, content := range contents {
		if language == "" || content.Language == language {
			bySection[content.SectionID] = append(bySection[content.SectionID], content)
		}
	}
	for i := range sections {
		sections[i].Contents = bySection[sections[i].ID]
	}

	return sections, nil
}

// FindByType returns the first section of the given type, ordered the same
// way as ListSections. Content rows are filtered by language when one is
// given; if the section has no row in that language all rows are returned
// so callers can fall back to another language.
func (r *SectionRepo) FindByType(ctx context.Context, sectionType, language string, published *bool) (*models.Section, error) {
	const op = "repository.section_repository.FindByType"

	builder := r.sb.
		Select("id", "name", "type", "order_index", "is_published", "created_at", "updated_at").
		From("sections").
		Where(sq.Eq{"type": sectionType}).
		OrderBy("order_index ASC", "created_at ASC").
		Limit(1)

	if published != nil {
		builder = builder.Where(sq.Eq{"is_published": *published})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var section models.Section
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&section.ID,
		&section.Name,
		&section.Type,
		&section.OrderIndex,
		&section.IsPublished,
		&section.CreatedAt,
		&section.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	all, err := r.contentsFor(ctx, []uuid.UUID{section.ID})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if language != "" {
		for _, content := range all {
			if content.Language == language {
				section.Contents = append(section.Contents, content)
			}
		}
	}
	if len(section.Contents) == 0 {
		section.Contents = all
	}

	return &section, nil
}

func (r *SectionRepo) UpdateSectionFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.section_repository.UpdateSectionFields"

	builder := r.sb.Update("sections").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})

	touched := false
	for column, value := range updates {
		if _, ok := sectionColumns[column]; !ok {
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

// UpsertContent writes the per-language row for a section, inserting or
// replacing it atomically on the (section_id, language) key.
func (r *SectionRepo) UpsertContent(ctx context.Context, content models.SectionContent) error {
	const op = "repository.section_repository.UpsertContent"

	query, args, err := r.sb.Insert("section_contents").
		Columns("section_id", "language", "title", "subtitle", "bottom_subtitle", "content", "image_url").
		Values(
			content.SectionID,
			content.Language,
			content.Title,
			content.Subtitle,
			content.BottomSubtitle,
			content.Content,
			content.ImageURL,
		).
		Suffix(`ON CONFLICT (section_id, language) DO UPDATE SET
			title = EXCLUDED.title,
			subtitle = EXCLUDED.subtitle,
			bottom_subtitle = EXCLUDED.bottom_subtitle,
			content = EXCLUDED.content,
			image_url = EXCLUDED.image_url`).
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

func (r *SectionRepo) UpdateContentByID(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.section_repository.UpdateContentByID"

	builder := r.sb.Update("section_contents").Where(sq.Eq{"id": id})

	touched := false
	for column, value := range updates {
		if _, ok := sectionContentColumns[column]; !ok {
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

func (r *SectionRepo) DeleteSection(ctx context.Context, id uuid.UUID) error {
	const op = "repository.section_repository.DeleteSection"

	query, args, err := r.sb.Delete("sections").Where(sq.Eq{"id": id}).ToSql()
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

func (r *SectionRepo) contentsFor(ctx context.Context, sectionIDs []uuid.UUID) ([]models.SectionContent, error) {
	const op = "repository.section_repository.contentsFor"

	query, args, err := r.sb.
		Select("id", "section_id", "language", "title", "subtitle", "bottom_subtitle", "content", "image_url").
		From("section_contents").
		Where(sq.Eq{"section_id": sectionIDs}).
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

	var contents []models.SectionContent
	for rows.Next() {
		var content models.SectionContent
		err = rows.Scan(
			&content.ID,
			&content.SectionID,
			&content.Language,
			&content.Title,
			&content.Subtitle,
			&content.BottomSubtitle,
			&content.Content,
			&content.ImageURL,
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
