package repository

import (
	"context"
	"errors"
	"fmt"

	"marketing_site/internal/domain/models"
	"marketing_site/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ContactRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ContactRepo) GetByLanguage(ctx context.Context, language string) (*models.ContactInfo, error) {
	const op = "repository.contact_repository.GetByLanguage"

	query, args, err := r.sb.
		Select("id", "language", "phone", "email", "whatsapp", "address", "map_url").
		From("contact_info").
		Where(sq.Eq{"language": language}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var info models.ContactInfo
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&info.ID,
		&info.Language,
		&info.Phone,
		&info.Email,
		&info.Whatsapp,
		&info.Address,
		&info.MapURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &info, nil
}

// Upsert writes the single contact row for a language; concurrent writers
// race on the unique language key, last write wins.
func (r *ContactRepo) Upsert(ctx context.Context, info models.ContactInfo) (*models.ContactInfo, error) {
	const op = "repository.contact_repository.Upsert"

	query, args, err := r.sb.Insert("contact_info").
		Columns("language", "phone", "email", "whatsapp", "address", "map_url").
		Values(info.Language, info.Phone, info.Email, info.Whatsapp, info.Address, info.MapURL).
		Suffix(`ON CONFLICT (language) DO UPDATE SET
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			whatsapp = EXCLUDED.whatsapp,
			address = EXCLUDED.address,
			map_url = EXCLUDED.map_url
			RETURNING id, language, phone, email, whatsapp, address, map_url`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var saved models.ContactInfo
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&saved.ID,
		&saved.Language,
		&saved.Phone,
		&saved.Email,
		&saved.Whatsapp,
		&saved.Address,
		&saved.MapURL,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &saved, nil
}
