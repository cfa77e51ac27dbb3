package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"marketing_site/internal/content"
	"marketing_site/internal/domain/models"
	"marketing_site/internal/lib/logger/sl"
	"marketing_site/internal/repository"
	"marketing_site/internal/storage"

	"github.com/google/uuid"
)

var ErrSectionNotFound = errors.New("section not found")

// SectionService serves the editable page sections. Sections of the
// services type carry structured JSON in their content field; the service
// normalizes legacy encodings to the canonical shape on every read and
// writes the migrated form back so the stored data converges over time.
type SectionService struct {
	log  *slog.Logger
	repo repository.SectionRepository
}

func NewSectionService(log *slog.Logger, repo repository.SectionRepository) *SectionService {
	return &SectionService{log: log, repo: repo}
}

// GetSections lists sections for the public page or the admin dashboard.
// Public callers see published sections only; admin callers see drafts too.
func (s *SectionService) GetSections(ctx context.Context, sectionType, language string, admin bool) ([]models.Section, error) {
	const op = "section_service.GetSections"

	var published *bool
	if !admin {
		p := true
		published = &p
	}

	sections, err := s.repo.ListSections(ctx, sectionType, language, published)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range sections {
		s.normalizeSection(ctx, &sections[i])
	}

	return sections, nil
}

// GetSectionByType returns the first published section of the given type.
// When the requested language has no content row, all rows are returned so
// the caller can fall back to whichever language exists.
func (s *SectionService) GetSectionByType(ctx context.Context, sectionType, language string) (*models.Section, error) {
	const op = "section_service.GetSectionByType"

	published := true
	section, err := s.repo.FindByType(ctx, sectionType, language, &published)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrSectionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.normalizeSection(ctx, section)

	return section, nil
}

func (s *SectionService) GetSection(ctx context.Context, id uuid.UUID) (*models.Section, error) {
	const op = "section_service.GetSection"

	section, err := s.repo.GetSection(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrSectionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.normalizeSection(ctx, section)

	return section, nil
}

func (s *SectionService) CreateSection(ctx context.Context, section models.Section) (uuid.UUID, error) {
	const op = "section_service.CreateSection"

	// The id is assigned up front so normalized services content can
	// embed it in synthesized card ids.
	if section.ID == uuid.Nil {
		section.ID = uuid.New()
	}

	if section.Type == models.SectionTypeServices {
		for i := range section.Contents {
			row := &section.Contents[i]
			if normalized, changed := content.Normalize(row.Content, section.ID.String(), row.Title); changed {
				row.Content = normalized
			}
		}
	}

	id, err := s.repo.SaveSection(ctx, section)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("section created",
		slog.String("op", op),
		slog.String("section_id", id.String()),
		slog.String("type", section.Type),
	)

	return id, nil
}

func (s *SectionService) UpdateSection(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "section_service.UpdateSection"

	if err := s.repo.UpdateSectionFields(ctx, id, updates); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrSectionNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpsertSectionContent writes one language's content row. For services
// sections the content JSON is normalized to the canonical encoding
// before it is stored.
func (s *SectionService) UpsertSectionContent(ctx context.Context, sectionContent models.SectionContent) error {
	const op = "section_service.UpsertSectionContent"

	section, err := s.repo.GetSection(ctx, sectionContent.SectionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrSectionNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if section.Type == models.SectionTypeServices {
		if normalized, changed := content.Normalize(sectionContent.Content, section.ID.String(), sectionContent.Title); changed {
			sectionContent.Content = normalized
		}
	}

	if err := s.repo.UpsertContent(ctx, sectionContent); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *SectionService) UpdateSectionContent(ctx context.Context, contentID uuid.UUID, updates map[string]interface{}) error {
	const op = "section_service.UpdateSectionContent"

	if err := s.repo.UpdateContentByID(ctx, contentID, updates); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrSectionNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *SectionService) DeleteSection(ctx context.Context, id uuid.UUID) error {
	const op = "section_service.DeleteSection"

	if err := s.repo.DeleteSection(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrSectionNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("section deleted", slog.String("op", op), slog.String("section_id", id.String()))

	return nil
}

// normalizeSection migrates legacy services encodings in place. The
// write-back is best effort: a failure is logged and the normalized form
// is still served.
func (s *SectionService) normalizeSection(ctx context.Context, section *models.Section) {
	if section.Type != models.SectionTypeServices {
		return
	}

	for i := range section.Contents {
		row := &section.Contents[i]

		normalized, changed := content.Normalize(row.Content, section.ID.String(), row.Title)
		if !changed {
			continue
		}

		row.Content = normalized

		err := s.repo.UpdateContentByID(ctx, row.ID, map[string]interface{}{"content": normalized})
		if err != nil {
			s.log.Warn("failed to persist normalized services content",
				slog.String("section_id", section.ID.String()),
				slog.String("language", row.Language),
				sl.Err(err),
			)
		}
	}
}
