package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path"

	"marketing_site/internal/domain/models"
	"marketing_site/internal/lib/logger/sl"
	"marketing_site/internal/repository"
	"marketing_site/internal/storage"
	filestorage "marketing_site/internal/storage/filestorage"
)

// allowedMimeTypes maps the accepted upload content types to the stored
// media kind.
var allowedMimeTypes = map[string]models.MediaType{
	"image/jpeg":      models.MediaTypeImage,
	"image/png":       models.MediaTypeImage,
	"image/gif":       models.MediaTypeImage,
	"application/pdf": models.MediaTypePDF,
}

type MediaService struct {
	log         *slog.Logger
	repo        repository.MediaRepository
	fileStorage filestorage.FileStorage
	maxSize     int64
}

func NewMediaService(log *slog.Logger, repo repository.MediaRepository, fileStorage filestorage.FileStorage, maxSize int64) *MediaService {
	return &MediaService{
		log:         log,
		repo:        repo,
		fileStorage: fileStorage,
		maxSize:     maxSize,
	}
}

// Upload validates, stores and records one uploaded file. field is the
// multipart form field name; it becomes part of the stored filename so
// uploads stay traceable to the form that produced them.
func (s *MediaService) Upload(ctx context.Context, field string, file *multipart.FileHeader) (*models.Media, error) {
	const op = "media_service.Upload"

	log := s.log.With(
		slog.String("op", op),
		slog.String("filename", file.Filename),
	)

	mimeType := file.Header.Get("Content-Type")
	mediaType, ok := allowedMimeTypes[mimeType]
	if !ok {
		log.Warn("rejected upload", slog.String("mime_type", mimeType))

		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidFileType)
	}

	if file.Size > s.maxSize {
		log.Warn("rejected upload", slog.Int64("size", file.Size))

		return nil, fmt.Errorf("%s: %w", op, storage.ErrFileTooLarge)
	}

	name := filestorage.UniqueName(field, file.Filename)

	filePath, fileSize, err := s.fileStorage.Save(ctx, file, name)
	if err != nil {
		log.Error("failed to save file", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	media, err := s.repo.CreateMedia(ctx, &models.Media{
		Filename: name,
		Path:     path.Join(s.fileStorage.BaseURL(), filePath),
		Type:     mediaType,
		Size:     fileSize,
		MimeType: mimeType,
	})
	if err != nil {
		_ = s.fileStorage.Delete(ctx, filePath)
		log.Error("failed to record media", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("file uploaded", slog.String("path", media.Path))

	return media, nil
}
