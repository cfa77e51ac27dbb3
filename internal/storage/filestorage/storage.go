package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// FileStorage is the part of the file system the upload path needs.
type FileStorage interface {
	Save(ctx context.Context, file *multipart.FileHeader, name string) (filePath string, fileSize int64, err error)
	Delete(ctx context.Context, filePath string) error
	FullPath(relativePath string) string
	BaseURL() string
	BaseDir() string
}

// LocalFileStorage writes uploads under a base directory that the HTTP
// server serves statically at /uploads.
type LocalFileStorage struct {
	baseDir string
	baseURL string
}

func NewLocalFileStorage(baseDir, baseURL string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: baseURL,
	}, nil
}

// UniqueName builds a stored filename from the form field and the
// original extension: <field>-<unix ms>-<rand><ext>.
func UniqueName(field, originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
}

func (s *LocalFileStorage) Save(ctx context.Context, file *multipart.FileHeader, name string) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	filePath := filepath.Join(s.baseDir, name)

	src, err := file.Open()
	if err != nil {
		return "", 0, fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(filePath)
		return "", 0, fmt.Errorf("failed to copy file: %w", err)
	}

	return name, size, nil
}

func (s *LocalFileStorage) Delete(ctx context.Context, filePath string) error {
	return os.Remove(filepath.Join(s.baseDir, filePath))
}

func (s *LocalFileStorage) FullPath(relativePath string) string {
	return filepath.Join(s.baseDir, relativePath)
}

func (s *LocalFileStorage) BaseURL() string {
	return s.baseURL
}

func (s *LocalFileStorage) BaseDir() string {
	return s.baseDir
}
