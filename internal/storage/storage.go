package storage

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrSlugTaken     = errors.New("slug already taken")
	ErrContentExists = errors.New("content for this language already exists")
	ErrUserExists    = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileNotFound    = errors.New("file not found")
)
