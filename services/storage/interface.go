package storage

import (
	"context"
	"errors"
	"io"
)

// ErrStorageDisabled is returned when no storage backend is configured.
var ErrStorageDisabled = errors.New("avatar storage is not configured")

// StorageService stores profile photos.
type StorageService interface {
	// UploadAvatar stores a profile photo for an account and returns its
	// delivery URL. Re-uploading replaces the previous photo.
	UploadAvatar(ctx context.Context, userID string, file io.Reader) (string, error)
	// DeleteAvatar removes an account's stored photo.
	DeleteAvatar(ctx context.Context, userID string) error
}
