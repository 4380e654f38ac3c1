package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const avatarFolder = "shiftflow/avatars"

// CloudinaryStorageService implements StorageService on Cloudinary. A nil
// client means storage is unconfigured and uploads fail with
// ErrStorageDisabled.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorageService creates a CloudinaryStorageService.
func NewCloudinaryStorageService(cld *cloudinary.Cloudinary) *CloudinaryStorageService {
	return &CloudinaryStorageService{cld: cld}
}

// UploadAvatar stores a profile photo keyed by account id, overwriting any
// previous one, and returns the delivery URL.
func (s *CloudinaryStorageService) UploadAvatar(ctx context.Context, userID string, file io.Reader) (string, error) {
	if s.cld == nil {
		return "", ErrStorageDisabled
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:    avatarFolder,
		PublicID:  userID,
		Overwrite: api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("no URL returned for avatar upload")
	}
	return result.SecureURL, nil
}

// DeleteAvatar removes the account's stored photo. Missing photos are not
// an error.
func (s *CloudinaryStorageService) DeleteAvatar(ctx context.Context, userID string) error {
	if s.cld == nil {
		return ErrStorageDisabled
	}

	publicID := avatarFolder + "/" + userID
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete avatar: %w", err)
	}
	return nil
}
