package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/jobmarket-server/internal/model"
)

// MaxImageSize is the largest accepted image upload.
const MaxImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// storeImage checks an upload and writes it under prefix/id/. It returns
// the object key and its public URL.
func storeImage(ctx context.Context, storage model.Storage, prefix string, id int64, upload model.Upload) (string, string, error) {
	ext, ok := imageExtensions[upload.ContentType]
	if !ok {
		return "", "", model.NewValidationError("file", "only image files are allowed")
	}
	if upload.Size > MaxImageSize {
		return "", "", model.NewValidationError("file", "file exceeds 5MB limit")
	}

	key := fmt.Sprintf("%s/%d/%s%s", prefix, id, uuid.NewString(), ext)
	reader := io.LimitReader(upload.Reader, MaxImageSize+1)
	if err := storage.Upload(ctx, key, reader, upload.Size, upload.ContentType); err != nil {
		return "", "", fmt.Errorf("failed to upload %s image: %w", prefix, err)
	}
	return key, storage.URL(key), nil
}

// dropImage deletes a replaced image when it lives in our bucket. It
// returns the key it tried to delete.
func dropImage(ctx context.Context, storage model.Storage, previous *string) (string, error) {
	if previous == nil {
		return "", nil
	}
	key, ok := storage.KeyFromURL(*previous)
	if !ok {
		return "", nil
	}
	return key, storage.Delete(ctx, key)
}

func lookupError(resource string, id int64, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return &model.NotFoundError{Resource: resource, ID: id}
	}
	return fmt.Errorf("failed to access %s %d: %w", strings.ToLower(resource), id, err)
}

// referenceError reports a dangling foreign key as a validation failure
// on the request field that carried it.
func referenceError(field string, err error) error {
	if errors.Is(err, model.ErrInvalidReference) {
		return model.NewValidationError(field, "does not exist")
	}
	return err
}
