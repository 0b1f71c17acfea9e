package model

import (
	"context"
	"io"
)

// Storage keeps uploaded images.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
	KeyFromURL(url string) (string, bool)
}

// Upload is a file received from a client.
type Upload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
}
