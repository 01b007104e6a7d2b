package service

import (
	"context"
	"io"
)

// FileStorage stores uploaded images and resolves their public URLs.
type FileStorage interface {
	// Upload writes the content under a new key derived from prefix and filename and returns the key.
	Upload(ctx context.Context, prefix, filename, contentType string, content io.Reader) (string, error)

	// Delete removes a stored object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL of a stored key, or an empty string for an empty key.
	URL(key string) string
}
