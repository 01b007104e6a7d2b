// Package storage keeps uploaded images in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"surplus/config"
	"surplus/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Registered bucket URL schemes: file://, gs://, s3:// and mem://
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const defaultBucketURL = "mem://"

type blobStorage struct {
	bucket        *blob.Bucket
	keyPrefix     string
	publicBaseURL string
}

// NewBlobStorage wraps an opened bucket.
func NewBlobStorage(bucket *blob.Bucket, keyPrefix, publicBaseURL string) service.FileStorage {
	return &blobStorage{
		bucket:        bucket,
		keyPrefix:     strings.Trim(keyPrefix, "/"),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload stores content under <keyPrefix>/<prefix>/<uuid><ext>; the original filename only contributes its extension.
func (s *blobStorage) Upload(ctx context.Context, prefix, filename, contentType string, content io.Reader) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.WithStack(err)
	}

	key := path.Join(s.keyPrefix, prefix, id.String()+strings.ToLower(filepath.Ext(filename)))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit blob")
	}

	return key, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}

func (s *blobStorage) URL(key string) string {
	if key == "" {
		return ""
	}

	return s.publicBaseURL + "/" + strings.TrimLeft(key, "/")
}

// StorageParams holds dependencies for FileStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFileStorage opens the bucket named by storage.bucketUrl. Without one, images live in memory.
func NewFileStorage(params StorageParams) (service.FileStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		cfg = &config.StorageConfig{}
	}

	bucketURL := cfg.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("storage.bucketUrl not set, uploaded images are kept in memory")
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("File storage initialized",
		slog.String("bucket", bucketURL),
		slog.String("public_base_url", cfg.PublicBaseURL),
	)

	return NewBlobStorage(bucket, cfg.KeyPrefix, cfg.PublicBaseURL), nil
}

// Module provides the file storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFileStorage),
)
