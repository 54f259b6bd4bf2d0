// Package storage implements the document storage service on top of
// gocloud.dev blob buckets, so deployments can point at GCS, S3 or a local
// directory through a single bucket URL.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"campus/config"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/lifecycle"
	"campus/internal/domain/service"
	"campus/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers are selected by the configured URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// Uploaded documents are immutable, so a long shared cache is safe.
const uploadCacheControl = "public, max-age=3600"

// BucketParams defines dependencies for opening the document bucket.
type BucketParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the configured blob bucket and ties its lifetime to the
// process lifecycle.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is not configured")
	}
	// A missing base URL would make every stored reference unresolvable by
	// KeyFromURL, so it fails startup instead of the first admin PDF read.
	if params.Config.Storage.PublicBaseURL == "" {
		return nil, errors.New("storage.publicBaseUrl is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open document bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Document bucket opened", slog.String("bucket", params.Config.Storage.BucketURL))

	return bucket, nil
}

// blobStorage implements service.DocumentStorage over a blob bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage is the constructor for blobStorage.
func NewBlobStorage(bucket *blob.Bucket, cfg *config.Config) service.DocumentStorage {
	baseURL := ""
	if cfg != nil && cfg.Storage != nil {
		baseURL = strings.TrimSuffix(cfg.Storage.PublicBaseURL, "/")
	}

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: baseURL,
	}
}

// Upload writes the document and returns its stable reference URL. On any
// failure the writer is aborted so no partial object becomes visible.
func (s *blobStorage) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: uploadCacheControl,
	})
	if err != nil {
		return "", domainerrors.NewStorageExecuteError(err, "open writer for "+key)
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()

		return "", domainerrors.NewStorageExecuteError(err, "write object "+key)
	}

	// Close commits the object; the upload is only durable once it returns.
	if err := w.Close(); err != nil {
		return "", domainerrors.NewStorageExecuteError(err, "commit object "+key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// SignedURL issues a freshly signed, time-limited read URL for the key.
func (s *blobStorage) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{Expiry: ttl})
	if err != nil {
		return "", domainerrors.NewStorageExecuteError(err, "sign url for "+key)
	}

	return url, nil
}

// KeyFromURL derives the object key back out of a stored reference URL.
func (s *blobStorage) KeyFromURL(url string) (string, error) {
	trimmed := strings.TrimPrefix(url, s.publicBaseURL)
	if trimmed == url {
		return "", errors.Errorf("url %q is not under the configured public base", url)
	}

	return strings.TrimPrefix(trimmed, "/"), nil
}
