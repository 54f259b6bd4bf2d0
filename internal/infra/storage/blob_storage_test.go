package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"
	"time"

	"campus/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/fileblob"
)

func newTestStorage(t *testing.T) (*blobStorage, context.Context) {
	t.Helper()

	base, err := url.Parse("http://localhost:8080/documents")
	require.NoError(t, err)

	bucket, err := fileblob.OpenBucket(t.TempDir(), &fileblob.Options{
		URLSigner: fileblob.NewURLSignerHMAC(base, []byte("test-signing-secret")),
	})
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	cfg := &config.Config{
		Storage: &config.StorageConfig{
			PublicBaseURL: "https://storage.example.com/documents",
		},
	}

	return NewBlobStorage(bucket, cfg).(*blobStorage), context.Background()
}

func TestBlobStorage_UploadReturnsStableReference(t *testing.T) {
	s, ctx := newTestStorage(t)

	ref, err := s.Upload(ctx, "admissions/2026/1756500000-dossier.pdf", strings.NewReader("%PDF-1.4 test"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/documents/admissions/2026/1756500000-dossier.pdf", ref)

	exists, err := s.bucket.Exists(ctx, "admissions/2026/1756500000-dossier.pdf")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBlobStorage_SignedURLIsTimeLimited(t *testing.T) {
	s, ctx := newTestStorage(t)

	_, err := s.Upload(ctx, "admissions/2026/1756500001-file.pdf", strings.NewReader("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)

	signed, err := s.SignedURL(ctx, "admissions/2026/1756500001-file.pdf", time.Hour)
	require.NoError(t, err)

	parsed, err := url.Parse(signed)
	require.NoError(t, err)
	assert.NotEmpty(t, parsed.RawQuery, "signed URL must carry a signature query")
}

func TestBlobStorage_KeyFromURL(t *testing.T) {
	s, _ := newTestStorage(t)

	key, err := s.KeyFromURL("https://storage.example.com/documents/admissions/2026/1756500000-dossier.pdf")
	require.NoError(t, err)
	assert.Equal(t, "admissions/2026/1756500000-dossier.pdf", key)

	_, err = s.KeyFromURL("https://elsewhere.example.com/admissions/x.pdf")
	assert.Error(t, err)
}

func TestNewBucket_RejectsIncompleteConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		storage *config.StorageConfig
		wantErr string
	}{
		{name: "missing bucket url", storage: &config.StorageConfig{}, wantErr: "bucketUrl"},
		{
			name:    "missing public base url",
			storage: &config.StorageConfig{BucketURL: "file://" + t.TempDir()},
			wantErr: "publicBaseUrl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBucket(BucketParams{
				Lifecycle: fxtest.NewLifecycle(t),
				Config:    &config.Config{Storage: tt.storage},
				Logger:    logger,
			})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
