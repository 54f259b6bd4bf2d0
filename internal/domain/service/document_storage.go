package service

import (
	"context"
	"io"
	"time"
)

// DocumentStorage abstracts the object-storage bucket holding admission
// dossiers. The bucket is not public-writable; reads go through short-lived
// signed URLs issued on demand.
type DocumentStorage interface {
	// Upload writes the document under the given key with the declared
	// content type and returns the stable reference URL recorded on the
	// admission. A failed upload leaves no application-visible state.
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)

	// SignedURL returns a freshly signed, time-limited read URL for the key.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)

	// KeyFromURL derives the object key back out of a stored reference URL.
	KeyFromURL(url string) (string, error)
}
