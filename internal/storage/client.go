// internal/storage/client.go
package storage

import (
	"context"
	"io"
)

// Client is the object-store contract the image services depend on.
//
// Upload with upsert=false must fail when the key already exists; keys embed
// an epoch-millisecond timestamp plus a sequence index, so a collision is the
// signal of a real bug rather than something to retry around. Remove is
// idempotent: removing keys that do not exist is not an error.
type Client interface {
	Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string, upsert bool) error
	List(ctx context.Context, bucket, prefix string) ([]string, error)
	Remove(ctx context.Context, bucket string, keys []string) error
	PublicURL(bucket, key string) string
}
