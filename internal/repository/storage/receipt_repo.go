package storage

import (
	"context"
	"io"
	"time"
)

// ReceiptRepository defines the object-storage operations needed for
// receipt image attachments.
type ReceiptRepository interface {
	Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error)
	Delete(ctx context.Context, objectPath string) error
	PresignURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error)
}
