package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/finza/finza-backend/internal/domain"
	"github.com/finza/finza-backend/internal/repository/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// MaxReceiptSize is the maximum accepted upload size (5MB)
	MaxReceiptSize = 5 * 1024 * 1024
	// MinReceiptDimension is the minimum width/height in pixels
	MinReceiptDimension = 50
	// ThumbnailWidth is the width receipts are resized to for list views
	ThumbnailWidth = 400
	// JPEGQuality is the encoding quality for the thumbnail variant
	JPEGQuality = 85
	// PresignExpiry is how long receipt URLs stay valid
	PresignExpiry = 15 * time.Minute
)

var (
	ErrReceiptTooLarge       = errors.New("receipt exceeds maximum size of 5MB")
	ErrReceiptTooSmall       = errors.New("receipt must be at least 50x50 pixels")
	ErrInvalidReceiptFormat  = errors.New("receipt must be a JPEG or PNG image")
	ErrInvalidReceiptData    = errors.New("receipt data is not a valid image")
	ErrReceiptsNotConfigured = errors.New("receipt storage is not configured")
	ErrReceiptNotFound       = errors.New("transaction has no receipt attached")
)

var allowedReceiptExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// ReceiptURLs carries presigned links to both stored variants.
type ReceiptURLs struct {
	OriginalURL  string `json:"originalUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// ReceiptService attaches scanned receipts to transactions. Each receipt
// is stored as two objects, the original and a jpeg thumbnail, in a
// private bucket. The original's object key is recorded on the
// transaction; URLs are presigned on demand and never stored. The
// service is optional: without a configured repository every call fails
// with ErrReceiptsNotConfigured.
type ReceiptService struct {
	receipts storage.ReceiptRepository
	ledger   domain.LedgerRepository
}

// NewReceiptService creates a new ReceiptService. receipts may be nil
// when receipt storage is not configured.
func NewReceiptService(receipts storage.ReceiptRepository, ledger domain.LedgerRepository) *ReceiptService {
	return &ReceiptService{
		receipts: receipts,
		ledger:   ledger,
	}
}

// IsEnabled reports whether receipt storage is configured
func (s *ReceiptService) IsEnabled() bool {
	return s.receipts != nil
}

// thumbKey derives the thumbnail's object key from the original's.
func thumbKey(originalKey string) string {
	return path.Dir(originalKey) + "/thumb.jpg"
}

// Attach validates and stores a receipt image for the transaction,
// uploading the original and a thumbnail variant, then records the
// original's object key on the transaction. An existing receipt is
// replaced; its old objects are left to bucket lifecycle cleanup.
func (s *ReceiptService) Attach(ctx context.Context, date, txID string, data []byte, filename string) (*domain.Transaction, error) {
	if !s.IsEnabled() {
		return nil, ErrReceiptsNotConfigured
	}

	if len(data) > MaxReceiptSize {
		return nil, ErrReceiptTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedReceiptExtensions[ext]
	if !ok {
		return nil, ErrInvalidReceiptFormat
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidReceiptData
	}
	bounds := img.Bounds()
	if bounds.Dx() < MinReceiptDimension || bounds.Dy() < MinReceiptDimension {
		return nil, ErrReceiptTooSmall
	}

	originalKey := fmt.Sprintf("receipts/%s/%s/%s/original%s", date, txID, uuid.NewString(), ext)

	if _, err := s.receipts.Upload(ctx, originalKey, bytes.NewReader(data), contentType, int64(len(data))); err != nil {
		return nil, fmt.Errorf("failed to upload receipt: %w", err)
	}

	thumb := imaging.Resize(img, ThumbnailWidth, 0, imaging.Lanczos)
	var thumbBuf bytes.Buffer
	if err := imaging.Encode(&thumbBuf, thumb, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	if _, err := s.receipts.Upload(ctx, thumbKey(originalKey), bytes.NewReader(thumbBuf.Bytes()), "image/jpeg", int64(thumbBuf.Len())); err != nil {
		return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	tx := s.ledger.SetReceiptKey(date, txID, &originalKey)
	if tx == nil {
		// Transaction vanished; clean up the orphaned objects
		s.removeObjects(ctx, originalKey)
		return nil, domain.ErrNotFound
	}
	return tx, nil
}

// URLs returns presigned links to the transaction's receipt variants.
func (s *ReceiptService) URLs(ctx context.Context, date, txID string) (*ReceiptURLs, error) {
	if !s.IsEnabled() {
		return nil, ErrReceiptsNotConfigured
	}

	originalKey, err := s.receiptKey(date, txID)
	if err != nil {
		return nil, err
	}

	originalURL, err := s.receipts.PresignURL(ctx, originalKey, PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to presign receipt URL: %w", err)
	}
	thumbnailURL, err := s.receipts.PresignURL(ctx, thumbKey(originalKey), PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to presign thumbnail URL: %w", err)
	}

	return &ReceiptURLs{
		OriginalURL:  originalURL,
		ThumbnailURL: thumbnailURL,
	}, nil
}

// Detach removes the transaction's receipt objects and clears the key.
func (s *ReceiptService) Detach(ctx context.Context, date, txID string) error {
	if !s.IsEnabled() {
		return ErrReceiptsNotConfigured
	}

	originalKey, err := s.receiptKey(date, txID)
	if err != nil {
		return err
	}

	s.removeObjects(ctx, originalKey)
	if tx := s.ledger.SetReceiptKey(date, txID, nil); tx == nil {
		return domain.ErrNotFound
	}
	return nil
}

// receiptKey looks up the stored original object key for a transaction.
func (s *ReceiptService) receiptKey(date, txID string) (string, error) {
	day := s.ledger.GetDay(date)
	for _, tx := range append(day.Incomes, day.Expenses...) {
		if tx.ID != txID {
			continue
		}
		if tx.ReceiptKey == nil {
			return "", ErrReceiptNotFound
		}
		return *tx.ReceiptKey, nil
	}
	return "", domain.ErrNotFound
}

func (s *ReceiptService) removeObjects(ctx context.Context, originalKey string) {
	for _, key := range []string{originalKey, thumbKey(originalKey)} {
		if err := s.receipts.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("object", key).Msg("failed to delete receipt object")
		}
	}
}
