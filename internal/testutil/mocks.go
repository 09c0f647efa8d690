package testutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// FailingKV simulates an unavailable backing medium: reads resolve to
// absence and writes fail. The core must degrade to empty state and
// swallow write errors when running over it.
type FailingKV struct {
	PutCalls int
}

// Get always reports absence.
func (f *FailingKV) Get(key string) ([]byte, bool) {
	return nil, false
}

// Put always fails.
func (f *FailingKV) Put(key string, value []byte) error {
	f.PutCalls++
	return errors.New("medium unavailable")
}

// MockReceiptRepository is an in-memory implementation of
// storage.ReceiptRepository.
type MockReceiptRepository struct {
	Objects   map[string][]byte
	Deleted   []string
	UploadErr error
}

// NewMockReceiptRepository creates a new MockReceiptRepository
func NewMockReceiptRepository() *MockReceiptRepository {
	return &MockReceiptRepository{Objects: make(map[string][]byte)}
}

// Upload stores the object in memory
func (m *MockReceiptRepository) Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error) {
	if m.UploadErr != nil {
		return "", m.UploadErr
	}
	buf, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	m.Objects[objectPath] = buf
	return objectPath, nil
}

// Delete removes the object from memory
func (m *MockReceiptRepository) Delete(ctx context.Context, objectPath string) error {
	delete(m.Objects, objectPath)
	m.Deleted = append(m.Deleted, objectPath)
	return nil
}

// PresignURL returns a deterministic fake URL
func (m *MockReceiptRepository) PresignURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error) {
	if _, ok := m.Objects[objectPath]; !ok {
		return "", fmt.Errorf("object %q not found", objectPath)
	}
	return "https://example.test/" + objectPath, nil
}
