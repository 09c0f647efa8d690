package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// FileKV is a KV medium backed by a single JSON file on disk: an object
// mapping keys to raw values. It is the local-storage analogue for
// single-machine deployments. A missing, unreadable or corrupt file is
// treated as an empty medium.
type FileKV struct {
	path string
	mu   sync.Mutex
}

// NewFileKV creates a file-backed KV medium at the given path. The file
// is created lazily on first write.
func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

// Get returns the stored value for key, or absence if the file is
// missing or cannot be parsed.
func (f *FileKV) Get(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, ok := f.read()
	if !ok {
		return nil, false
	}
	value, ok := slots[key]
	if !ok {
		return nil, false
	}
	return value, true
}

// Put replaces the value for key, rewriting the whole file.
func (f *FileKV) Put(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, _ := f.read()
	if slots == nil {
		slots = map[string]json.RawMessage{}
	}
	slots[key] = value

	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	// Write to a temp file and rename so a crash mid-write cannot leave a
	// truncated store behind
	tmp := f.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}

func (f *FileKV) read() (map[string]json.RawMessage, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Debug().Err(err).Str("path", f.path).Msg("Store file unreadable, treating as empty")
		}
		return nil, false
	}

	var slots map[string]json.RawMessage
	if err := json.Unmarshal(data, &slots); err != nil {
		log.Debug().Err(err).Str("path", f.path).Msg("Store file corrupt, treating as empty")
		return nil, false
	}
	return slots, true
}
