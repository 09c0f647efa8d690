package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileKVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	kv := NewFileKV(path)

	if _, ok := kv.Get("finance_data"); ok {
		t.Error("Expected absence before first write")
	}

	if err := kv.Put("finance_data", []byte(`{"2025-03":{}}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	value, ok := kv.Get("finance_data")
	if !ok {
		t.Fatal("Expected value after write")
	}
	if string(value) != `{"2025-03":{}}` {
		t.Errorf("Unexpected value: %s", value)
	}

	// Keys live in independent slots
	if err := kv.Put("bills_data", []byte(`[]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	value, ok = kv.Get("finance_data")
	if !ok || string(value) != `{"2025-03":{}}` {
		t.Errorf("First slot disturbed by second write: %s", value)
	}
}

func TestFileKVCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	kv := NewFileKV(path)

	if _, ok := kv.Get("finance_data"); ok {
		t.Error("Expected corrupt file to read as empty")
	}

	// A write recovers the file
	if err := kv.Put("finance_data", []byte(`{}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, ok := kv.Get("finance_data"); !ok {
		t.Error("Expected value after recovery write")
	}
}

func TestMemoryKVCopiesValues(t *testing.T) {
	kv := NewMemoryKV()

	buf := []byte(`{"a":1}`)
	if err := kv.Put("finance_data", buf); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	buf[2] = 'x'

	value, ok := kv.Get("finance_data")
	if !ok || string(value) != `{"a":1}` {
		t.Errorf("Stored value aliased caller buffer: %s", value)
	}
}
