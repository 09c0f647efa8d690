package storage

// KV is a synchronous, process-local key-value medium holding serialized
// blobs. A missing key is not an error: Get reports absence through its
// second return value only.
type KV interface {
	Get(key string) ([]byte, bool)
	Put(key string, value []byte) error
}
