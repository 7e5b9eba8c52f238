package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Load reads the snapshot stored under key and decodes it into T.
// A missing key, a read failure, or malformed JSON all degrade to def:
// the caller always gets a usable starting state, never an error.
func Load[T any](ctx context.Context, kv KV, key string, def T) T {
	data, err := kv.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return def
	}
	return v
}

// Save serializes v and writes it under key. Unlike Load, failures are
// reported; callers treat them as best-effort and log rather than abort.
func Save[T any](ctx context.Context, kv KV, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot[%s]: %w", key, err)
	}
	return kv.Set(ctx, key, data)
}
