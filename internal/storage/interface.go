// Package storage implements MenuBoard's persistence layer: a SQLite-backed
// key-value repository plus a JSON snapshot codec on top of it. Every piece
// of application state lives under a logical key ("users", "authState",
// "menuState") as a serialized snapshot.
package storage

import (
	"context"
)

// KV is a textual key-value store holding serialized state snapshots.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
