// Package kv provides the durable string-keyed store the ledger persists into.
// Values are opaque strings; the ledger serializes its collections to JSON
// before handing them over.
package kv

import "context"

type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
