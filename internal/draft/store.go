// Package draft provides key-value storage backends for identity fields and
// per-letter draft content.
package draft

import "context"

// Identity field keys. Absence of a key means "use default"; clearing a
// field deletes its key.
const (
	KeySignature = "user_signature"
	KeyEmail     = "user_email"
	KeyAddress   = "user_address"
)

// ContentKey is the draft key for a letter's edited body.
func ContentKey(letterID string) string {
	return "letter_content_" + letterID
}

// Store is a plain-string key-value store. Writes are best-effort and
// last-writer-wins.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
