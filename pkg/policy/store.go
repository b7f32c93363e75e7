package policy

import "context"

// Store persists a serialized role table. Implementations may be in-memory,
// file-based, or remote; each operation is independent and idempotent, and no
// transactional guarantee spans calls. The manager serializes all calls.
//
// Save must keep a structural copy: later changes to the caller's table must
// not be visible on subsequent Loads. Load must return a structural copy for
// the same reason in reverse.
type Store interface {
	Load(ctx context.Context) (Table, error)
	Save(ctx context.Context, table Table) error
	Clear(ctx context.Context) error
}
