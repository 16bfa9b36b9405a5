// Package ledger persists computed digests in an append-only audit log.
//
// Records are never updated or deleted, and there is no deduplication:
// every persisted computation becomes a new record even when it repeats an
// earlier path/digest pair.
//
// Two implementations of the Ledger interface are provided:
//   - MemoryLedger: in-process, for testing and throwaway runs.
//   - PostgresLedger: durable, for real use.
package ledger

import (
	"context"
	"errors"
	"time"
)

// ErrStore classifies any connection or write failure of the backing store.
// Errors returned by Ledger implementations wrap it; no partial record is
// ever visible after a failed Record call.
var ErrStore = errors.New("ledger store failure")

// Record is one persisted digest computation.
type Record struct {
	ID        int64     `json:"id"`
	Path      string    `json:"path"`
	HashValue string    `json:"hash_value"`
	Algorithm string    `json:"algorithm"`
	CreatedAt time.Time `json:"created_at"`
}

// Ledger is the append-only audit log of computed digests.
// Both MemoryLedger and PostgresLedger implement this interface.
type Ledger interface {
	// Record appends one immutable record and returns it with the
	// store-assigned id and creation timestamp filled in. The insert is
	// atomic: on error the store is unchanged.
	Record(ctx context.Context, path, hashValue, algorithm string) (*Record, error)

	// List returns every stored record in ascending id order. An empty
	// store yields an empty slice, not an error.
	List(ctx context.Context) ([]*Record, error)
}
