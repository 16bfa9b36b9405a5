package ledger

import (
	"context"
	"sync"
	"time"
)

// MemoryLedger is an in-memory, thread-safe Ledger implementation. Records
// do not survive the process; it backs tests and ledger.backend=memory runs.
type MemoryLedger struct {
	mu      sync.RWMutex
	records []*Record
}

// NewMemoryLedger creates an empty MemoryLedger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

// Record implements Ledger. IDs start at 1 and increase monotonically.
func (l *MemoryLedger) Record(_ context.Context, path, hashValue, algorithm string) (*Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := &Record{
		ID:        int64(len(l.records)) + 1,
		Path:      path,
		HashValue: hashValue,
		Algorithm: algorithm,
		CreatedAt: time.Now().UTC(),
	}
	l.records = append(l.records, rec)
	return rec, nil
}

// List implements Ledger. Records are returned as copies so callers cannot
// mutate the stored history.
func (l *MemoryLedger) List(_ context.Context) ([]*Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*Record, len(l.records))
	for i, rec := range l.records {
		clone := *rec
		out[i] = &clone
	}
	return out, nil
}
