// Package actionlog is the append-only record of accepted draft actions, one sequence per room.
package actionlog

import (
	"context"
	"sync"

	"github.com/DoyleJ11/bp-draft-server/internal/engine"
	"github.com/cockroachdb/errors"
)

var ErrOutOfOrder = errors.New("action out of sequence")

// Store persists actions per room. Append must reject anything but last+1.
// After returns actions with Seq > afterSeq in ascending order.
type Store interface {
	Append(ctx context.Context, roomID string, act engine.DraftAction) error
	After(ctx context.Context, roomID string, afterSeq int64) ([]engine.DraftAction, error)
}

type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string][]engine.DraftAction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: make(map[string][]engine.DraftAction)}
}

func (m *MemoryStore) Append(_ context.Context, roomID string, act engine.DraftAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	log := m.rooms[roomID]
	want := int64(len(log)) + 1
	if act.Seq != want {
		return errors.Wrapf(ErrOutOfOrder, "room %s: got seq %d, want %d", roomID, act.Seq, want)
	}
	m.rooms[roomID] = append(log, act)
	return nil
}

func (m *MemoryStore) After(_ context.Context, roomID string, afterSeq int64) ([]engine.DraftAction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	log := m.rooms[roomID]
	start := max(afterSeq, 0)
	if start >= int64(len(log)) {
		return []engine.DraftAction{}, nil
	}
	out := make([]engine.DraftAction, len(log)-int(start))
	copy(out, log[start:])
	return out, nil
}
