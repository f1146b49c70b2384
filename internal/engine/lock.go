package engine

import (
	"sync"

	"github.com/google/uuid"
)

// ownerLocks holds one mutex per owner so that mutating operations for
// the same owner are serialized while different owners never contend.
// The registry is package level and shared by every Engine, so the
// serialization guarantee holds even when more than one Engine is
// constructed over the same database. Entries are never removed, the
// table stays small: one pointer-sized entry per owner seen since
// startup.
var ownerLocks = struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}{
	locks: make(map[uuid.UUID]*sync.Mutex),
}

func ownerLock(owner uuid.UUID) *sync.Mutex {
	ownerLocks.mu.Lock()
	defer ownerLocks.mu.Unlock()

	lock, ok := ownerLocks.locks[owner]
	if !ok {
		lock = &sync.Mutex{}
		ownerLocks.locks[owner] = lock
	}

	return lock
}
