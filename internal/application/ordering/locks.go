package ordering

import (
	"sync"

	"github.com/google/uuid"
)

// Locks serializes mutations per (owner, family). The reorder shift is a
// read-shift-write sequence against storage; without this serialization two
// concurrent reorders on the same family can interleave and leave duplicate
// order indexes behind.
type Locks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLocks() *Locks {
	return &Locks{locks: make(map[string]*sync.Mutex)}
}

// Acquire blocks until the (owner, family) lock is held and returns the
// release function.
func (l *Locks) Acquire(owner uuid.UUID, family string) func() {
	key := owner.String() + "/" + family

	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
