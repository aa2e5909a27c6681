package utils

import "sync"

// KeyMutex provides mutual exclusion scoped to a single key, used to
// serialize settlement attempts for the same job. Entries are created on
// first use and reference-counted so the map does not grow unbounded.
type KeyMutex struct {
	mu    sync.Mutex
	locks map[int64]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewKeyMutex() *KeyMutex {
	return &KeyMutex{locks: make(map[int64]*keyLock)}
}

// Lock acquires the mutex for key, blocking while another goroutine holds it.
func (k *KeyMutex) Lock(key int64) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
}

// Unlock releases the mutex for key. It must follow a matching Lock.
func (k *KeyMutex) Unlock(key int64) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("utils: unlock of unlocked key")
	}
	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	l.mu.Unlock()
}
