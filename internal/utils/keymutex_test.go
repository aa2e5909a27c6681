package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyMutex_SerializesSameKey(t *testing.T) {
	km := NewKeyMutex()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock(7)
			counter++
			km.Unlock(7)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyMutex_DifferentKeysDoNotBlock(t *testing.T) {
	km := NewKeyMutex()

	km.Lock(1)
	done := make(chan struct{})
	go func() {
		km.Lock(2)
		km.Unlock(2)
		close(done)
	}()
	<-done
	km.Unlock(1)
}

func TestKeyMutex_ReleasesEntries(t *testing.T) {
	km := NewKeyMutex()

	km.Lock(1)
	km.Unlock(1)

	assert.Empty(t, km.locks)
}

func TestKeyMutex_UnlockWithoutLockPanics(t *testing.T) {
	km := NewKeyMutex()

	assert.Panics(t, func() { km.Unlock(9) })
}
