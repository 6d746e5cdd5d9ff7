package userlock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockSerializesSameKey(t *testing.T) {
	l := New()
	const n = 50

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock(7)
			defer unlock()
			// non-atomic on purpose; the lock makes it safe
			counter++
		}()
	}
	wg.Wait()
	assert.Equal(t, n, counter)
}

func TestDifferentKeysDoNotContend(t *testing.T) {
	l := New()

	unlock := l.Lock(1)
	defer unlock()

	done := make(chan struct{})
	go func() {
		u := l.Lock(2)
		u()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "lock on a different key blocked")
	}
}

func TestUnlockReleases(t *testing.T) {
	l := New()
	l.Lock(3)()

	done := make(chan struct{})
	go func() {
		u := l.Lock(3)
		u()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "lock was not released")
	}
}
