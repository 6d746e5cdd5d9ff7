// Package userlock serializes mutations on a per-user resource. Operations
// for the same user id run one at a time; different users never contend.
package userlock

import "sync"

type Locker struct {
	mu sync.Map // userID -> *sync.Mutex
}

func New() *Locker { return &Locker{} }

// Lock blocks until the user's lock is held and returns the unlock func.
//
//	defer locks.Lock(userID)()
func (l *Locker) Lock(userID uint) func() {
	v, _ := l.mu.LoadOrStore(userID, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
