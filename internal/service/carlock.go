package service

import "sync"

// carLocks serializes lifecycle writes per car identity, so the availability
// check and the car-status flip inside Create stay atomic against concurrent
// bookings of the same car. Reads never take these locks.
type carLocks struct {
	mu    sync.Mutex
	locks map[int32]*sync.Mutex
}

func newCarLocks() *carLocks {
	return &carLocks{locks: make(map[int32]*sync.Mutex)}
}

func (c *carLocks) Lock(carID int32) {
	c.mu.Lock()
	l, ok := c.locks[carID]
	if !ok {
		l = &sync.Mutex{}
		c.locks[carID] = l
	}
	c.mu.Unlock()
	l.Lock()
}

func (c *carLocks) Unlock(carID int32) {
	c.mu.Lock()
	l := c.locks[carID]
	c.mu.Unlock()
	l.Unlock()
}
