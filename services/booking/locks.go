package booking

import "sync"

// providerDayLocks serializes the booking claim (read existing → check
// conflicts → write) per (providerId, date). The scope is deliberately
// narrow: read-only availability enumeration never takes these locks.
type providerDayLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newProviderDayLocks() *providerDayLocks {
	return &providerDayLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the (providerId, date) scope and returns the unlock func.
func (l *providerDayLocks) acquire(providerID, date string) func() {
	l.mu.Lock()
	key := providerID + "|" + date
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
