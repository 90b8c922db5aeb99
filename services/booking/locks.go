package booking

import "sync"

// serviceLocks serializes booking creation per service so the conflict
// check and the insert behave atomically against concurrent requests
// for the same inventory item.
type serviceLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newServiceLocks() *serviceLocks {
	return &serviceLocks{locks: make(map[string]*sync.Mutex)}
}

// get returns the mutex for a service ID, creating it on first use.
func (s *serviceLocks) get(serviceID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[serviceID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[serviceID] = l
	}
	return l
}
