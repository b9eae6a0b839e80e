package telekit

import "sync"

// busySet tracks users that have a locked command in flight.
// A locked command is dropped while the same user already runs one;
// unlocked commands never consult it.
type busySet struct {
	mu    sync.Mutex
	users map[int64]struct{}
}

func newBusySet() *busySet {
	return &busySet{
		users: make(map[int64]struct{}),
	}
}

// tryEnter marks the user busy. It returns false if the user already was.
func (s *busySet) tryEnter(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; ok {
		return false
	}
	s.users[userID] = struct{}{}
	return true
}

func (s *busySet) leave(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
}

func (s *busySet) busy(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[userID]
	return ok
}
