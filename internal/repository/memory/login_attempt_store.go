package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// LoginAttemptStore tracks failed login attempts per email so the auth
// service can throttle brute-force attempts. Entries expire on their own;
// state is process-local and lost on restart, which is acceptable here.
type LoginAttemptStore struct {
	cache  *cache.Cache
	limit  int
	window time.Duration
}

func NewLoginAttemptStore(limit int, window time.Duration) *LoginAttemptStore {
	c := cache.New(window, 10*time.Minute)
	return &LoginAttemptStore{
		cache:  c,
		limit:  limit,
		window: window,
	}
}

// RecordFailure bumps the counter for the email and returns the new count.
func (s *LoginAttemptStore) RecordFailure(email string) int {
	if x, found := s.cache.Get(email); found {
		count := x.(int) + 1
		s.cache.Set(email, count, cache.DefaultExpiration)
		return count
	}
	s.cache.Set(email, 1, cache.DefaultExpiration)
	return 1
}

// Blocked reports whether the email has exhausted its attempts.
func (s *LoginAttemptStore) Blocked(email string) bool {
	if x, found := s.cache.Get(email); found {
		return x.(int) >= s.limit
	}
	return false
}

// Reset clears the counter after a successful login.
func (s *LoginAttemptStore) Reset(email string) {
	s.cache.Delete(email)
}
