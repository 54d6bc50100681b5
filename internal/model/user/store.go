package user

import "sync"

// Store exposes account lookup and creation for the dev API handlers.
type Store interface {
	Create(profile Profile) bool
	FindByEmail(email string) (Profile, bool)
}

// MemoryStore implements Store with an in-memory map keyed by email.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]Profile
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied accounts.
func NewMemoryStore(seed []Profile) *MemoryStore {
	users := make(map[string]Profile, len(seed))
	for _, p := range seed {
		users[p.Email] = p
	}
	return &MemoryStore{users: users}
}

// Create registers a new account. It reports false when the email is taken.
func (s *MemoryStore) Create(profile Profile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[profile.Email]; ok {
		return false
	}
	s.users[profile.Email] = profile
	return true
}

// FindByEmail looks up an account by email.
func (s *MemoryStore) FindByEmail(email string) (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.users[email]
	return p, ok
}

// Seed provides the demo account accepted by the dev API out of the box.
func Seed() []Profile {
	return []Profile{
		{
			Name:     "John Doe",
			Email:    "john.doe@example.com",
			Phone:    "+1-555-0123",
			Password: "password123",
			Role:     "seeker",
		},
	}
}
