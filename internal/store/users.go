package store

import (
	"gitops-dashboard/internal/model"
	"gitops-dashboard/pkg/constants"
)

// CreateUser assigns a fresh id and stores the user. The password is
// stored as given; hashing is the caller's concern.
func (s *Store) CreateUser(user *model.User) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := *user
	u.ID = s.userID
	s.userID++
	if u.Role == "" {
		u.Role = constants.DefaultUserRole
	}
	s.users[u.ID] = &u

	out := u
	return &out
}

// GetUser returns the user or ok=false.
func (s *Store) GetUser(id int64) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	out := *u
	return &out, true
}

// GetUserByUsername scans for a user by its unique username.
func (s *Store) GetUserByUsername(username string) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			out := *u
			return &out, true
		}
	}
	return nil, false
}
