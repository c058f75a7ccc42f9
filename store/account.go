package store

import (
	"github.com/geoshield-inc/geoshield-api/schema"
)

// ListUsers returns every registered account
func (s *MemoryStore) ListUsers() []schema.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]schema.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u.Copy())
	}
	return users
}

// GetUser returns an account instance of a given id
func (s *MemoryStore) GetUser(id string) (*schema.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.userIndex(id)
	if i < 0 {
		return nil, ErrUserNotFound
	}
	u := s.users[i].Copy()
	return &u, nil
}

// Signup registers an account. Phone and name must both be unused and the
// phone must have been verified by the caller.
func (s *MemoryStore) Signup(params schema.SignupRequest) (*schema.User, error) {
	if params.Phone == "" || params.Name == "" || params.Password == "" || params.Role == "" {
		return nil, ErrMissingSignupFields
	}
	if !params.Verified {
		return nil, ErrPhoneNotVerified
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Phone == params.Phone {
			return nil, ErrPhoneTaken
		}
	}
	for _, u := range s.users {
		if u.Name == params.Name {
			return nil, ErrNameTaken
		}
	}
	if !params.Role.Valid() {
		return nil, ErrInvalidRole
	}

	u := schema.NewUser(s.newID("user"), params.Phone, params.Name, params.Password, params.Role, s.now().UTC())
	s.users = append(s.users, u)

	log.WithField("user", u.ID).WithField("role", u.Role).Info("account registered")

	result := u.Copy()
	return &result, nil
}

// Login returns the account whose name and password match
func (s *MemoryStore) Login(name, password string) (*schema.User, error) {
	if name == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Name == name {
			if u.Password != password {
				return nil, ErrInvalidCredentials
			}
			result := u.Copy()
			return &result, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (s *MemoryStore) userIndex(id string) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// volunteerIndex is userIndex restricted to accounts that can take missions
func (s *MemoryStore) volunteerIndex(id string) int {
	i := s.userIndex(id)
	if i < 0 || !s.users[i].IsVolunteer() {
		return -1
	}
	return i
}
