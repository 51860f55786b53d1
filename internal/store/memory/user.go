package memory

import (
	"context"
	"strings"

	"github.com/godcandidate/warehouse-management-app/internal/usecase/auth"
)

// UserStore adapts the shared store to the auth usecase.
type UserStore struct {
	s *Store
}

var _ auth.Store = (*UserStore)(nil)

func NewUserStore(s *Store) *UserStore {
	return &UserStore{s: s}
}

func (a *UserStore) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(email)
	for i := range s.users {
		if strings.ToLower(s.users[i].Email) == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, auth.ErrNotFound
}

func (a *UserStore) FindByID(_ context.Context, id string) (*auth.User, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, auth.ErrNotFound
}

func (a *UserStore) CreateUser(_ context.Context, in auth.CreateUserInput) (*auth.User, error) {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, in.Email) {
			return nil, auth.ErrEmailConflict
		}
	}

	u := auth.User{
		ID:           s.newID(),
		Username:     in.Username,
		Email:        in.Email,
		Role:         in.Role,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: in.PasswordHash,
	}
	s.users = append(s.users, u)
	return &u, nil
}
