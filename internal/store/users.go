package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/gourmet-grove/ordering-service/internal/models"
)

func cloneUser(u models.User) models.User {
	if u.Addresses != nil {
		addresses := make([]string, len(u.Addresses))
		copy(addresses, u.Addresses)
		u.Addresses = addresses
	}
	return u
}

// ListUsers returns all users in insertion order
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, cloneUser(u))
	}
	return users
}

// GetUser retrieves a user by ID
func (s *Store) GetUser(id uuid.UUID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return models.User{}, ErrNotFound
}

// GetUserByEmail retrieves a user by email, matched exactly and
// case-sensitively
func (s *Store) GetUserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return models.User{}, ErrNotFound
}

// CreateUser assigns a fresh ID and appends the user. Fails with
// ErrDuplicateEmail if the email is already taken.
func (s *Store) CreateUser(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	s.users = append(s.users, cloneUser(user))
	return user, nil
}
