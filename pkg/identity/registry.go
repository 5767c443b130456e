package identity

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserExists is returned when registering an already-taken username.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned for an unknown username or a
	// password that does not match. Callers get the same error either way.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Registry holds registered users for the lifetime of the process.
type Registry struct {
	mu    sync.RWMutex
	users map[string][]byte // username -> bcrypt hash
}

// NewRegistry creates an empty user registry.
func NewRegistry() *Registry {
	return &Registry{
		users: make(map[string][]byte),
	}
}

// Register creates a new user. The first registration of a username wins;
// a second attempt returns ErrUserExists and leaves the original untouched.
func (r *Registry) Register(username, password string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; ok {
		return ErrUserExists
	}
	r.users[username] = hash
	return nil
}

// Authenticate checks a username/password pair against the registry.
func (r *Registry) Authenticate(username, password string) error {
	r.mu.RLock()
	hash, ok := r.users[username]
	r.mu.RUnlock()

	if !ok {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Count returns the number of registered users.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}
