package auth

import (
	"fmt"

	"patient-api/internal/config"
	"patient-api/internal/models"
)

// Registry is the fixed set of accounts allowed to log in.
// It is built once at startup and never mutated, so reads need no locking.
type Registry struct {
	users map[string]models.User
}

// NewRegistry builds a registry from already-hashed users.
func NewRegistry(users ...models.User) *Registry {
	r := &Registry{users: make(map[string]models.User, len(users))}
	for _, u := range users {
		r.users[u.Username] = u
	}
	return r
}

// RegistryFromConfig builds the single-account registry described by cfg.
// A configured hash wins over the plaintext password.
func RegistryFromConfig(cfg config.AuthConfig) (*Registry, error) {
	hash := cfg.AdminPasswordHash
	if hash == "" {
		var err error
		hash, err = HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
	}
	return NewRegistry(models.User{Username: cfg.AdminUsername, HashedPassword: hash}), nil
}

// Lookup returns the user with the given name.
func (r *Registry) Lookup(username string) (models.User, bool) {
	u, ok := r.users[username]
	return u, ok
}
