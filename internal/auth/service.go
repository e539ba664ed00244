// Package auth issues and verifies bearer tokens for the fixed user registry.
package auth

import (
	"context"
	"errors"

	"patient-api/internal/models"

	"github.com/rs/zerolog"
)

// TokenType is the token_type label returned with every access token.
const TokenType = "bearer"

// ErrUnauthorized covers bad credentials and every kind of invalid token.
var ErrUnauthorized = errors.New("unauthorized")

// Service logs users in and resolves bearer tokens back to usernames.
type Service struct {
	users  *Registry
	tokens *TokenIssuer
	log    zerolog.Logger
}

func NewService(users *Registry, tokens *TokenIssuer, log zerolog.Logger) *Service {
	return &Service{users: users, tokens: tokens, log: log}
}

// Login checks the password against the registry and returns a fresh token.
func (s *Service) Login(_ context.Context, username, password string) (models.Token, error) {
	user, ok := s.users.Lookup(username)
	if !ok || !CheckPassword(password, user.HashedPassword) {
		s.log.Debug().Str("username", username).Msg("login rejected")
		return models.Token{}, ErrUnauthorized
	}
	signed, err := s.tokens.Issue(user.Username)
	if err != nil {
		return models.Token{}, err
	}
	return models.Token{AccessToken: signed, TokenType: TokenType}, nil
}

// Authenticate returns the username a valid token was issued to.
func (s *Service) Authenticate(_ context.Context, token string) (string, error) {
	subject, err := s.tokens.Subject(token)
	if err != nil {
		s.log.Debug().Err(err).Msg("token rejected")
		return "", ErrUnauthorized
	}
	if _, ok := s.users.Lookup(subject); !ok {
		s.log.Debug().Str("subject", subject).Msg("token subject is not a known user")
		return "", ErrUnauthorized
	}
	return subject, nil
}
