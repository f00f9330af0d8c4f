package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, password string) error
}

type authService struct {
	adminHash []byte
}

// NewAuthService hashes the admin password once at startup; only the hash
// is kept in memory.
func NewAuthService(adminPassword string) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &authService{adminHash: hash}, nil
}

func (s *authService) Login(_ context.Context, password string) error {
	err := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to compare password hash: %w", err)
	}
	return nil
}
