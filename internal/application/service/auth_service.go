package service

import (
	"github.com/sumashijiru045-dot/pos-app/pkg/apperror"
	"github.com/sumashijiru045-dot/pos-app/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the terminal operator. A single PIN guards the
// terminal; there are no user accounts.
type AuthService struct {
	jwtManager *utils.JWTManager
	pinHash    string
}

// NewAuthService creates a new auth service
func NewAuthService(jwtManager *utils.JWTManager, pinHash string) *AuthService {
	return &AuthService{jwtManager: jwtManager, pinHash: pinHash}
}

// Login exchanges the operator PIN for an access token.
func (s *AuthService) Login(pin string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.pinHash), []byte(pin)); err != nil {
		return "", apperror.ErrInvalidPIN
	}
	token, err := s.jwtManager.GenerateAccessToken("operator")
	if err != nil {
		return "", apperror.ErrInternalServer
	}
	return token, nil
}

// HashPIN derives the bcrypt hash stored in configuration.
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
