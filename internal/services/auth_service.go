package services

import (
	"errors"
	"fmt"
	"strconv"

	"storefront/internal/apperrors"
	"storefront/internal/hash"
	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/dgrijalva/jwt-go"
)

// AuthService handles registration, login and identity resolution.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// RegisterUser hashes the password and stores a new user. Registering an
// already used email is a conflict.
func (s *AuthService) RegisterUser(user *models.User) error {
	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return apperrors.New(apperrors.KindConflict, "email_registered", "Email already registered")
	}

	hashed, err := hash.HashPassword(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hashed

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// LoginUser checks the credentials and returns a signed access token carrying
// the user id as subject. The error never reveals whether the email exists.
func (s *AuthService) LoginUser(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", apperrors.New(apperrors.KindAuthInvalid, "invalid_credentials", "Invalid email or password")
	}

	if !hash.CheckPassword(user.Password, password) {
		return "", apperrors.New(apperrors.KindAuthInvalid, "invalid_credentials", "Invalid email or password")
	}

	token, err := s.tokens.Issue(jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(user.ID), 10),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ResolveToken verifies a bearer token and loads the user named by its
// subject claim. Any failure collapses to a single rejected-credential error;
// the verification outcome is returned for logging.
func (s *AuthService) ResolveToken(tokenString string) (*models.User, VerifyOutcome, error) {
	invalid := apperrors.New(apperrors.KindAuthInvalid, "invalid_credentials", "Invalid credentials")

	claims, outcome := s.tokens.VerifyDetailed(tokenString)
	if outcome != VerifyOK {
		return nil, outcome, invalid
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, VerifyMalformed, invalid
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, VerifyMalformed, invalid
	}

	user, err := s.userRepo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, VerifyOK, invalid
		}
		return nil, VerifyOK, fmt.Errorf("failed to load user %d: %w", id, err)
	}
	return user, VerifyOK, nil
}
