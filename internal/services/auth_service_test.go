package services_test

import (
	"testing"

	"storefront/internal/apperrors"
	"storefront/internal/hash"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newAuthService(repo repositories.UserRepository) *services.AuthService {
	tokens := services.NewTokenService("test_jwt_secret", "HS256", 30)
	return services.NewAuthService(repo, tokens)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	user := &models.User{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}

	mockRepo.On("GetByEmail", user.Email).Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	// The stored password is a verifiable digest, never the plaintext.
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, hash.CheckPassword(user.Password, "password123"))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	mockRepo.On("GetByEmail", "taken@example.com").Return(&models.User{ID: 1}, nil).Once()

	err := authService.RegisterUser(&models.User{
		Username: "testuser",
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.Equal(t, "email_registered", apperrors.CodeOf(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokens := services.NewTokenService("test_jwt_secret", "HS256", 30)
	authService := services.NewAuthService(mockRepo, tokens)

	digest, _ := hash.HashPassword("password123")
	user := &models.User{
		ID:       42,
		Username: "testuser",
		Email:    "test@example.com",
		Password: digest,
	}

	// Successful login yields a token whose subject is the user id.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, err := authService.LoginUser(user.Email, "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims := tokens.Verify(token)
	assert.NotNil(t, claims)
	assert.Equal(t, "42", claims["sub"])
	mockRepo.AssertExpectations(t)

	// Wrong password.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err = authService.LoginUser(user.Email, "wrongpassword")
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindAuthInvalid, apperrors.KindOf(err))
	assert.Equal(t, "Invalid email or password", apperrors.DetailOf(err))
	mockRepo.AssertExpectations(t)

	// Unknown email yields the same generic message.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrNotFound).Once()
	_, err = authService.LoginUser("nobody@example.com", "password123")
	assert.Error(t, err)
	assert.Equal(t, "Invalid email or password", apperrors.DetailOf(err))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ResolveToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokens := services.NewTokenService("test_jwt_secret", "HS256", 30)
	authService := services.NewAuthService(mockRepo, tokens)

	digest, _ := hash.HashPassword("password123")
	user := &models.User{ID: 7, Username: "testuser", Email: "test@example.com", Password: digest}

	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, err := authService.LoginUser(user.Email, "password123")
	assert.NoError(t, err)

	// Valid token resolves to the stored user.
	mockRepo.On("GetByID", uint(7)).Return(user, nil).Once()
	resolved, outcome, err := authService.ResolveToken(token)
	assert.NoError(t, err)
	assert.Equal(t, services.VerifyOK, outcome)
	assert.Equal(t, user.ID, resolved.ID)
	mockRepo.AssertExpectations(t)

	// Token naming a deleted user is rejected as invalid credentials.
	mockRepo.On("GetByID", uint(7)).Return(nil, repositories.ErrNotFound).Once()
	_, _, err = authService.ResolveToken(token)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindAuthInvalid, apperrors.KindOf(err))
	mockRepo.AssertExpectations(t)

	// Garbage never reaches the repository.
	freshRepo := new(MockUserRepository)
	freshService := services.NewAuthService(freshRepo, tokens)
	_, outcome, err = freshService.ResolveToken("garbage")
	assert.Error(t, err)
	assert.Equal(t, services.VerifyMalformed, outcome)
	freshRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}
