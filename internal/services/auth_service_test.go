package services_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"testing"

	"oasis/internal/models"
	"oasis/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(id string, profile models.Profile) error {
	args := m.Called(id, profile)
	return args.Error(0)
}

func TestMain(m *testing.M) {
	// Services log warnings for best-effort failures; keep test output clean.
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	user := &models.User{Username: "asha", Email: "asha@example.com", Password: "plaintext"}

	mockRepo.On("GetByUsername", "asha").Return(nil, fmt.Errorf("not found")).Once()
	mockRepo.On("GetByEmail", "asha@example.com").Return(nil, fmt.Errorf("not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := service.RegisterUser(user)
	assert.NoError(t, err)

	// The stored password must be the bcrypt hash, not the plaintext.
	assert.NotEqual(t, "plaintext", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("plaintext")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_UsernameTaken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	existing := &models.User{ID: "u1", Username: "asha"}
	mockRepo.On("GetByUsername", "asha").Return(existing, nil).Once()

	err := service.RegisterUser(&models.User{Username: "asha", Email: "other@example.com"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "u1", Username: "asha", Password: string(hash), IsAdmin: false}
	mockRepo.On("GetByUsername", "asha").Return(user, nil)

	tokenString, err := service.LoginUser("asha", "correct-horse")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := service.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "asha", claims["username"])
	assert.Equal(t, false, claims["is_admin"])
}

func TestAuthService_LoginUser_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	user := &models.User{ID: "u1", Username: "asha", Password: string(hash)}
	mockRepo.On("GetByUsername", "asha").Return(user, nil)

	_, err := service.LoginUser("asha", "wrong")
	assert.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestAuthService_LoginUser_UnknownUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	mockRepo.On("GetByUsername", "ghost").Return(nil, fmt.Errorf("not found"))

	_, err := service.LoginUser("ghost", "whatever")
	assert.Error(t, err)
	// Same message as a wrong password, so usernames cannot be probed.
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	mockRepo := new(MockUserRepository)
	issuer := services.NewAuthService(mockRepo, "secret-one")
	verifier := services.NewAuthService(mockRepo, "secret-two")

	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	user := &models.User{ID: "u1", Username: "asha", Password: string(hash)}
	mockRepo.On("GetByUsername", "asha").Return(user, nil)

	tokenString, err := issuer.LoginUser("asha", "pw")
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestAuthService_GetProfile_BlanksPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	mockRepo.On("GetByID", "u1").Return(&models.User{ID: "u1", Username: "asha", Password: "hash"}, nil).Once()

	profile, err := service.GetProfile("u1")
	assert.NoError(t, err)
	assert.Equal(t, "asha", profile.Username)
	assert.Empty(t, profile.Password)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	profile := models.Profile{FullName: "Asha Verma", Phone: "9876543210", City: "Mumbai"}
	mockRepo.On("UpdateProfile", "u1", profile).Return(nil).Once()

	assert.NoError(t, service.UpdateProfile("u1", profile))
	mockRepo.AssertExpectations(t)
}
