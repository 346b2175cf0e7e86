package service

import (
	"os"
	"testing"
	"time"

	"hospital-records-api/internal/models"
	"hospital-records-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	utils.InitJWT("test-secret", time.Hour)
	os.Exit(m.Run())
}

func TestRegister_CreatesUserWithHashedPassword(t *testing.T) {
	var created *models.User
	mockRepo := &MockUserRepository{
		FindByEmailFunc: func(email string) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFunc: func(u *models.User) error {
			u.ID = "0b5f4a3e-0000-4000-8000-000000000001"
			created = u
			return nil
		},
	}
	svc := NewAuthService(mockRepo)

	response, err := svc.Register("Asha", "Asha@Example.com", "secret123", "")
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "asha@example.com", created.Email, "email should be normalized")
	assert.Equal(t, "user", created.Role, "role should default to user")
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.True(t, utils.ComparePassword(created.PasswordHash, "secret123"))

	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "asha@example.com", response.User.Email)

	claims, err := utils.ValidateToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockRepo := &MockUserRepository{
		FindByEmailFunc: func(email string) (*models.User, error) {
			return &models.User{Email: email}, nil
		},
	}
	svc := NewAuthService(mockRepo)

	_, err := svc.Register("Asha", "asha@example.com", "secret123", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	mockRepo := &MockUserRepository{
		FindByEmailFunc: func(email string) (*models.User, error) {
			return &models.User{
				ID:           "0b5f4a3e-0000-4000-8000-000000000002",
				Name:         "Asha",
				Email:        email,
				PasswordHash: hash,
				Role:         "admin",
			}, nil
		},
	}
	svc := NewAuthService(mockRepo)

	response, err := svc.Login("asha@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "admin", response.User.Role)

	claims, err := utils.ValidateToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	mockRepo := &MockUserRepository{
		FindByEmailFunc: func(email string) (*models.User, error) {
			return &models.User{Email: email, PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(mockRepo)

	_, err = svc.Login("asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockRepo := &MockUserRepository{
		FindByEmailFunc: func(email string) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewAuthService(mockRepo)

	_, err := svc.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	mockRepo := &MockUserRepository{
		FindByIDFunc: func(id string) (*models.User, error) {
			if id != "known" {
				return nil, gorm.ErrRecordNotFound
			}
			return &models.User{ID: id, Name: "Asha", Email: "asha@example.com", Role: "user"}, nil
		},
	}
	svc := NewAuthService(mockRepo)

	profile, err := svc.GetProfile("known")
	require.NoError(t, err)
	assert.Equal(t, "Asha", profile.Name)

	_, err = svc.GetProfile("unknown")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
