package services

import (
	"context"
	"testing"
	"time"

	"github.com/aithreya/learning-service/internal/events"
	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/utils"
	"github.com/aithreya/learning-service/internal/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthServiceForTest(repo *mockRepository) (AuthService, *events.MockEventPublisher) {
	logger := utils.NewDevelopmentLogger()
	publisher := events.NewMockEventPublisher(utils.ToSlogLogger(logger))
	tokens := NewTokenService("test-secret", time.Hour, 24*time.Hour)
	svc := NewAuthService(repo, tokens, publisher, logger, validator.New())
	return svc, publisher
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister_Success(t *testing.T) {
	repo := newMockRepository()
	svc, publisher := newAuthServiceForTest(repo)

	repo.user.On("ExistsByEmail", mock.Anything, "asha@example.com").Return(false, nil)
	repo.user.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = uuid.New()
		}).
		Return(nil)

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, models.RoleUser, resp.User.Role)
	assert.Equal(t, models.DefaultLanguage, resp.User.PreferredLanguage)
	assert.NotEqual(t, "supersecret", resp.User.Password, "password is stored hashed")

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventUserRegistered, published[0].Type)

	repo.assertExpectations(t)
}

func TestRegister_NormalizesEmail(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newAuthServiceForTest(repo)

	// Uniqueness is case-insensitive, so the mixed-case form must be
	// lowercased before both the existence check and the insert.
	repo.user.On("ExistsByEmail", mock.Anything, "asha@example.com").Return(false, nil)
	repo.user.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*models.User)
			assert.Equal(t, "asha@example.com", user.Email)
			user.ID = uuid.New()
		}).
		Return(nil)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Asha",
		Email:    "  Asha@Example.COM ",
		Password: "supersecret",
	})
	require.NoError(t, err)

	repo.assertExpectations(t)
}

func TestLogin_NormalizesEmail(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newAuthServiceForTest(repo)

	user := &models.User{
		ID:       uuid.New(),
		Email:    "asha@example.com",
		Password: hashPassword(t, "supersecret"),
		IsActive: true,
		Level:    1,
	}
	repo.user.On("GetByEmail", mock.Anything, "asha@example.com").Return(user, nil)
	repo.user.On("Update", mock.Anything, user).Return(nil)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "ASHA@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	repo.assertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newAuthServiceForTest(repo)

	repo.user.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Someone",
		Email:    "taken@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newAuthServiceForTest(repo)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Someone",
		Email:    "a@b.com",
		Password: "short",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestLogin_Success(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newAuthServiceForTest(repo)

	user := &models.User{
		ID:       uuid.New(),
		Email:    "asha@example.com",
		Password: hashPassword(t, "supersecret"),
		IsActive: true,
		Level:    1,
	}
	repo.user.On("GetByEmail", mock.Anything, "asha@example.com").Return(user, nil)
	repo.user.On("Update", mock.Anything, user).Return(nil)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "asha@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.NotNil(t, user.LastLoginAt)
	assert.Equal(t, 1, user.CurrentStreak, "login counts as daily activity")
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newAuthServiceForTest(repo)

	user := &models.User{
		ID:       uuid.New(),
		Email:    "asha@example.com",
		Password: hashPassword(t, "supersecret"),
		IsActive: true,
	}
	repo.user.On("GetByEmail", mock.Anything, "asha@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newAuthServiceForTest(repo)

	repo.user.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newAuthServiceForTest(repo)

	user := &models.User{
		ID:       uuid.New(),
		Email:    "gone@example.com",
		Password: hashPassword(t, "supersecret"),
		IsActive: false,
	}
	repo.user.On("GetByEmail", mock.Anything, "gone@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "gone@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newAuthServiceForTest(repo)

	tokens := NewTokenService("test-secret", time.Hour, 24*time.Hour)
	access, err := tokens.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), access)
	assert.ErrorIs(t, err, ErrWrongTokenKind)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newAuthServiceForTest(repo)

	user := &models.User{
		ID:       uuid.New(),
		Password: hashPassword(t, "supersecret"),
		IsActive: true,
	}
	repo.user.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	err := svc.ChangePassword(context.Background(), user.ID, &ChangePasswordRequest{
		CurrentPassword: "not-it",
		NewPassword:     "anothersecret",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)
}
