package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aithreya/learning-service/internal/events"
	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/repositories"
	"github.com/aithreya/learning-service/internal/utils"
	"github.com/aithreya/learning-service/internal/validator"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type authService struct {
	repo      repositories.Repository
	tokens    TokenService
	publisher events.EventPublisher
	logger    utils.Logger
	validator *validator.Validator
}

func NewAuthService(
	repo repositories.Repository,
	tokens TokenService,
	publisher events.EventPublisher,
	logger utils.Logger,
	validator *validator.Validator,
) AuthService {
	return &authService{
		repo:      repo,
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// ===== REGISTRATION AND LOGIN =====

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	exists, err := s.repo.User().ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	language := req.PreferredLanguage
	if language == "" {
		language = models.DefaultLanguage
	}

	user := &models.User{
		Name:              req.Name,
		Email:             req.Email,
		Password:          string(hash),
		Role:              models.RoleUser,
		PreferredLanguage: language,
		Level:             1,
		IsActive:          true,
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)

	if err := s.publisher.PublishLearningEvent(ctx, events.NewUserRegisteredEvent(user.ID, user.Email, user.PreferredLanguage)); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish registration event", "user_id", user.ID, "error", err)
	}

	return s.issueTokens(user)
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same failure as a wrong password so emails cannot be probed.
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	now := time.Now()
	user.LastLoginAt = &now
	user.UpdateStreak(now)
	if err := s.repo.User().Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update login state: %w", err)
	}

	s.logger.InfoContext(ctx, "User logged in", "user_id", user.ID)

	return s.issueTokens(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	userID, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.getActiveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// ===== PROFILE =====

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.getActiveUser(ctx, userID)
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*models.User, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	user, err := s.getActiveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = req.DateOfBirth
	}

	if err := s.repo.User().Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

func (s *authService) UpdatePreferences(ctx context.Context, userID uuid.UUID, req *UpdatePreferencesRequest) (*models.User, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	user, err := s.getActiveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.PreferredLanguage != nil {
		user.PreferredLanguage = *req.PreferredLanguage
	}
	if req.DarkMode != nil {
		user.DarkMode = *req.DarkMode
	}
	if req.NotificationsEnabled != nil {
		user.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.EducationLevel != nil {
		user.EducationLevel = *req.EducationLevel
	}
	if req.Interests != nil {
		user.Interests = datatypes.NewJSONSlice(req.Interests)
	}

	if err := s.repo.User().Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req *ChangePasswordRequest) error {
	if err := s.validator.ValidateStruct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	user, err := s.getActiveUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = string(hash)
	if err := s.repo.User().Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.InfoContext(ctx, "Password changed", "user_id", userID)
	return nil
}

func (s *authService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.getActiveUser(ctx, userID); err != nil {
		return err
	}
	if err := s.repo.User().Deactivate(ctx, userID); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	s.logger.InfoContext(ctx, "Account deactivated", "user_id", userID)
	return nil
}

// ===== HELPERS =====

// normalizeEmail keeps the email uniqueness constraint case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) getActiveUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	return user, nil
}

func (s *authService) issueTokens(user *models.User) (*AuthResponse, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResponse{
		Token:        access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}
