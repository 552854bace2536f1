package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ink-and-realm/feature/auth/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

var (
	// ErrInvalidRequest marks malformed register/login input.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUsernameTaken is returned when the normalized username exists.
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthorized is returned when neither a valid session token nor
	// a known user id was presented.
	ErrUnauthorized = errors.New("unauthorized")
)

// Service implements registration, login and session resolution.
type Service struct {
	db          *gorm.DB
	logger      *zap.Logger
	sessionDays int
}

// NewService creates a new auth service.
func NewService(db *gorm.DB, logger *zap.Logger, cfg Config) *Service {
	return &Service{
		db:          db,
		logger:      logger,
		sessionDays: cfg.SessionDaysOrDefault(),
	}
}

// Register creates an account and issues a session.
func (s *Service) Register(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidRequest)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidRequest, minPasswordLength)
	}

	normalized := strings.ToUpper(username)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username_normalized = ?", normalized).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:           username,
		UsernameNormalized: normalized,
		PasswordHash:       string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		UserID:       user.ID,
		Username:     user.Username,
		SessionToken: session.Token,
	}, nil
}

// Login verifies credentials and issues a fresh session.
func (s *Service) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidRequest)
	}

	normalized := strings.ToUpper(username)

	var user models.User
	err := s.db.WithContext(ctx).
		Where("username_normalized = ?", normalized).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		UserID:       user.ID,
		Username:     user.Username,
		SessionToken: session.Token,
	}, nil
}

// Resolve turns a session token or a raw user id into a verified user id.
// A presented token always wins over the raw id. Expired sessions are
// deleted as a side effect of resolution.
func (s *Service) Resolve(ctx context.Context, sessionToken string, userID int) (int, error) {
	if sessionToken != "" {
		var session models.Session
		err := s.db.WithContext(ctx).Where("token = ?", sessionToken).First(&session).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUnauthorized
		}
		if err != nil {
			return 0, fmt.Errorf("failed to look up session: %w", err)
		}

		if session.Expired(time.Now().UTC()) {
			if err := s.db.WithContext(ctx).Delete(&models.Session{}, session.ID).Error; err != nil {
				s.logger.Warn("Failed to delete expired session", zap.Int("session_id", session.ID), zap.Error(err))
			}
			return 0, ErrUnauthorized
		}

		return session.UserID, nil
	}

	if userID > 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.User{}).
			Where("id = ?", userID).Count(&count).Error; err != nil {
			return 0, fmt.Errorf("failed to look up user: %w", err)
		}
		if count == 0 {
			return 0, ErrUnauthorized
		}
		return userID, nil
	}

	return 0, ErrUnauthorized
}

// PurgeExpired deletes all sessions past their expiry and returns the
// number of rows removed. Used by the `sessions purge` command.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_utc <= ?", time.Now().UTC()).
		Delete(&models.Session{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *Service) createSession(ctx context.Context, userID int) (*models.Session, error) {
	now := time.Now().UTC()
	session := models.Session{
		UserID:     userID,
		Token:      strings.ReplaceAll(uuid.NewString(), "-", ""),
		CreatedUTC: now,
		ExpiresUTC: now.AddDate(0, 0, s.sessionDays),
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &session, nil
}
