package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hellodg123/ShipReward.in/internal/auth"
	"github.com/hellodg123/ShipReward.in/internal/config"
	"github.com/hellodg123/ShipReward.in/internal/domain"
	"github.com/hellodg123/ShipReward.in/internal/events"
	"github.com/hellodg123/ShipReward.in/internal/repository"
	apperrors "github.com/hellodg123/ShipReward.in/pkg/util"
)

// ForgotPasswordMessage is returned for every forgot-password request, whether
// or not the email is registered, to prevent account enumeration.
const ForgotPasswordMessage = "If your email is registered, you will receive password reset instructions."

// ResetPasswordMessage confirms a completed password reset.
const ResetPasswordMessage = "Password reset successful"

// RegisterInput carries the client-supplied registration fields. Role is not
// among them; every registration produces a customer.
type RegisterInput struct {
	Email        string
	Password     string
	FirstName    string
	LastName     string
	MobileNumber string
}

// AuthService coordinates registration, login and password flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL()),
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new customer account and issues a token for it.
//
// Email and mobile uniqueness is check-then-insert with no unique index
// behind it; two concurrent registrations can both pass the checks and
// both insert. Known limitation, kept as-is.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, time.Time, error) {
	email := normalizeEmail(in.Email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if existing != nil {
		return nil, "", time.Time{}, apperrors.NewConflict("Email already registered")
	}

	existing, err = s.users.FindByMobile(ctx, in.MobileNumber)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if existing != nil {
		return nil, "", time.Time{}, apperrors.NewConflict("Mobile number already registered")
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		MobileNumber: in.MobileNumber,
		Role:         domain.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Generate(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{
		Email: user.Email,
		Role:  string(user.Role),
	})
	return user, token, exp, nil
}

// Login authenticates by email and password. Unknown email and wrong password
// produce the same error so callers cannot tell which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil || !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid email or password")
	}

	token, exp, err := s.tokenMgr.Generate(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// ForgotPassword always succeeds with the same generic message. Email
// delivery is out of scope; when the account exists an internal event is
// published, but the caller-visible outcome never differs.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", err
	}
	if user != nil {
		s.publish(ctx, events.EventPasswordResetRequested, user.ID, events.PasswordResetRequestedPayload{
			Email: user.Email,
		})
	}
	return ForgotPasswordMessage, nil
}

// ResetPassword replaces the stored hash for the given email. It requires no
// proof of prior authentication and no reset token; tokens issued before the
// reset remain valid until they expire.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) (string, error) {
	normalized := normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperrors.NewNotFound("User not found")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdatePassword(ctx, normalized, hash, time.Now().UTC()); err != nil {
		return "", err
	}

	s.publish(ctx, events.EventPasswordResetCompleted, user.ID, events.PasswordResetCompletedPayload{
		Email: user.Email,
	})
	return ResetPasswordMessage, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
