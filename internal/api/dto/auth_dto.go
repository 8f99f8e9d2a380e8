package dto

import (
	"time"

	"github.com/hellodg123/ShipReward.in/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MobileNumber string `json:"mobile_number"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest payload.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest payload.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

// UserResponse is the public profile projection. It never carries the
// password hash or updated_at.
type UserResponse struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	MobileNumber string      `json:"mobile_number"`
	Role         domain.Role `json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
}

// TokenResponse is the auth success envelope.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// MessageResponse wraps plain informational replies.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewUserResponse projects a user onto its public profile.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		MobileNumber: user.MobileNumber,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
	}
}

// NewTokenResponse builds the bearer-token envelope.
func NewTokenResponse(token string, user *domain.User) TokenResponse {
	return TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        NewUserResponse(user),
	}
}
