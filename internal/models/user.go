package models

import "time"

// Membership levels stored as plain strings in the users table.
const (
	MembershipFree    = "free"
	MembershipBasic   = "basic"
	MembershipPremium = "premium"
)

type User struct {
	ID               int        `json:"id"`
	Email            string     `json:"email"`
	Username         string     `json:"username"`
	PasswordHash     string     `json:"-"` // не отдаём наружу
	MembershipLevel  string     `json:"membership_level"`
	MembershipExpiry *time.Time `json:"membership_expiry,omitempty"`
	IsActive         bool       `json:"is_active"`
	IsSuperuser      bool       `json:"is_superuser"`
	IsVerified       bool       `json:"is_verified"`

	// email verification state; fields are set only while a code is outstanding
	VerificationCode          *string    `json:"-"`
	VerificationCodeExpiresAt *time.Time `json:"-"`
	VerificationAttempts      int        `json:"-"`
	LastVerificationSentAt    *time.Time `json:"-"`

	// password reset code (no expiry tracked for it)
	ResetPasswordCode *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
