package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrAlreadyVerified  = errors.New("user already verified")
	ErrCooldownActive   = errors.New("cooldown active")
	ErrNoCodeIssued     = errors.New("no verification code found")
	ErrCodeExpired      = errors.New("verification code expired")
	ErrAttemptsExceeded = errors.New("maximum verification attempts exceeded")
	ErrCodeInvalid      = errors.New("invalid verification code")
	ErrResetCodeInvalid = errors.New("invalid reset code")
)

// CooldownError matches ErrCooldownActive and carries the remaining wait.
type CooldownError struct {
	SecondsLeft int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("please wait %d seconds before requesting a new code", e.SecondsLeft)
}

func (e *CooldownError) Is(target error) bool { return target == ErrCooldownActive }

// InvalidCodeError matches ErrCodeInvalid and carries the attempts left.
type InvalidCodeError struct {
	AttemptsLeft int
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid verification code, %d attempts remaining", e.AttemptsLeft)
}

func (e *InvalidCodeError) Is(target error) bool { return target == ErrCodeInvalid }

const (
	MaxVerificationAttempts = 5
	VerificationCooldown    = 60 * time.Second
	VerificationCodeTTL     = 10 * time.Minute
)

// VerificationService owns the verification-code lifecycle: issuance with a
// cooldown, expiry, an attempt cap, and the activation state transition.
// The password-reset code path is the simpler variant: a bare code with no
// expiry or attempt tracking.
//
// All state lives on the user row; every operation is one read-modify-write
// through the repository. Email delivery is asynchronous and best-effort,
// so a send failure never rolls the state change back.
type VerificationService struct {
	users  repositories.UserRepository
	emails EmailService
	auth   AuthService

	rnd *rand.Rand
	now func() time.Time
}

func NewVerificationService(users repositories.UserRepository, emails EmailService, auth AuthService) *VerificationService {
	return &VerificationService{
		users:  users,
		emails: emails,
		auth:   auth,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
}

// WithClock replaces the time source; tests pin it to a fixed instant.
func (s *VerificationService) WithClock(now func() time.Time) {
	s.now = now
}

// generateCode returns 6 decimal digits, each uniformly sampled.
// Not cryptographic; the attempt cap is what resists guessing.
func (s *VerificationService) generateCode() string {
	return fmt.Sprintf("%06d", s.rnd.Intn(1000000))
}

// SendVerificationCode issues a fresh code for an unverified account.
// Returns the code TTL in whole minutes for the response payload.
func (s *VerificationService) SendVerificationCode(email string) (int, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	if user.IsActive && user.IsVerified {
		return 0, ErrAlreadyVerified
	}

	now := s.now()
	if user.LastVerificationSentAt != nil {
		cooldownEnd := user.LastVerificationSentAt.Add(VerificationCooldown)
		if now.Before(cooldownEnd) {
			return 0, &CooldownError{SecondsLeft: int(cooldownEnd.Sub(now).Seconds())}
		}
	}

	// a new code always invalidates the previous one
	code := s.generateCode()
	expiresAt := now.Add(VerificationCodeTTL)
	user.VerificationCode = &code
	user.VerificationCodeExpiresAt = &expiresAt
	user.VerificationAttempts = 0
	user.LastVerificationSentAt = &now

	if err := s.users.SaveVerificationState(user); err != nil {
		return 0, err
	}

	expiresInMinutes := int(VerificationCodeTTL.Minutes())
	if s.emails != nil {
		s.emails.SendVerificationCode(user.Email, code, expiresInMinutes)
	}
	log.Printf("[auth][send-code] user_id=%d email=%s expires_in=%dm", user.ID, user.Email, expiresInMinutes)
	return expiresInMinutes, nil
}

// VerifyEmail checks a submitted code and, on success, activates the account
// and clears all verification state.
func (s *VerificationService) VerifyEmail(email, code string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if user.VerificationCode == nil || user.VerificationCodeExpiresAt == nil {
		return nil, ErrNoCodeIssued
	}

	if user.VerificationAttempts >= MaxVerificationAttempts {
		// clear the code, the user has to request a new one
		user.VerificationCode = nil
		user.VerificationCodeExpiresAt = nil
		user.VerificationAttempts = 0
		if err := s.users.SaveVerificationState(user); err != nil {
			return nil, err
		}
		return nil, ErrAttemptsExceeded
	}

	// an expired code stays in place until reissue or the attempt cap clears it
	if s.now().After(*user.VerificationCodeExpiresAt) {
		return nil, ErrCodeExpired
	}

	if *user.VerificationCode != code {
		user.VerificationAttempts++
		if err := s.users.SaveVerificationState(user); err != nil {
			return nil, err
		}
		return nil, &InvalidCodeError{AttemptsLeft: MaxVerificationAttempts - user.VerificationAttempts}
	}

	user.IsActive = true
	user.IsVerified = true
	user.VerificationCode = nil
	user.VerificationCodeExpiresAt = nil
	user.VerificationAttempts = 0
	user.LastVerificationSentAt = nil
	if err := s.users.SaveVerificationState(user); err != nil {
		return nil, err
	}
	log.Printf("[auth][verify-email] OK user_id=%d email=%s", user.ID, user.Email)
	return user, nil
}

// ForgotPassword stores a reset code on the account and mails it.
// Unlike the email-verification path there is no expiry, cooldown or
// attempt cap on reset codes.
func (s *VerificationService) ForgotPassword(email string) error {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	code := s.generateCode()
	if err := s.users.SaveResetCode(user.ID, &code); err != nil {
		return err
	}

	if s.emails != nil {
		s.emails.SendPasswordResetCode(user.Email, code)
	}
	log.Printf("[auth][forgot-password] reset code issued user_id=%d", user.ID)
	return nil
}

// ResetPassword replaces the password hash if email+code match, then clears
// the reset code.
func (s *VerificationService) ResetPassword(email, code, newPassword string) error {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil || user.ResetPasswordCode == nil || *user.ResetPasswordCode != code {
		return ErrResetCodeInvalid
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(user.ID, hash); err != nil {
		return err
	}
	if err := s.users.SaveResetCode(user.ID, nil); err != nil {
		return err
	}
	log.Printf("[auth][reset-password] OK user_id=%d", user.ID)
	return nil
}
