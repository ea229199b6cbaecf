package services

import (
	"errors"
	"testing"
	"time"

	"storefront/internal/models"
)

// userRepoMock keeps users in memory keyed by email.
type userRepoMock struct {
	users map[string]*models.User
	saves int
}

func newUserRepoMock(users ...*models.User) *userRepoMock {
	m := &userRepoMock{users: make(map[string]*models.User)}
	for _, u := range users {
		m.users[u.Email] = u
	}
	return m
}

func (m *userRepoMock) Create(user *models.User) error { m.users[user.Email] = user; return nil }
func (m *userRepoMock) GetByID(id int) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (m *userRepoMock) GetByEmail(email string) (*models.User, error) { return m.users[email], nil }
func (m *userRepoMock) GetByUsername(username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (m *userRepoMock) Update(user *models.User) error { return nil }
func (m *userRepoMock) UpdatePassword(userID int, passwordHash string) error {
	for _, u := range m.users {
		if u.ID == userID {
			u.PasswordHash = passwordHash
		}
	}
	return nil
}
func (m *userRepoMock) Delete(id int) error                        { return nil }
func (m *userRepoMock) List(limit, offset int) ([]*models.User, error) { return nil, nil }
func (m *userRepoMock) GetCount() (int, error)                     { return len(m.users), nil }
func (m *userRepoMock) SaveVerificationState(user *models.User) error {
	m.saves++
	return nil
}
func (m *userRepoMock) SaveResetCode(userID int, code *string) error {
	for _, u := range m.users {
		if u.ID == userID {
			u.ResetPasswordCode = code
		}
	}
	return nil
}

// emailMock records what would have been sent.
type emailMock struct {
	verificationCodes []string
	resetCodes        []string
}

func (m *emailMock) SendVerificationCode(email, code string, expiresInMinutes int) {
	m.verificationCodes = append(m.verificationCodes, code)
}
func (m *emailMock) SendPasswordResetCode(email, code string) {
	m.resetCodes = append(m.resetCodes, code)
}
func (m *emailMock) SendWelcomeEmail(email, username string) {}
func (m *emailMock) Close()                                  {}

var testBase = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestVerification(users ...*models.User) (*VerificationService, *userRepoMock, *emailMock) {
	repo := newUserRepoMock(users...)
	emails := &emailMock{}
	svc := NewVerificationService(repo, emails, NewAuthService(30*time.Minute))
	svc.WithClock(func() time.Time { return testBase })
	return svc, repo, emails
}

func strptr(s string) *string        { return &s }
func timeptr(t time.Time) *time.Time { return &t }

func TestSendVerificationCode_UserNotFound(t *testing.T) {
	svc, _, _ := newTestVerification()
	_, err := svc.SendVerificationCode("ghost@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSendVerificationCode_AlreadyVerified(t *testing.T) {
	svc, _, _ := newTestVerification(&models.User{
		ID: 1, Email: "a@example.com", IsActive: true, IsVerified: true,
	})
	_, err := svc.SendVerificationCode("a@example.com")
	if !errors.Is(err, ErrAlreadyVerified) {
		t.Fatalf("expected ErrAlreadyVerified, got %v", err)
	}
}

func TestSendVerificationCode_SetsState(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@example.com", VerificationAttempts: 3}
	svc, repo, emails := newTestVerification(user)

	expiresIn, err := svc.SendVerificationCode("a@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expiresIn != 10 {
		t.Errorf("expires_in = %d, want 10", expiresIn)
	}
	if user.VerificationCode == nil || len(*user.VerificationCode) != 6 {
		t.Fatalf("expected a 6-digit code, got %v", user.VerificationCode)
	}
	for _, r := range *user.VerificationCode {
		if r < '0' || r > '9' {
			t.Errorf("code contains non-digit %q", r)
		}
	}
	if user.VerificationAttempts != 0 {
		t.Errorf("attempts = %d, want 0 after reissue", user.VerificationAttempts)
	}
	if user.VerificationCodeExpiresAt == nil || !user.VerificationCodeExpiresAt.Equal(testBase.Add(10*time.Minute)) {
		t.Errorf("expiry = %v, want base+10m", user.VerificationCodeExpiresAt)
	}
	if user.LastVerificationSentAt == nil || !user.LastVerificationSentAt.Equal(testBase) {
		t.Errorf("last sent = %v, want base", user.LastVerificationSentAt)
	}
	if repo.saves != 1 {
		t.Errorf("saves = %d, want 1", repo.saves)
	}
	if len(emails.verificationCodes) != 1 || emails.verificationCodes[0] != *user.VerificationCode {
		t.Errorf("emailed code mismatch: %v", emails.verificationCodes)
	}
}

func TestSendVerificationCode_Cooldown(t *testing.T) {
	user := &models.User{
		ID: 1, Email: "a@example.com",
		LastVerificationSentAt: timeptr(testBase.Add(-30 * time.Second)),
	}
	svc, _, _ := newTestVerification(user)

	_, err := svc.SendVerificationCode("a@example.com")
	if !errors.Is(err, ErrCooldownActive) {
		t.Fatalf("expected ErrCooldownActive, got %v", err)
	}
	var cce *CooldownError
	if !errors.As(err, &cce) {
		t.Fatalf("expected *CooldownError, got %T", err)
	}
	if cce.SecondsLeft != 30 {
		t.Errorf("seconds left = %d, want 30", cce.SecondsLeft)
	}
}

func TestSendVerificationCode_CooldownBoundary(t *testing.T) {
	// exactly 60 seconds after the last send a new code is allowed
	user := &models.User{
		ID: 1, Email: "a@example.com",
		LastVerificationSentAt: timeptr(testBase.Add(-60 * time.Second)),
	}
	svc, _, _ := newTestVerification(user)

	if _, err := svc.SendVerificationCode("a@example.com"); err != nil {
		t.Fatalf("expected reissue at the cooldown boundary, got %v", err)
	}
}

func TestVerifyEmail_NoCodeIssued(t *testing.T) {
	svc, _, _ := newTestVerification(&models.User{ID: 1, Email: "a@example.com"})
	_, err := svc.VerifyEmail("a@example.com", "123456")
	if !errors.Is(err, ErrNoCodeIssued) {
		t.Fatalf("expected ErrNoCodeIssued, got %v", err)
	}
}

func TestVerifyEmail_Success(t *testing.T) {
	user := &models.User{
		ID: 1, Email: "a@example.com",
		VerificationCode:          strptr("123456"),
		VerificationCodeExpiresAt: timeptr(testBase.Add(10 * time.Minute)),
		LastVerificationSentAt:    timeptr(testBase),
		VerificationAttempts:      2,
	}
	svc, _, _ := newTestVerification(user)

	got, err := svc.VerifyEmail("a@example.com", "123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsActive || !got.IsVerified {
		t.Errorf("expected active+verified, got active=%v verified=%v", got.IsActive, got.IsVerified)
	}
	if got.VerificationCode != nil || got.VerificationCodeExpiresAt != nil ||
		got.VerificationAttempts != 0 || got.LastVerificationSentAt != nil {
		t.Errorf("verification state not fully cleared: %+v", got)
	}
}

func TestVerifyEmail_WrongCodeCountsDown(t *testing.T) {
	user := &models.User{
		ID: 1, Email: "a@example.com",
		VerificationCode:          strptr("123456"),
		VerificationCodeExpiresAt: timeptr(testBase.Add(10 * time.Minute)),
	}
	svc, _, _ := newTestVerification(user)

	for i, want := range []int{4, 3, 2, 1} {
		_, err := svc.VerifyEmail("a@example.com", "000000")
		if !errors.Is(err, ErrCodeInvalid) {
			t.Fatalf("attempt %d: expected ErrCodeInvalid, got %v", i+1, err)
		}
		var ice *InvalidCodeError
		if !errors.As(err, &ice) {
			t.Fatalf("attempt %d: expected *InvalidCodeError, got %T", i+1, err)
		}
		if ice.AttemptsLeft != want {
			t.Errorf("attempt %d: attempts left = %d, want %d", i+1, ice.AttemptsLeft, want)
		}
	}

	// the correct code still works while attempts remain
	if _, err := svc.VerifyEmail("a@example.com", "123456"); err != nil {
		t.Fatalf("correct code after 4 misses should verify, got %v", err)
	}
}

func TestVerifyEmail_AttemptsExhausted(t *testing.T) {
	user := &models.User{
		ID: 1, Email: "a@example.com",
		VerificationCode:          strptr("123456"),
		VerificationCodeExpiresAt: timeptr(testBase.Add(10 * time.Minute)),
	}
	svc, _, _ := newTestVerification(user)

	for i := 0; i < MaxVerificationAttempts; i++ {
		if _, err := svc.VerifyEmail("a@example.com", "000000"); !errors.Is(err, ErrCodeInvalid) {
			t.Fatalf("attempt %d: expected ErrCodeInvalid, got %v", i+1, err)
		}
	}

	// the sixth try hits the cap and clears the code
	_, err := svc.VerifyEmail("a@example.com", "123456")
	if !errors.Is(err, ErrAttemptsExceeded) {
		t.Fatalf("expected ErrAttemptsExceeded, got %v", err)
	}
	if user.VerificationCode != nil || user.VerificationCodeExpiresAt != nil {
		t.Errorf("code not cleared after exceeding attempts")
	}
	if user.VerificationAttempts != 0 {
		t.Errorf("attempts = %d, want 0 after clear", user.VerificationAttempts)
	}

	// with no code on file the flow reports NoCodeIssued
	_, err = svc.VerifyEmail("a@example.com", "123456")
	if !errors.Is(err, ErrNoCodeIssued) {
		t.Fatalf("expected ErrNoCodeIssued after clear, got %v", err)
	}
}

func TestVerifyEmail_Expired(t *testing.T) {
	user := &models.User{
		ID: 1, Email: "a@example.com",
		VerificationCode:          strptr("123456"),
		VerificationCodeExpiresAt: timeptr(testBase.Add(-100 * time.Second)),
	}
	svc, _, _ := newTestVerification(user)

	_, err := svc.VerifyEmail("a@example.com", "123456")
	if !errors.Is(err, ErrCodeExpired) {
		t.Fatalf("expected ErrCodeExpired, got %v", err)
	}
	// the expired code stays on the row until reissue or the attempt cap
	if user.VerificationCode == nil {
		t.Errorf("expired code should not be cleared")
	}
}

func TestVerifyEmail_RoundTrip(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@example.com"}
	svc, _, emails := newTestVerification(user)

	if _, err := svc.SendVerificationCode("a@example.com"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	code := emails.verificationCodes[0]

	got, err := svc.VerifyEmail("a@example.com", code)
	if err != nil {
		t.Fatalf("verify with the emailed code failed: %v", err)
	}
	if !got.IsVerified {
		t.Errorf("user not verified after round trip")
	}
}

func TestForgotPassword_UserNotFound(t *testing.T) {
	svc, _, _ := newTestVerification()
	if err := svc.ForgotPassword("ghost@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestResetPassword_Flow(t *testing.T) {
	auth := NewAuthService(30 * time.Minute)
	oldHash, _ := auth.HashPassword("old-password")
	user := &models.User{ID: 1, Email: "a@example.com", PasswordHash: oldHash}
	svc, _, emails := newTestVerification(user)

	if err := svc.ForgotPassword("a@example.com"); err != nil {
		t.Fatalf("forgot-password failed: %v", err)
	}
	if user.ResetPasswordCode == nil {
		t.Fatal("reset code not stored")
	}
	code := emails.resetCodes[0]
	if code != *user.ResetPasswordCode {
		t.Fatalf("emailed code %q != stored code %q", code, *user.ResetPasswordCode)
	}

	if err := svc.ResetPassword("a@example.com", "999999x", "new-password"); !errors.Is(err, ErrResetCodeInvalid) {
		t.Fatalf("expected ErrResetCodeInvalid for a wrong code, got %v", err)
	}

	if err := svc.ResetPassword("a@example.com", code, "new-password"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if err := auth.CheckPassword(user.PasswordHash, "new-password"); err != nil {
		t.Errorf("new password does not match stored hash")
	}
	if user.ResetPasswordCode != nil {
		t.Errorf("reset code not cleared after use")
	}
}

func TestResetPassword_NoCodeOnFile(t *testing.T) {
	svc, _, _ := newTestVerification(&models.User{ID: 1, Email: "a@example.com"})
	if err := svc.ResetPassword("a@example.com", "123456", "x12345678"); !errors.Is(err, ErrResetCodeInvalid) {
		t.Fatalf("expected ErrResetCodeInvalid, got %v", err)
	}
}

func TestGenerateCode_Shape(t *testing.T) {
	svc, _, _ := newTestVerification()
	for i := 0; i < 100; i++ {
		code := svc.generateCode()
		if len(code) != 6 {
			t.Fatalf("code %q is not 6 characters", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit", code)
			}
		}
	}
}
