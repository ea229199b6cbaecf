package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/services"
)

type AuthHandler struct {
	userService  services.UserService
	authService  services.AuthService
	verification *services.VerificationService
}

func NewAuthHandler(userService services.UserService, authService services.AuthService, verification *services.VerificationService) *AuthHandler {
	return &AuthHandler{userService: userService, authService: authService, verification: verification}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
}

type verifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"verification_code" binding:"required"`
}

type emailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// @Summary      Login
// @Description  Authenticates a user and returns an access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Credentials"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))

	user, err := h.userService.GetUserByEmail(email)
	if err != nil || user == nil {
		log.Printf("[auth][token] unknown email=%q err=%v", email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}
	if err := h.authService.CheckPassword(user.PasswordHash, req.Password); err != nil {
		log.Printf("[auth][token] password mismatch user_id=%d", user.ID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}

	token, err := h.authService.GenerateAccessToken(user)
	if err != nil {
		log.Printf("[auth][token] sign failed user_id=%d err=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// @Summary      Admin login
// @Description  Same as Token but restricted to active, verified superusers
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Credentials"
// @Success      200    {object}  map[string]interface{}
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /admin/auth/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))

	user, err := h.userService.GetUserByEmail(email)
	if err != nil || user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}
	if err := h.authService.CheckPassword(user.PasswordHash, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}
	if !user.IsSuperuser || !user.IsActive || !user.IsVerified {
		log.Printf("[auth][admin-login] forbidden user_id=%d superuser=%v active=%v verified=%v",
			user.ID, user.IsSuperuser, user.IsActive, user.IsVerified)
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	token, err := h.authService.GenerateAccessToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// @Summary      Register
// @Description  Creates an inactive account and emails a verification code
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        register  body      registerRequest  true  "New account"
// @Success      201       {object}  map[string]interface{}
// @Failure      400       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Register(req.Email, req.Username, req.Password)
	switch {
	case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Printf("[auth][register] failed email=%q err=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	// a fresh account has no cooldown, so this only fails on storage errors
	if _, err := h.verification.SendVerificationCode(user.Email); err != nil {
		log.Printf("[auth][register] initial code send failed user_id=%d err=%v", user.ID, err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful, check your email for the verification code",
		"user":    user,
	})
}

// @Summary      Send verification code
// @Description  Issues a fresh 6-digit code for an unverified account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      emailRequest  true  "Account email"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /auth/send-verification-code [post]
func (h *AuthHandler) SendVerificationCode(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiresIn, err := h.verification.SendVerificationCode(req.Email)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	case errors.Is(err, services.ErrAlreadyVerified):
		c.JSON(http.StatusBadRequest, gin.H{"error": "User is already verified"})
		return
	case errors.Is(err, services.ErrCooldownActive):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Printf("[auth][send-code] failed email=%q err=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Verification code sent",
		"expires_in": expiresIn, // minutes
	})
}

// @Summary      Verify email
// @Description  Checks a verification code and activates the account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      verifyEmailRequest  true  "Email and code"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.verification.VerifyEmail(req.Email, req.Code)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	case errors.Is(err, services.ErrNoCodeIssued):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No verification code found, request a new one"})
		return
	case errors.Is(err, services.ErrAttemptsExceeded):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Maximum verification attempts exceeded, request a new code"})
		return
	case errors.Is(err, services.ErrCodeExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Verification code expired, request a new one"})
		return
	case errors.Is(err, services.ErrCodeInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Printf("[auth][verify-email] failed email=%q err=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email verified successfully",
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"is_active":   user.IsActive,
			"is_verified": user.IsVerified,
		},
	})
}

// @Summary      Forgot password
// @Description  Emails a password reset code
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      emailRequest  true  "Account email"
// @Success      200      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.verification.ForgotPassword(req.Email)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	case err != nil:
		log.Printf("[auth][forgot-password] failed email=%q err=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset code sent"})
}

// @Summary      Reset password
// @Description  Replaces the password if the reset code matches
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      resetPasswordRequest  true  "Email, code and new password"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  map[string]string
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.verification.ResetPassword(req.Email, req.Code, req.NewPassword)
	switch {
	case errors.Is(err, services.ErrResetCodeInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or reset code"})
		return
	case err != nil:
		log.Printf("[auth][reset-password] failed email=%q err=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}
