package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/middleware"
	"storefront/internal/models"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	svc := NewAuthService(30 * time.Minute)

	hash, err := svc.HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("password stored in the clear")
	}
	if err := svc.CheckPassword(hash, "s3cret-password"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := svc.CheckPassword(hash, "wrong-password"); err == nil {
		t.Errorf("wrong password accepted")
	}
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	middleware.SetJWTKey("test-secret")
	svc := NewAuthService(30 * time.Minute)

	tokenString, err := svc.GenerateAccessToken(&models.User{ID: 42, IsSuperuser: true})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	claims := &middleware.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return middleware.JWTKey(), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user_id = %d, want 42", claims.UserID)
	}
	if !claims.IsAdmin {
		t.Errorf("is_admin not set for a superuser")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 29*time.Minute || ttl > 31*time.Minute {
		t.Errorf("token TTL %s out of the expected window", ttl)
	}
}
