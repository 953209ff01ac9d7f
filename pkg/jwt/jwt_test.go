package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/Hyseok176/saint-major-recommender/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("user-1", "student1")
	if err != nil {
		t.Fatalf("GenerateAccessToken 실패: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 실패: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("기대 UserID=user-1, 실제=%s", claims.UserID)
	}
	if claims.Username != "student1" {
		t.Errorf("기대 Username=student1, 실제=%s", claims.Username)
	}
	if claims.TokenType != "access" {
		t.Errorf("기대 TokenType=access, 실제=%s", claims.TokenType)
	}
	if claims.Issuer != "saintplus" {
		t.Errorf("기대 Issuer=saintplus, 실제=%s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI 는 비어 있으면 안 됨")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("user-1", "student1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken 실패: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 실패: %v", err)
	}

	if claims.TokenType != "refresh" {
		t.Errorf("기대 TokenType=refresh, 실제=%s", claims.TokenType)
	}

	// 만료 시간이 약 7일인지 확인
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 167*time.Hour || ttl > 169*time.Hour {
		t.Errorf("RefreshToken TTL 기대 약 168h, 실제=%v", ttl)
	}
}

func TestParseToken_Invalid(t *testing.T) {
	m := newTestManager()

	if _, err := m.ParseToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("기대 ErrTokenInvalid, 실제: %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager(&config.AuthConfig{
		JWTSecret:       "another-secret-key-0123456789",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})

	token, err := m.GenerateAccessToken("user-1", "student1")
	if err != nil {
		t.Fatalf("GenerateAccessToken 실패: %v", err)
	}

	if _, err := other.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("다른 비밀키로 파싱 시 ErrTokenInvalid 기대, 실제: %v", err)
	}
}
