package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Hyseok176/saint-major-recommender/config"
	"github.com/Hyseok176/saint-major-recommender/internal/dto"
	"github.com/Hyseok176/saint-major-recommender/internal/model"
	"github.com/Hyseok176/saint-major-recommender/internal/repository"
	"github.com/Hyseok176/saint-major-recommender/pkg/jwt"
	"github.com/Hyseok176/saint-major-recommender/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("아이디 또는 비밀번호가 올바르지 않습니다")
	ErrUserNotFound       = errors.New("사용자를 찾을 수 없습니다")
	ErrUsernameTaken      = errors.New("이미 사용 중인 아이디입니다")
	ErrInvalidRefresh     = errors.New("유효하지 않은 갱신 토큰입니다")
)

// AuthService 인증 업무 인터페이스
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Logout 토큰을 남은 유효 기간 동안 블랙리스트에 올린다.
	Logout(ctx context.Context, claims *jwt.Claims) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService AuthService 인스턴스 생성. rdb는 nil일 수 있다(블랙리스트 비활성).
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	// 1. 아이디 중복 확인
	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("사용자 조회 실패", zap.Error(err))
		return nil, err
	}

	// 2. 비밀번호 해시
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Nickname:     req.Nickname,
		Major1:       "미선택",
		Major2:       "미선택",
		Major3:       "미선택",
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("사용자 생성 실패", zap.Error(err))
		return nil, err
	}

	s.logger.Info("회원가입 완료", zap.String("username", user.Username))
	return s.issueTokens(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("사용자 조회 실패", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("토큰 블랙리스트 등록 실패", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidRefresh
	}
	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err == nil && blacklisted {
			return nil, ErrInvalidRefresh
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 갱신 토큰은 1회용: 새 토큰 쌍 발급 후 기존 토큰은 블랙리스트 처리
	if s.rdb != nil {
		_ = s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
	}
	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *model.User) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Username)
	if err != nil {
		s.logger.Error("AccessToken 발급 실패", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Username)
	if err != nil {
		s.logger.Error("RefreshToken 발급 실패", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         toUserResponse(user),
	}, nil
}
