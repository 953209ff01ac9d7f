package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hyseok176/saint-major-recommender/internal/dto"
	"github.com/Hyseok176/saint-major-recommender/internal/service"
	"github.com/Hyseok176/saint-major-recommender/pkg/jwt"
	"github.com/Hyseok176/saint-major-recommender/pkg/response"
)

// AuthHandler 인증 모듈 HTTP 핸들러
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler AuthHandler 생성
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register 회원가입
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.Conflict(c, 11002, service.ErrUsernameTaken.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Login 로그인
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, service.ErrInvalidCredentials.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout 로그아웃
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않은 요청입니다")
		return
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "인증되지 않은 요청입니다")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// RefreshToken 토큰 재발급
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) || errors.Is(err, service.ErrUserNotFound) {
			response.Unauthorized(c, 11003, service.ErrInvalidRefresh.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
