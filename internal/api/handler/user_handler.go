package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Hyseok176/saint-major-recommender/internal/dto"
	"github.com/Hyseok176/saint-major-recommender/internal/service"
	"github.com/Hyseok176/saint-major-recommender/pkg/response"
)

// UserHandler 사용자 모듈 HTTP 핸들러
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler UserHandler 생성
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetProfile 내 정보 조회
// GET /api/v1/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.userSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12001, service.ErrUserNotFound.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// UpdateProfile 내 정보 수정
// PATCH /api/v1/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.userSvc.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12001, service.ErrUserNotFound.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// NextSemester 다음 학기 계산
// GET /api/v1/users/me/next-semester
func (h *UserHandler) NextSemester(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.userSvc.NextSemester(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12001, service.ErrUserNotFound.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
