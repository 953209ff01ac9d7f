package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Hyseok176/saint-major-recommender/internal/dto"
	"github.com/Hyseok176/saint-major-recommender/internal/service"
	"github.com/Hyseok176/saint-major-recommender/pkg/response"
)

// RecommendationHandler 추천 모듈 HTTP 핸들러
type RecommendationHandler struct {
	recSvc service.RecommendationService
}

// NewRecommendationHandler RecommendationHandler 생성
func NewRecommendationHandler(recSvc service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recSvc: recSvc}
}

// RecommendMajor 전공 과목 추천
// POST /api/v1/recommendations/major
func (h *RecommendationHandler) RecommendMajor(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.recSvc.RecommendMajor(c.Request.Context(), userID, &req)
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

// RecommendGE 교양 트랙 추천
// POST /api/v1/recommendations/general
func (h *RecommendationHandler) RecommendGE(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.recSvc.RecommendGE(c.Request.Context(), userID, &req)
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
