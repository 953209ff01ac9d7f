package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Hyseok176/saint-major-recommender/internal/dto"
	"github.com/Hyseok176/saint-major-recommender/internal/service"
	"github.com/Hyseok176/saint-major-recommender/pkg/response"
)

// CourseHandler 과목 모듈 HTTP 핸들러
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler CourseHandler 생성
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// ListCourses 전공별 과목 목록 (수강자 수 내림차순)
// GET /api/v1/courses?major=수학&parity=1
func (h *CourseHandler) ListCourses(c *gin.Context) {
	major := c.Query("major")

	var parity *int
	switch c.Query("parity") {
	case "1":
		one := 1
		parity = &one
	case "2":
		two := 2
		parity = &two
	case "":
	default:
		response.BadRequest(c, 14005, "parity는 1 또는 2여야 합니다")
		return
	}

	result, err := h.courseSvc.ListCourses(c.Request.Context(), major, parity)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetStats 과목별 수강 통계
// GET /api/v1/courses/:code/stats
func (h *CourseHandler) GetStats(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, 14001, "과목 코드가 필요합니다")
		return
	}

	result, err := h.courseSvc.GetStats(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.NotFound(c, 14002, service.ErrCourseNotFound.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// SaveCourse 과목 담기
// POST /api/v1/saved-courses
func (h *CourseHandler) SaveCourse(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SaveCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.courseSvc.SaveCourse(c.Request.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadySaved):
			response.Conflict(c, 14003, service.ErrAlreadySaved.Error())
		case errors.Is(err, service.ErrCartFull):
			response.Conflict(c, 14004, service.ErrCartFull.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, nil)
}

// ListSaved 담아둔 과목 목록
// GET /api/v1/saved-courses
func (h *CourseHandler) ListSaved(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.courseSvc.ListSaved(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// RemoveSaved 담아둔 과목 삭제
// DELETE /api/v1/saved-courses/:code
func (h *CourseHandler) RemoveSaved(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	code := c.Param("code")
	if err := h.courseSvc.RemoveSaved(c.Request.Context(), userID, code); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.NotFound(c, 14002, service.ErrCourseNotFound.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
