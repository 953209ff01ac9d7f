package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Hyseok176/saint-major-recommender/config"
	"github.com/Hyseok176/saint-major-recommender/internal/service"
	"github.com/Hyseok176/saint-major-recommender/pkg/response"
)

// TranscriptHandler 성적표 모듈 HTTP 핸들러
type TranscriptHandler struct {
	cfg           *config.Config
	transcriptSvc service.TranscriptService
}

// NewTranscriptHandler TranscriptHandler 생성
func NewTranscriptHandler(cfg *config.Config, transcriptSvc service.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{cfg: cfg, transcriptSvc: transcriptSvc}
}

// Upload 성적표 업로드
// POST /api/v1/transcripts
// multipart/form-data의 "file" 필드로 세인트 성적표 저장 파일을,
// "major1"~"major3" 필드로 미리보기에서 확인한 전공 선언을 받는다.
func (h *TranscriptHandler) Upload(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 13001, "성적표 파일이 필요합니다")
		return
	}
	if fileHeader.Size > h.cfg.Upload.MaxFileSize {
		response.BadRequest(c, 13002, "파일 크기가 제한을 초과했습니다")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c)
		return
	}
	defer file.Close()

	result, err := h.transcriptSvc.ParseAndSave(c.Request.Context(), userID, file,
		c.PostForm("major1"), c.PostForm("major2"), c.PostForm("major3"))
	if err != nil {
		if errors.Is(err, service.ErrEmptyTranscript) {
			response.BadRequest(c, 13003, service.ErrEmptyTranscript.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ExtractMajors 성적표 전공 미리보기
// POST /api/v1/transcripts/majors
// 업로드와 같은 형식의 파일에서 전공 선언만 추출하고 저장하지 않는다.
func (h *TranscriptHandler) ExtractMajors(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 13001, "성적표 파일이 필요합니다")
		return
	}
	if fileHeader.Size > h.cfg.Upload.MaxFileSize {
		response.BadRequest(c, 13002, "파일 크기가 제한을 초과했습니다")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c)
		return
	}
	defer file.Close()

	result, err := h.transcriptSvc.ExtractMajors(file)
	if err != nil {
		if errors.Is(err, service.ErrMajorsNotFound) {
			response.BadRequest(c, 13005, service.ErrMajorsNotFound.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetHistory 저장된 수강 이력 조회
// GET /api/v1/transcripts/me
func (h *TranscriptHandler) GetHistory(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.transcriptSvc.GetHistory(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoTranscript):
			response.NotFound(c, 13004, service.ErrNoTranscript.Error())
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 12001, service.ErrUserNotFound.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}
