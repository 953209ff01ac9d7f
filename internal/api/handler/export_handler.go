package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Hyseok176/saint-major-recommender/internal/service"
	"github.com/Hyseok176/saint-major-recommender/pkg/response"
)

// ExportHandler 내보내기 모듈 HTTP 핸들러
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler ExportHandler 생성
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportHistory 수강 이력 Excel 다운로드
// GET /api/v1/transcripts/me/export
func (h *ExportHandler) ExportHistory(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportHistory(c.Request.Context(), userID)
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

	// 한글 파일명은 RFC 5987 filename* 형식으로 전달한다
	encoded := url.PathEscape(filename)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename*=UTF-8''%s`, encoded))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
