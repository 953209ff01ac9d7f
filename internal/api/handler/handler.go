package handler

import (
	"github.com/Hyseok176/saint-major-recommender/config"
	"github.com/Hyseok176/saint-major-recommender/internal/service"
)

// Handler 모든 Handler의 집합 진입점
type Handler struct {
	Auth           *AuthHandler
	User           *UserHandler
	Transcript     *TranscriptHandler
	Course         *CourseHandler
	Recommendation *RecommendationHandler
	Export         *ExportHandler
}

// NewHandler Handler 집합 생성
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(svc.Auth),
		User:           NewUserHandler(svc.User),
		Transcript:     NewTranscriptHandler(cfg, svc.Transcript),
		Course:         NewCourseHandler(svc.Course),
		Recommendation: NewRecommendationHandler(svc.Recommendation),
		Export:         NewExportHandler(svc.Export),
	}
}
