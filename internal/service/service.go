package service

import (
	"go.uber.org/zap"

	"github.com/Hyseok176/saint-major-recommender/config"
	"github.com/Hyseok176/saint-major-recommender/internal/repository"
	"github.com/Hyseok176/saint-major-recommender/pkg/jwt"
	"github.com/Hyseok176/saint-major-recommender/pkg/redis"
)

// Service 모든 Service의 집합 진입점
type Service struct {
	Auth           AuthService
	User           UserService
	Transcript     TranscriptService
	Course         CourseService
	Recommendation RecommendationService
	Export         ExportService
}

// NewService Service 집합 생성. rdb는 nil일 수 있다.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	curriculum := DefaultCurriculum()
	parser := NewTranscriptParser(logger)
	transcript := NewTranscriptService(repo, parser, logger)

	return &Service{
		Auth:           NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:           NewUserService(repo, logger),
		Transcript:     transcript,
		Course:         NewCourseService(repo, curriculum, logger),
		Recommendation: NewRecommendationService(repo, curriculum, logger),
		Export:         NewExportService(transcript, logger),
	}
}
