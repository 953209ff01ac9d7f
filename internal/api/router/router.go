package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hyseok176/saint-major-recommender/config"
	"github.com/Hyseok176/saint-major-recommender/internal/api/handler"
	"github.com/Hyseok176/saint-major-recommender/internal/api/middleware"
	"github.com/Hyseok176/saint-major-recommender/pkg/jwt"
	"github.com/Hyseok176/saint-major-recommender/pkg/redis"
)

// Setup Gin 라우터 엔진 초기화
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Upload.MaxFileSize))

	// ── 헬스체크 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 인증 모듈 (비로그인)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 로그인 필요 라우트
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			// 사용자 모듈
			users := authorized.Group("/users")
			{
				users.GET("/me", h.User.GetProfile)
				users.PATCH("/me", h.User.UpdateProfile)
				users.GET("/me/next-semester", h.User.NextSemester)
			}

			// 성적표 모듈
			transcripts := authorized.Group("/transcripts")
			{
				transcripts.POST("", h.Transcript.Upload)
				transcripts.POST("/majors", h.Transcript.ExtractMajors)
				transcripts.GET("/me", h.Transcript.GetHistory)
				transcripts.GET("/me/export", h.Export.ExportHistory)
			}

			// 과목 모듈
			courses := authorized.Group("/courses")
			{
				courses.GET("", h.Course.ListCourses)
				courses.GET("/:code/stats", h.Course.GetStats)
			}

			// 장바구니 모듈
			savedCourses := authorized.Group("/saved-courses")
			{
				savedCourses.GET("", h.Course.ListSaved)
				savedCourses.POST("", h.Course.SaveCourse)
				savedCourses.DELETE("/:code", h.Course.RemoveSaved)
			}

			// 추천 모듈
			recommendations := authorized.Group("/recommendations")
			{
				recommendations.POST("/major", h.Recommendation.RecommendMajor)
				recommendations.POST("/general", h.Recommendation.RecommendGE)
			}
		}
	}

	return r
}
