package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hyseok176/saint-major-recommender/pkg/response"
)

// BodyLimit 요청 본문 크기 제한 미들웨어.
// maxBytes: 허용 최대 바이트 수 (예: 5<<20 = 5MB)
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, 10005, "요청 본문이 너무 큽니다")
				return
			}
		}
	}
}
