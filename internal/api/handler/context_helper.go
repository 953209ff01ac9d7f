package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Hyseok176/saint-major-recommender/pkg/response"
)

// MustGetUserID Gin 컨텍스트에서 user_id를 안전하게 꺼낸다.
// 인증 미들웨어가 user_id를 주입하지 않았다면 401 응답을 쓰고 false를 반환한다.
// 호출 측은 ok=false이면 바로 return 해야 한다.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않은 요청입니다")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "인증되지 않은 요청입니다")
		return "", false
	}
	return s, true
}
