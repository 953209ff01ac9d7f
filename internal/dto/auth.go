package dto

// ── 인증 모듈 DTO ──

// RegisterRequest 회원가입 요청
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=4,max=20"`
	Password string `json:"password" binding:"required,min=8,max=30"`
	Email    string `json:"email"    binding:"required,email"`
	Nickname string `json:"nickname" binding:"required,min=2,max=20"`
}

// LoginRequest 로그인 요청
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest 토큰 재발급 요청
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse 토큰 발급 응답
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // AccessToken 유효 시간(초)
	User         UserResponse `json:"user"`
}
