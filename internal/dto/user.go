package dto

// ── 사용자 모듈 DTO ──

// UserResponse 사용자 정보 응답
type UserResponse struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Nickname     string   `json:"nickname"`
	Major1       string   `json:"major1"`
	Major2       string   `json:"major2"`
	Major3       string   `json:"major3"`
	LastSemester string   `json:"last_semester"`
	Majors       []string `json:"majors"` // 미선택 제외, 선언된 전공만
}

// UpdateProfileRequest 프로필 수정 요청
type UpdateProfileRequest struct {
	Nickname string `json:"nickname" binding:"omitempty,min=2,max=20"`
	Email    string `json:"email"    binding:"omitempty,email"`
}

// NextSemesterResponse 다음 학기 추천 옵션 응답
type NextSemesterResponse struct {
	Year    int    `json:"year"`
	Parity  int    `json:"parity"` // 1=1학기, 2=2학기
	Display string `json:"display"`
}
