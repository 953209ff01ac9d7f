package dto

// ── 추천 모듈 DTO ──

// RecommendRequest 전공 과목 추천 요청
type RecommendRequest struct {
	// Parity 다음 학기 구분(1=1학기, 2=2학기). 없으면 양학기/미분류만 대상.
	Parity *int `json:"parity" binding:"omitempty,oneof=1 2"`
	// Dismissed 이번 추천에서 제외할 과목 코드 목록
	Dismissed []string `json:"dismissed"`
}

// RecommendedCourse 추천 결과 한 건
type RecommendedCourse struct {
	CourseCode string  `json:"course_code"`
	CourseName string  `json:"course_name"`
	Score      float64 `json:"score"`
	PeerCount  int     `json:"peer_count"`
	// AverageProximity 동료 1명당 평균 근접도(score/peerCount). 동료가 없으면 0.
	AverageProximity float64 `json:"average_proximity"`
	// TrackName 교양 트랙 추천일 때 해당 트랙의 표시 이름
	TrackName string `json:"track_name,omitempty"`
	// MajorName 전공 추천일 때 후보가 속한 선언 전공명
	MajorName string `json:"major_name,omitempty"`
}

// RecommendResponse 전공 과목 추천 응답
type RecommendResponse struct {
	CurrentSemester float64             `json:"current_semester"`
	Courses         []RecommendedCourse `json:"courses"`
}

// GERecommendResponse 교양 트랙 추천 응답
type GERecommendResponse struct {
	// UncompletedTracks 이수하지 못한 트랙 표시 문자열. 예: "- 1트랙 인간과 신앙"
	UncompletedTracks []string            `json:"uncompleted_tracks"`
	Courses           []RecommendedCourse `json:"courses"`
}
