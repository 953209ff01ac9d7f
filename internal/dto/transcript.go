package dto

// ── 성적표 모듈 DTO ──

// ParsedCourse 성적표에서 추출한 한 과목
type ParsedCourse struct {
	CourseCode string  `json:"course_code"`
	CourseName string  `json:"course_name"`
	Credit     float64 `json:"credit"`
	Grade      string  `json:"grade"`
	Failed     bool    `json:"failed"`
	Retake     bool    `json:"retake"`
	English    bool    `json:"english_lecture"`
	Duplicate  bool    `json:"duplicate"`
}

// SemesterGroup 라벨이 부여된 학기 단위 과목 묶음
type SemesterGroup struct {
	Label   string         `json:"label"`   // 예: "1학기 (2022년 1학기)", "2.5학기 (2023년 여름학기)"
	Courses []ParsedCourse `json:"courses"` // 과목 코드 오름차순
}

// MajorsResponse 전공 미리보기 응답
type MajorsResponse struct {
	Major1 string   `json:"major1"`
	Major2 string   `json:"major2"`
	Major3 string   `json:"major3"`
	Majors []string `json:"majors"` // 미선택 제외
}

// TranscriptResponse 성적표 업로드/조회 응답
type TranscriptResponse struct {
	Majors       []string        `json:"majors"`
	LastSemester string          `json:"last_semester"` // 예: "2023-1"
	Semesters    []SemesterGroup `json:"semesters"`
}
