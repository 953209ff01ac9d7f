package dto

// ── 과목 모듈 DTO ──

// CourseResponse 과목 기본 정보 응답
type CourseResponse struct {
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	Semester   int    `json:"semester"` // 1=1학기, 2=2학기, 3=양학기, 4=미분류
}

// CourseWithCountResponse 수강자 수를 포함한 과목 목록 항목
type CourseWithCountResponse struct {
	CourseCode   string `json:"course_code"`
	CourseName   string `json:"course_name"`
	Semester     int    `json:"semester"`
	StudentCount int64  `json:"student_count"`
}

// CourseStatsResponse 과목별 수강 통계 응답
type CourseStatsResponse struct {
	CourseCode     string         `json:"course_code"`
	CourseName     string         `json:"course_name"`
	TotalStudents  int64          `json:"total_students"`
	SemesterCounts map[string]int `json:"semester_counts"` // "1학기".."8학기", "기타"
}

// SaveCourseRequest 과목 담기 요청
type SaveCourseRequest struct {
	CourseCode     string `json:"course_code"     binding:"required"`
	CourseName     string `json:"course_name"     binding:"required"`
	TargetSemester string `json:"target_semester" binding:"required"` // 예: "2024-1"
}

// SavedCourseResponse 담아둔 과목 응답
type SavedCourseResponse struct {
	CourseCode     string `json:"course_code"`
	CourseName     string `json:"course_name"`
	TargetSemester string `json:"target_semester"`
}
