package model

// 과목 개설학기 분류 (Course.Semester)
const (
	TermSpringOnly   = 1 // 1학기 개설
	TermFallOnly     = 2 // 2학기 개설
	TermBoth         = 3 // 1·2학기 공통 개설
	TermUnclassified = 4 // 미분류 (성적표에서 새로 발견된 과목의 기본값)
)

// Course 과목 카탈로그 테이블 — courses
// 과목 코드를 PK로 하며, 성적표 파싱 중 처음 보는 코드는
// TermUnclassified로 등록된다 (이름은 최초 등장 시점의 것을 유지).
type Course struct {
	CourseCode string `gorm:"type:varchar(10);primaryKey"  json:"course_code"`
	CourseName string `gorm:"type:varchar(100);not null"   json:"course_name"`
	Semester   int    `gorm:"type:smallint;not null;default:4" json:"semester"`
	BaseModel
}

// TableName 테이블명 지정
func (Course) TableName() string { return "courses" }
