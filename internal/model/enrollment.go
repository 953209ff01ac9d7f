package model

// Enrollment 수강 이력 테이블 — enrollments
//
// Semester는 표시용 학기 번호의 실수형(1.0, 1.5, 2.0 …)이다.
// 정규학기는 정수, 계절학기는 직전 정규학기 + 0.5.
// 성적표 업로드 시 해당 사용자의 전체 이력이 삭제 후 재삽입된다
// (부분 갱신 없음 — 업로드 한 번이 이력 전체의 권위 있는 교체).
type Enrollment struct {
	EnrollmentID int64   `gorm:"primaryKey;autoIncrement"          json:"enrollment_id"`
	UserID       string  `gorm:"type:uuid;not null;index"          json:"user_id"`
	CourseCode   string  `gorm:"type:varchar(10);not null;index"   json:"course_code"`
	Semester     float64 `gorm:"type:numeric(4,1);not null"        json:"semester"`
	Credit       float64 `gorm:"type:numeric(3,1);not null;default:0" json:"credit"`
	Grade        string  `gorm:"type:varchar(4);not null;default:''"  json:"grade"`
	Remarks      Remarks `gorm:"embedded;embeddedPrefix:remark_"   json:"remarks"`
	BaseModel

	// 관계
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 테이블명 지정
func (Enrollment) TableName() string { return "enrollments" }
