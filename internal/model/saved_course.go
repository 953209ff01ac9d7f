package model

// SavedCourse 장바구니(담은 과목) 테이블 — saved_courses
// TargetSemester는 수강 계획 학기의 원시 토큰("2026-1").
type SavedCourse struct {
	SavedCourseID  int64  `gorm:"primaryKey;autoIncrement"        json:"saved_course_id"`
	UserID         string `gorm:"type:uuid;not null;index"        json:"user_id"`
	CourseCode     string `gorm:"type:varchar(10);not null"       json:"course_code"`
	CourseName     string `gorm:"type:varchar(100);not null"      json:"course_name"`
	TargetSemester string `gorm:"type:varchar(10)"                json:"target_semester"`
	BaseModel

	// 관계
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 테이블명 지정
func (SavedCourse) TableName() string { return "saved_courses" }
