package model

// User 사용자 테이블 — users
//
// Major1~3는 성적표 상단의 전공 선언(1전공/2전공/3전공)을 그대로 보관한다.
// 미선언 전공은 빈 문자열 또는 "미선택".
// LastSemester는 가장 최근 수강 학기의 원시 토큰("2025-2")이며
// 다음 수강 계획 학기 계산에 쓰인다.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	Email        string `gorm:"type:varchar(255)"                              json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Nickname     string `gorm:"type:varchar(50)"                               json:"nickname"`
	Major1       string `gorm:"type:varchar(50)"                               json:"major1"`
	Major2       string `gorm:"type:varchar(50)"                               json:"major2"`
	Major3       string `gorm:"type:varchar(50)"                               json:"major3"`
	LastSemester string `gorm:"type:varchar(10)"                               json:"last_semester"`
	SoftDeleteModel
}

// TableName 테이블명 지정
func (User) TableName() string { return "users" }

// Majors 선언된 전공 목록 (빈 값·"미선택" 제외, 1전공부터 순서 유지)
func (u *User) Majors() []string {
	majors := make([]string, 0, 3)
	for _, m := range []string{u.Major1, u.Major2, u.Major3} {
		if m != "" && m != "미선택" {
			majors = append(majors, m)
		}
	}
	return majors
}
