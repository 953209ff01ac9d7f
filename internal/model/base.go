package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel 공통 감사 필드 (모든 엔티티에 임베딩)
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// SoftDeleteModel 소프트 삭제를 지원하는 감사 필드
type SoftDeleteModel struct {
	BaseModel
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// Remarks 성적표 비고란에서 추출한 플래그 집합.
// Enrollment에 임베딩되어 수강 기록 한 건의 부가 상태를 나타낸다.
//   - Failed: 성적 F / FA / U (미이수 처리)
//   - Retake: 비고 코드 R (재이수로 성적 취득 후 기존 성적 대체)
//   - EnglishLecture: 비고 코드 E (영어 강의)
//   - Duplicate: 비고 코드 M (중복 인정 과목)
type Remarks struct {
	Failed         bool `gorm:"not null;default:false" json:"failed"`
	Retake         bool `gorm:"not null;default:false" json:"retake"`
	EnglishLecture bool `gorm:"not null;default:false" json:"english_lecture"`
	Duplicate      bool `gorm:"not null;default:false" json:"duplicate"`
}
