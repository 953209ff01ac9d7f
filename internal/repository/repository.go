package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 모든 Repository의 집약 진입점
type Repository struct {
	db *gorm.DB

	User        UserRepository
	Course      CourseRepository
	Enrollment  EnrollmentRepository
	SavedCourse SavedCourseRepository
}

// NewRepository Repository 집약 생성
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:          db,
		User:        NewUserRepo(db),
		Course:      NewCourseRepo(db),
		Enrollment:  NewEnrollmentRepo(db),
		SavedCourse: NewSavedCourseRepo(db),
	}
}

// BeginTx 트랜잭션 시작.
// 반환된 *gorm.DB를 WithTx에 넘겨 트랜잭션 스코프 Repository를 얻는다.
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx 트랜잭션 연결을 사용하는 Repository 집약 생성
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}
