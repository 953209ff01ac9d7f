package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Hyseok176/saint-major-recommender/internal/model"
)

// EnrollmentRepository 수강 이력 데이터 접근 인터페이스
type EnrollmentRepository interface {
	CreateBatch(ctx context.Context, enrollments []model.Enrollment) error
	FindByUser(ctx context.Context, userID string) ([]model.Enrollment, error)
	DeleteByUser(ctx context.Context, userID string) error
	// FindByCourseCode 해당 과목을 수강한 전체 이력을 반환한다.
	FindByCourseCode(ctx context.Context, courseCode string) ([]model.Enrollment, error)
	// FindByCourseCodeAndMajor 1전공이 일치하는 사용자의 수강 이력만 반환한다.
	FindByCourseCodeAndMajor(ctx context.Context, courseCode, major string) ([]model.Enrollment, error)
	CountDistinctUsersByCourseCode(ctx context.Context, courseCode string) (int64, error)
}

type enrollmentRepo struct {
	db *gorm.DB
}

func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) CreateBatch(ctx context.Context, enrollments []model.Enrollment) error {
	if len(enrollments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(enrollments, 100).Error
}

func (r *enrollmentRepo) FindByUser(ctx context.Context, userID string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("semester ASC, course_code ASC").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Enrollment{}).Error
}

func (r *enrollmentRepo) FindByCourseCode(ctx context.Context, courseCode string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Where("course_code = ?", courseCode).
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) FindByCourseCodeAndMajor(ctx context.Context, courseCode, major string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.user_id = enrollments.user_id").
		Where("enrollments.course_code = ? AND users.major1 = ?", courseCode, major).
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) CountDistinctUsersByCourseCode(ctx context.Context, courseCode string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("course_code = ?", courseCode).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}
