package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Hyseok176/saint-major-recommender/internal/model"
)

// SavedCourseRepository 담아둔 과목(장바구니) 데이터 접근 인터페이스
type SavedCourseRepository interface {
	Create(ctx context.Context, saved *model.SavedCourse) error
	FindByUser(ctx context.Context, userID string) ([]model.SavedCourse, error)
	CountByUserAndTargetSemester(ctx context.Context, userID, targetSemester string) (int64, error)
	ExistsByUserAndCourseCode(ctx context.Context, userID, courseCode string) (bool, error)
	DeleteByUserAndCourseCode(ctx context.Context, userID, courseCode string) error
}

type savedCourseRepo struct {
	db *gorm.DB
}

func NewSavedCourseRepo(db *gorm.DB) SavedCourseRepository {
	return &savedCourseRepo{db: db}
}

func (r *savedCourseRepo) Create(ctx context.Context, saved *model.SavedCourse) error {
	return r.db.WithContext(ctx).Create(saved).Error
}

func (r *savedCourseRepo) FindByUser(ctx context.Context, userID string) ([]model.SavedCourse, error) {
	var saved []model.SavedCourse
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&saved).Error
	return saved, err
}

func (r *savedCourseRepo) CountByUserAndTargetSemester(ctx context.Context, userID, targetSemester string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SavedCourse{}).
		Where("user_id = ? AND target_semester = ?", userID, targetSemester).
		Count(&count).Error
	return count, err
}

func (r *savedCourseRepo) ExistsByUserAndCourseCode(ctx context.Context, userID, courseCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SavedCourse{}).
		Where("user_id = ? AND course_code = ?", userID, courseCode).
		Count(&count).Error
	return count > 0, err
}

func (r *savedCourseRepo) DeleteByUserAndCourseCode(ctx context.Context, userID, courseCode string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND course_code = ?", userID, courseCode).
		Delete(&model.SavedCourse{}).Error
}
