package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Hyseok176/saint-major-recommender/internal/model"
)

// CourseRepository 과목 마스터 데이터 접근 인터페이스
type CourseRepository interface {
	GetByCode(ctx context.Context, code string) (*model.Course, error)
	FindByCodes(ctx context.Context, codes []string) ([]model.Course, error)
	FindBySemesterIn(ctx context.Context, semesters []int) ([]model.Course, error)
	FindByPrefixAndSemesterIn(ctx context.Context, prefix string, semesters []int) ([]model.Course, error)
	// UpsertIfAbsent 없는 과목만 삽입한다. 기존 과목의 이름과 분류는 유지된다.
	UpsertIfAbsent(ctx context.Context, courses []model.Course) error
}

type courseRepo struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) GetByCode(ctx context.Context, code string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Where("course_code = ?", code).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) FindByCodes(ctx context.Context, codes []string) ([]model.Course, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Where("course_code IN ?", codes).
		Find(&courses).Error
	return courses, err
}

func (r *courseRepo) FindBySemesterIn(ctx context.Context, semesters []int) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Where("semester IN ?", semesters).
		Find(&courses).Error
	return courses, err
}

func (r *courseRepo) FindByPrefixAndSemesterIn(ctx context.Context, prefix string, semesters []int) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Where("course_code LIKE ? AND semester IN ?", prefix+"%", semesters).
		Order("course_code ASC").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepo) UpsertIfAbsent(ctx context.Context, courses []model.Course) error {
	if len(courses) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "course_code"}},
			DoNothing: true,
		}).
		Create(&courses).Error
}
