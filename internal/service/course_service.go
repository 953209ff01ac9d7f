package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Hyseok176/saint-major-recommender/internal/dto"
	"github.com/Hyseok176/saint-major-recommender/internal/model"
	"github.com/Hyseok176/saint-major-recommender/internal/repository"
)

// maxSavedPerSemester 한 학기에 담아둘 수 있는 과목 수
const maxSavedPerSemester = 8

var (
	ErrCourseNotFound = errors.New("과목을 찾을 수 없습니다")
	ErrAlreadySaved   = errors.New("이미 담아둔 과목입니다")
	ErrCartFull       = errors.New("한 학기에 담을 수 있는 과목은 8개까지입니다")
)

// CourseService 과목 조회/통계/장바구니 업무 인터페이스
type CourseService interface {
	// ListCourses 전공별 과목 목록을 수강자 수 내림차순으로 반환한다.
	// major가 비어 있으면 전공 접두어에 해당하지 않는 과목(교양)을 반환한다.
	ListCourses(ctx context.Context, major string, parity *int) ([]dto.CourseWithCountResponse, error)
	GetStats(ctx context.Context, courseCode string) (*dto.CourseStatsResponse, error)
	SaveCourse(ctx context.Context, userID string, req *dto.SaveCourseRequest) error
	ListSaved(ctx context.Context, userID string) ([]dto.SavedCourseResponse, error)
	RemoveSaved(ctx context.Context, userID, courseCode string) error
}

type courseService struct {
	repo       *repository.Repository
	curriculum *Curriculum
	logger     *zap.Logger
}

// NewCourseService CourseService 인스턴스 생성
func NewCourseService(repo *repository.Repository, curriculum *Curriculum, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, curriculum: curriculum, logger: logger}
}

func (s *courseService) ListCourses(ctx context.Context, major string, parity *int) ([]dto.CourseWithCountResponse, error) {
	targets := targetClassifications(parity)

	var courses []model.Course
	var err error
	if major != "" {
		prefix := s.curriculum.PrefixForMajor(major)
		if prefix == "" {
			// 매핑에 없는 전공은 어떤 과목과도 매칭되지 않는다
			return []dto.CourseWithCountResponse{}, nil
		}
		courses, err = s.repo.Course.FindByPrefixAndSemesterIn(ctx, prefix, targets)
	} else {
		var all []model.Course
		all, err = s.repo.Course.FindBySemesterIn(ctx, targets)
		for _, c := range all {
			if !s.curriculum.IsMajorCode(c.CourseCode) {
				courses = append(courses, c)
			}
		}
	}
	if err != nil {
		return nil, err
	}

	result := make([]dto.CourseWithCountResponse, 0, len(courses))
	for _, c := range courses {
		count, err := s.repo.Enrollment.CountDistinctUsersByCourseCode(ctx, c.CourseCode)
		if err != nil {
			return nil, err
		}
		result = append(result, dto.CourseWithCountResponse{
			CourseCode:   c.CourseCode,
			CourseName:   c.CourseName,
			Semester:     c.Semester,
			StudentCount: count,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CourseCode < result[j].CourseCode
	})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StudentCount > result[j].StudentCount
	})
	return result, nil
}

// GetStats 과목별 수강 통계. 학기 번호 1~8은 "n학기", 계절 학기 등은 "기타"로 집계한다.
func (s *courseService) GetStats(ctx context.Context, courseCode string) (*dto.CourseStatsResponse, error) {
	course, err := s.repo.Course.GetByCode(ctx, courseCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	enrollments, err := s.repo.Enrollment.FindByCourseCode(ctx, courseCode)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Enrollment.CountDistinctUsersByCourseCode(ctx, courseCode)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for i := 1; i <= 8; i++ {
		counts[fmt.Sprintf("%d학기", i)] = 0
	}
	counts["기타"] = 0
	for _, e := range enrollments {
		n := int(e.Semester)
		if float64(n) == e.Semester && n >= 1 && n <= 8 {
			counts[fmt.Sprintf("%d학기", n)]++
		} else {
			counts["기타"]++
		}
	}

	return &dto.CourseStatsResponse{
		CourseCode:     course.CourseCode,
		CourseName:     course.CourseName,
		TotalStudents:  total,
		SemesterCounts: counts,
	}, nil
}

func (s *courseService) SaveCourse(ctx context.Context, userID string, req *dto.SaveCourseRequest) error {
	exists, err := s.repo.SavedCourse.ExistsByUserAndCourseCode(ctx, userID, req.CourseCode)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadySaved
	}

	count, err := s.repo.SavedCourse.CountByUserAndTargetSemester(ctx, userID, req.TargetSemester)
	if err != nil {
		return err
	}
	if count >= maxSavedPerSemester {
		return ErrCartFull
	}

	saved := &model.SavedCourse{
		UserID:         userID,
		CourseCode:     req.CourseCode,
		CourseName:     req.CourseName,
		TargetSemester: req.TargetSemester,
	}
	if err := s.repo.SavedCourse.Create(ctx, saved); err != nil {
		s.logger.Error("과목 담기 실패", zap.Error(err), zap.String("course_code", req.CourseCode))
		return err
	}
	return nil
}

func (s *courseService) ListSaved(ctx context.Context, userID string) ([]dto.SavedCourseResponse, error) {
	saved, err := s.repo.SavedCourse.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SavedCourseResponse, 0, len(saved))
	for _, sc := range saved {
		resp = append(resp, dto.SavedCourseResponse{
			CourseCode:     sc.CourseCode,
			CourseName:     sc.CourseName,
			TargetSemester: sc.TargetSemester,
		})
	}
	return resp, nil
}

func (s *courseService) RemoveSaved(ctx context.Context, userID, courseCode string) error {
	exists, err := s.repo.SavedCourse.ExistsByUserAndCourseCode(ctx, userID, courseCode)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCourseNotFound
	}
	return s.repo.SavedCourse.DeleteByUserAndCourseCode(ctx, userID, courseCode)
}
