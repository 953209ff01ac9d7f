package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/Hyseok176/saint-major-recommender/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // UserID와 Username 둘 다 키로 사용
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "uid-" + user.Username
	}
	m.users[user.UserID] = user
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	m.users[user.Username] = user
	return nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[string]*model.Course
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[string]*model.Course)}
}

func (m *mockCourseRepo) GetByCode(_ context.Context, code string) (*model.Course, error) {
	if c, ok := m.courses[code]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) FindByCodes(_ context.Context, codes []string) ([]model.Course, error) {
	var result []model.Course
	for _, code := range codes {
		if c, ok := m.courses[code]; ok {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockCourseRepo) FindBySemesterIn(_ context.Context, semesters []int) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		for _, s := range semesters {
			if c.Semester == s {
				result = append(result, *c)
				break
			}
		}
	}
	sortCoursesByCode(result)
	return result, nil
}

func (m *mockCourseRepo) FindByPrefixAndSemesterIn(_ context.Context, prefix string, semesters []int) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		if !strings.HasPrefix(c.CourseCode, prefix) {
			continue
		}
		for _, s := range semesters {
			if c.Semester == s {
				result = append(result, *c)
				break
			}
		}
	}
	sortCoursesByCode(result)
	return result, nil
}

func (m *mockCourseRepo) UpsertIfAbsent(_ context.Context, courses []model.Course) error {
	for i := range courses {
		if _, ok := m.courses[courses[i].CourseCode]; !ok {
			c := courses[i]
			m.courses[c.CourseCode] = &c
		}
	}
	return nil
}

func sortCoursesByCode(courses []model.Course) {
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].CourseCode < courses[j].CourseCode
	})
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	enrollments []model.Enrollment
	users       *mockUserRepo // FindByCourseCodeAndMajor에서 1전공 조회용
}

func newMockEnrollmentRepo(users *mockUserRepo) *mockEnrollmentRepo {
	return &mockEnrollmentRepo{users: users}
}

func (m *mockEnrollmentRepo) CreateBatch(_ context.Context, enrollments []model.Enrollment) error {
	m.enrollments = append(m.enrollments, enrollments...)
	return nil
}

func (m *mockEnrollmentRepo) FindByUser(_ context.Context, userID string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Semester != result[j].Semester {
			return result[i].Semester < result[j].Semester
		}
		return result[i].CourseCode < result[j].CourseCode
	})
	return result, nil
}

func (m *mockEnrollmentRepo) DeleteByUser(_ context.Context, userID string) error {
	var kept []model.Enrollment
	for _, e := range m.enrollments {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	m.enrollments = kept
	return nil
}

func (m *mockEnrollmentRepo) FindByCourseCode(_ context.Context, courseCode string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.CourseCode == courseCode {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockEnrollmentRepo) FindByCourseCodeAndMajor(_ context.Context, courseCode, major string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.CourseCode != courseCode {
			continue
		}
		u, ok := m.users.users[e.UserID]
		if ok && u.Major1 == major {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockEnrollmentRepo) CountDistinctUsersByCourseCode(_ context.Context, courseCode string) (int64, error) {
	seen := make(map[string]bool)
	for _, e := range m.enrollments {
		if e.CourseCode == courseCode {
			seen[e.UserID] = true
		}
	}
	return int64(len(seen)), nil
}

// ── Mock SavedCourseRepository ──

type mockSavedCourseRepo struct {
	saved []model.SavedCourse
}

func newMockSavedCourseRepo() *mockSavedCourseRepo {
	return &mockSavedCourseRepo{}
}

func (m *mockSavedCourseRepo) Create(_ context.Context, sc *model.SavedCourse) error {
	m.saved = append(m.saved, *sc)
	return nil
}

func (m *mockSavedCourseRepo) FindByUser(_ context.Context, userID string) ([]model.SavedCourse, error) {
	var result []model.SavedCourse
	for _, sc := range m.saved {
		if sc.UserID == userID {
			result = append(result, sc)
		}
	}
	return result, nil
}

func (m *mockSavedCourseRepo) CountByUserAndTargetSemester(_ context.Context, userID, targetSemester string) (int64, error) {
	var count int64
	for _, sc := range m.saved {
		if sc.UserID == userID && sc.TargetSemester == targetSemester {
			count++
		}
	}
	return count, nil
}

func (m *mockSavedCourseRepo) ExistsByUserAndCourseCode(_ context.Context, userID, courseCode string) (bool, error) {
	for _, sc := range m.saved {
		if sc.UserID == userID && sc.CourseCode == courseCode {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSavedCourseRepo) DeleteByUserAndCourseCode(_ context.Context, userID, courseCode string) error {
	var kept []model.SavedCourse
	for _, sc := range m.saved {
		if sc.UserID != userID || sc.CourseCode != courseCode {
			kept = append(kept, sc)
		}
	}
	m.saved = kept
	return nil
}
