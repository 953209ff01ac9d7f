package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Hyseok176/saint-major-recommender/internal/dto"
	"github.com/Hyseok176/saint-major-recommender/internal/model"
	"github.com/Hyseok176/saint-major-recommender/internal/repository"
)

// maxRecommendations 한 번에 내려보내는 추천 과목 수
const maxRecommendations = 5

// unclassifiedScore 개설학기 미분류 과목의 고정 점수.
// 동료 데이터 기반 점수와 구분되도록 0보다 크되 충분히 작게 둔다.
const unclassifiedScore = 0.01

// RecommendationService 과목 추천 업무 인터페이스
type RecommendationService interface {
	// RecommendMajor 선언한 전공의 과목 중 다음 학기에 들을 만한 과목을 추천한다.
	RecommendMajor(ctx context.Context, userID string, req *dto.RecommendRequest) (*dto.RecommendResponse, error)
	// RecommendGE 교양 트랙 이수 현황을 기준으로 교양 과목을 추천한다.
	RecommendGE(ctx context.Context, userID string, req *dto.RecommendRequest) (*dto.GERecommendResponse, error)
}

type recommendationService struct {
	repo       *repository.Repository
	curriculum *Curriculum
	logger     *zap.Logger
}

// NewRecommendationService RecommendationService 인스턴스 생성
func NewRecommendationService(repo *repository.Repository, curriculum *Curriculum, logger *zap.Logger) RecommendationService {
	return &recommendationService{repo: repo, curriculum: curriculum, logger: logger}
}

func (s *recommendationService) RecommendMajor(ctx context.Context, userID string, req *dto.RecommendRequest) (*dto.RecommendResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	enrollments, err := s.repo.Enrollment.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	current := currentSemesterOf(enrollments)
	excluded, err := s.excludedCodes(ctx, userID, enrollments, req.Dismissed)
	if err != nil {
		return nil, err
	}

	// 선언한 전공의 접두어별로 후보를 모은다. 매핑에 없는 전공은 건너뛴다.
	targets := targetClassifications(req.Parity)
	var candidates []model.Course
	majorByPrefix := make(map[string]string)
	for _, major := range user.Majors() {
		prefix := s.curriculum.PrefixForMajor(major)
		if prefix == "" {
			continue
		}
		majorByPrefix[prefix] = major
		courses, err := s.repo.Course.FindByPrefixAndSemesterIn(ctx, prefix, targets)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, courses...)
	}

	scored, err := s.scoreByProximity(ctx, candidates, excluded, current, userID, "", majorByPrefix)
	if err != nil {
		return nil, err
	}

	return &dto.RecommendResponse{
		CurrentSemester: current,
		Courses:         topN(scored, maxRecommendations),
	}, nil
}

func (s *recommendationService) RecommendGE(ctx context.Context, userID string, req *dto.RecommendRequest) (*dto.GERecommendResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	enrollments, err := s.repo.Enrollment.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(enrollments))
	for _, e := range enrollments {
		taken[e.CourseCode] = true
	}
	excluded, err := s.excludedCodes(ctx, userID, enrollments, req.Dismissed)
	if err != nil {
		return nil, err
	}

	// 트랙별 이수 여부: 트랙 과목을 하나라도 들었으면 이수로 본다
	var uncompleted []int
	for track := 1; track <= s.curriculum.TrackCount(); track++ {
		done := false
		for _, code := range s.curriculum.TrackCourses(track) {
			if taken[code] {
				done = true
				break
			}
		}
		if !done {
			uncompleted = append(uncompleted, track)
		}
	}

	if len(uncompleted) > 0 {
		return s.recommendUncompletedTracks(ctx, uncompleted, excluded)
	}

	// 전 트랙 이수자에게는 전공 외 과목을 동료 근접도 순으로 추천한다.
	// 동료 집합은 1전공이 선언된 경우 같은 전공 사용자로 좁힌다.
	current := currentSemesterOf(enrollments)
	targets := targetClassifications(req.Parity)
	all, err := s.repo.Course.FindBySemesterIn(ctx, targets)
	if err != nil {
		return nil, err
	}
	var candidates []model.Course
	for _, c := range all {
		if s.curriculum.IsMajorCode(c.CourseCode) {
			continue
		}
		candidates = append(candidates, c)
	}

	peerMajor := ""
	if s.curriculum.PrefixForMajor(user.Major1) != "" {
		peerMajor = user.Major1
	}
	scored, err := s.scoreByProximity(ctx, candidates, excluded, current, userID, peerMajor, nil)
	if err != nil {
		return nil, err
	}

	return &dto.GERecommendResponse{
		UncompletedTracks: nil,
		Courses:           topN(scored, maxRecommendations),
	}, nil
}

// recommendUncompletedTracks 미이수 트랙의 과목을 동료 수강자 수 순으로 추천한다
func (s *recommendationService) recommendUncompletedTracks(ctx context.Context, tracks []int, excluded map[string]bool) (*dto.GERecommendResponse, error) {
	display := make([]string, 0, len(tracks))
	var candidates []dto.RecommendedCourse
	for _, track := range tracks {
		trackName := s.curriculum.TrackName(track)
		display = append(display, fmt.Sprintf("- %d트랙 %s", track, trackName))
		for _, code := range s.curriculum.TrackCourses(track) {
			if excluded[code] {
				continue
			}
			course, err := s.repo.Course.GetByCode(ctx, code)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// 아직 아무도 수강하지 않아 카탈로그에 없는 트랙 과목
					candidates = append(candidates, dto.RecommendedCourse{CourseCode: code, TrackName: trackName})
					continue
				}
				return nil, err
			}
			count, err := s.repo.Enrollment.CountDistinctUsersByCourseCode(ctx, code)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, dto.RecommendedCourse{
				CourseCode: course.CourseCode,
				CourseName: course.CourseName,
				PeerCount:  int(count),
				TrackName:  trackName,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].PeerCount > candidates[j].PeerCount
	})
	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}

	return &dto.GERecommendResponse{
		UncompletedTracks: display,
		Courses:           candidates,
	}, nil
}

// scoreByProximity 후보 과목을 동료 수강 학기와의 근접도로 채점한다.
// peerMajor가 비어 있지 않으면 동료를 해당 1전공 사용자로 제한한다.
// 동점은 카탈로그 순서를 그대로 유지한다(안정 정렬, 보조 키 없음).
func (s *recommendationService) scoreByProximity(ctx context.Context, candidates []model.Course, excluded map[string]bool, current float64, userID, peerMajor string, majorByPrefix map[string]string) ([]dto.RecommendedCourse, error) {
	seen := make(map[string]bool, len(candidates))
	var scored []dto.RecommendedCourse
	for _, c := range candidates {
		if excluded[c.CourseCode] || seen[c.CourseCode] {
			continue
		}
		seen[c.CourseCode] = true
		majorName := majorNameFor(c.CourseCode, majorByPrefix)

		if c.Semester == model.TermUnclassified {
			scored = append(scored, dto.RecommendedCourse{
				CourseCode: c.CourseCode,
				CourseName: c.CourseName,
				Score:      unclassifiedScore,
				MajorName:  majorName,
			})
			continue
		}

		var peers []model.Enrollment
		var err error
		if peerMajor != "" {
			peers, err = s.repo.Enrollment.FindByCourseCodeAndMajor(ctx, c.CourseCode, peerMajor)
		} else {
			peers, err = s.repo.Enrollment.FindByCourseCode(ctx, c.CourseCode)
		}
		if err != nil {
			return nil, err
		}

		score := 0.0
		peerCount := 0
		for _, p := range peers {
			if p.UserID == userID {
				continue
			}
			score += 1.0 / (1.0 + math.Abs(current-p.Semester))
			peerCount++
		}
		average := 0.0
		if peerCount > 0 {
			average = score / float64(peerCount)
		}
		scored = append(scored, dto.RecommendedCourse{
			CourseCode:       c.CourseCode,
			CourseName:       c.CourseName,
			Score:            score,
			PeerCount:        peerCount,
			AverageProximity: average,
			MajorName:        majorName,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}

// majorNameFor 과목 코드의 접두어가 속한 선언 전공명. 매칭이 없으면 빈 문자열.
func majorNameFor(courseCode string, majorByPrefix map[string]string) string {
	for prefix, major := range majorByPrefix {
		if strings.HasPrefix(courseCode, prefix) {
			return major
		}
	}
	return ""
}

// excludedCodes 이미 들은 과목, 담아둔 과목, 이번에 제외 요청한 과목의 합집합
func (s *recommendationService) excludedCodes(ctx context.Context, userID string, enrollments []model.Enrollment, dismissed []string) (map[string]bool, error) {
	excluded := make(map[string]bool, len(enrollments)+len(dismissed))
	for _, e := range enrollments {
		excluded[e.CourseCode] = true
	}
	saved, err := s.repo.SavedCourse.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, sc := range saved {
		excluded[sc.CourseCode] = true
	}
	for _, code := range dismissed {
		excluded[strings.TrimSpace(code)] = true
	}
	return excluded, nil
}

// currentSemesterOf 본인 수강 학기 중 최댓값을 올림한 값. 이력이 없으면 1.0
func currentSemesterOf(enrollments []model.Enrollment) float64 {
	if len(enrollments) == 0 {
		return 1.0
	}
	max := 0.0
	for _, e := range enrollments {
		if e.Semester > max {
			max = e.Semester
		}
	}
	return math.Ceil(max)
}

// targetClassifications 추천 대상 개설학기 분류.
// parity가 있으면 해당 학기 + 공통 + 미분류, 없으면 공통 + 미분류만.
func targetClassifications(parity *int) []int {
	if parity != nil {
		return []int{*parity, model.TermBoth, model.TermUnclassified}
	}
	return []int{model.TermBoth, model.TermUnclassified}
}

// topN 점수순 상위 n개
func topN(courses []dto.RecommendedCourse, n int) []dto.RecommendedCourse {
	if len(courses) > n {
		return courses[:n]
	}
	return courses
}
