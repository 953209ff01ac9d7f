package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Hyseok176/saint-major-recommender/internal/dto"
	"github.com/Hyseok176/saint-major-recommender/internal/model"
	"github.com/Hyseok176/saint-major-recommender/internal/repository"
)

var (
	ErrNoTranscript    = errors.New("업로드된 성적표가 없습니다")
	ErrEmptyTranscript = errors.New("성적표에서 과목을 찾을 수 없습니다")
)

// TranscriptService 성적표 업로드/조회 업무 인터페이스
type TranscriptService interface {
	// ParseAndSave 성적표를 파싱해 사용자의 수강 이력 전체를 교체하고
	// 미리보기에서 확인한 전공 선언을 사용자 정보에 반영한다.
	ParseAndSave(ctx context.Context, userID string, r io.Reader, major1, major2, major3 string) (*dto.TranscriptResponse, error)
	// ExtractMajors 성적표에서 전공 선언만 추출한다. 저장하지 않는 미리보기.
	ExtractMajors(r io.Reader) (*dto.MajorsResponse, error)
	// GetHistory 저장된 수강 이력을 학기별로 묶어 반환한다.
	GetHistory(ctx context.Context, userID string) (*dto.TranscriptResponse, error)
}

type transcriptService struct {
	repo   *repository.Repository
	parser *TranscriptParser
	logger *zap.Logger
}

// NewTranscriptService TranscriptService 인스턴스 생성
func NewTranscriptService(repo *repository.Repository, parser *TranscriptParser, logger *zap.Logger) TranscriptService {
	return &transcriptService{repo: repo, parser: parser, logger: logger}
}

func (s *transcriptService) ParseAndSave(ctx context.Context, userID string, r io.Reader, major1, major2, major3 string) (*dto.TranscriptResponse, error) {
	result, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, ErrEmptyTranscript
	}
	groups, lastSemester := s.parser.GroupAndLabel(result.Records)

	// 업로드는 이력 전체의 교체이므로 삭제와 재삽입을 한 트랜잭션으로 묶는다
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("트랜잭션 시작 실패", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()
	txRepo := s.repo.WithTx(tx)

	if err := txRepo.Enrollment.DeleteByUser(ctx, userID); err != nil {
		s.logger.Error("기존 수강 이력 삭제 실패", zap.Error(err))
		return nil, err
	}

	var enrollments []model.Enrollment
	var courses []model.Course
	for _, g := range groups {
		for _, c := range g.Courses {
			enrollments = append(enrollments, model.Enrollment{
				UserID:     userID,
				CourseCode: c.CourseCode,
				Semester:   g.Number,
				Credit:     c.Credit,
				Grade:      c.Grade,
				Remarks:    c.Remarks,
			})
			courses = append(courses, model.Course{
				CourseCode: c.CourseCode,
				CourseName: c.CourseName,
				Semester:   model.TermUnclassified,
			})
		}
	}

	// 처음 등장한 과목만 카탈로그에 추가. 기존 과목의 이름/분류는 건드리지 않는다.
	if err := txRepo.Course.UpsertIfAbsent(ctx, courses); err != nil {
		s.logger.Error("과목 카탈로그 갱신 실패", zap.Error(err))
		return nil, err
	}
	if err := txRepo.Enrollment.CreateBatch(ctx, enrollments); err != nil {
		s.logger.Error("수강 이력 저장 실패", zap.Error(err))
		return nil, err
	}

	user, err := txRepo.User.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Major1 = normalizeMajor(major1)
	user.Major2 = normalizeMajor(major2)
	user.Major3 = normalizeMajor(major3)
	user.LastSemester = lastSemester
	if err := txRepo.User.Update(ctx, user); err != nil {
		s.logger.Error("사용자 전공 정보 갱신 실패", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.logger.Info("성적표 저장 완료",
		zap.String("user_id", userID),
		zap.Int("enrollments", len(enrollments)),
		zap.String("last_semester", lastSemester))

	return buildTranscriptResponse(user.Majors(), lastSemester, groups), nil
}

func (s *transcriptService) ExtractMajors(r io.Reader) (*dto.MajorsResponse, error) {
	majors, err := s.parser.ExtractMajors(r)
	if err != nil {
		return nil, err
	}
	declared := make([]string, 0, 3)
	for _, m := range majors {
		if m != "" && m != "미선택" {
			declared = append(declared, m)
		}
	}
	return &dto.MajorsResponse{
		Major1: majors[0],
		Major2: majors[1],
		Major3: majors[2],
		Majors: declared,
	}, nil
}

func (s *transcriptService) GetHistory(ctx context.Context, userID string) (*dto.TranscriptResponse, error) {
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
	if len(enrollments) == 0 {
		return nil, ErrNoTranscript
	}

	codes := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		codes = append(codes, e.CourseCode)
	}
	catalog, err := s.repo.Course.FindByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(catalog))
	for _, c := range catalog {
		names[c.CourseCode] = c.CourseName
	}

	// 저장된 이력에는 연도 정보가 없으므로 학기 번호만으로 라벨을 구성한다
	buckets := make(map[float64][]dto.ParsedCourse)
	var numbers []float64
	for _, e := range enrollments {
		if _, ok := buckets[e.Semester]; !ok {
			numbers = append(numbers, e.Semester)
		}
		buckets[e.Semester] = append(buckets[e.Semester], dto.ParsedCourse{
			CourseCode: e.CourseCode,
			CourseName: names[e.CourseCode],
			Credit:     e.Credit,
			Grade:      e.Grade,
			Failed:     e.Remarks.Failed,
			Retake:     e.Remarks.Retake,
			English:    e.Remarks.EnglishLecture,
			Duplicate:  e.Remarks.Duplicate,
		})
	}
	sort.Float64s(numbers)

	semesters := make([]dto.SemesterGroup, 0, len(numbers))
	for _, n := range numbers {
		courses := buckets[n]
		sort.Slice(courses, func(i, j int) bool {
			return courses[i].CourseCode < courses[j].CourseCode
		})
		semesters = append(semesters, dto.SemesterGroup{
			Label:   fmt.Sprintf("%g학기", n),
			Courses: courses,
		})
	}

	return &dto.TranscriptResponse{
		Majors:       user.Majors(),
		LastSemester: user.LastSemester,
		Semesters:    semesters,
	}, nil
}

// normalizeMajor 요청으로 받은 전공명에서 공백을 제거한다. 빈 값은 미선택 처리.
func normalizeMajor(major string) string {
	m := strings.ReplaceAll(major, " ", "")
	if m == "" {
		return "미선택"
	}
	return m
}

// buildTranscriptResponse 파싱 결과를 응답 DTO로 변환한다
func buildTranscriptResponse(majors []string, lastSemester string, groups []LabeledSemester) *dto.TranscriptResponse {
	semesters := make([]dto.SemesterGroup, 0, len(groups))
	for _, g := range groups {
		courses := make([]dto.ParsedCourse, 0, len(g.Courses))
		for _, c := range g.Courses {
			courses = append(courses, dto.ParsedCourse{
				CourseCode: c.CourseCode,
				CourseName: c.CourseName,
				Credit:     c.Credit,
				Grade:      c.Grade,
				Failed:     c.Remarks.Failed,
				Retake:     c.Remarks.Retake,
				English:    c.Remarks.EnglishLecture,
				Duplicate:  c.Remarks.Duplicate,
			})
		}
		semesters = append(semesters, dto.SemesterGroup{Label: g.Label, Courses: courses})
	}
	return &dto.TranscriptResponse{
		Majors:       majors,
		LastSemester: lastSemester,
		Semesters:    semesters,
	}
}
