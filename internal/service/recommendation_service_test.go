package service

import (
	"context"
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/Hyseok176/saint-major-recommender/internal/dto"
	"github.com/Hyseok176/saint-major-recommender/internal/model"
	"github.com/Hyseok176/saint-major-recommender/internal/repository"
)

// ── 테스트 보조 ──

type recFixture struct {
	svc         RecommendationService
	users       *mockUserRepo
	courses     *mockCourseRepo
	enrollments *mockEnrollmentRepo
	saved       *mockSavedCourseRepo
}

func setupRecommendationTest() *recFixture {
	users := newMockUserRepo()
	courses := newMockCourseRepo()
	enrollments := newMockEnrollmentRepo(users)
	saved := newMockSavedCourseRepo()
	repo := &repository.Repository{
		User:        users,
		Course:      courses,
		Enrollment:  enrollments,
		SavedCourse: saved,
	}
	svc := NewRecommendationService(repo, DefaultCurriculum(), zap.NewNop())
	return &recFixture{svc: svc, users: users, courses: courses, enrollments: enrollments, saved: saved}
}

func (f *recFixture) addUser(id, major1 string) {
	u := &model.User{UserID: id, Username: id, Major1: major1, Major2: "미선택", Major3: "미선택"}
	f.users.users[id] = u
	f.users.users[u.Username] = u
}

func (f *recFixture) addCourse(code, name string, classification int) {
	f.courses.courses[code] = &model.Course{CourseCode: code, CourseName: name, Semester: classification}
}

func (f *recFixture) addEnrollment(userID, code string, semester float64) {
	f.enrollments.enrollments = append(f.enrollments.enrollments, model.Enrollment{
		UserID: userID, CourseCode: code, Semester: semester,
	})
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// ── 전공 추천 ──

func TestRecommendMajor_ProximityScore(t *testing.T) {
	f := setupRecommendationTest()
	f.addUser("me", "수학")
	f.addCourse("MAT3110", "미분기하학", model.TermBoth)
	f.addCourse("MAT3120", "위상수학", model.TermBoth)

	// 내 이력: 최대 2학기 → 현재 학기 2
	f.addEnrollment("me", "MAT2110", 1)
	f.addEnrollment("me", "MAT2120", 2)

	// MAT3110 동료: 3학기 수강 2명 → 점수 2 * 1/(1+1) = 1.0
	f.addEnrollment("p1", "MAT3110", 3)
	f.addEnrollment("p2", "MAT3110", 3)
	// MAT3120 동료: 5학기 수강 1명 → 점수 1/(1+3) = 0.25
	f.addEnrollment("p3", "MAT3120", 5)

	parity := 1
	resp, err := f.svc.RecommendMajor(context.Background(), "me", &dto.RecommendRequest{Parity: &parity})
	if err != nil {
		t.Fatalf("RecommendMajor 실패: %v", err)
	}

	if resp.CurrentSemester != 2 {
		t.Errorf("현재 학기 기대 2, 실제 %v", resp.CurrentSemester)
	}
	if len(resp.Courses) != 2 {
		t.Fatalf("기대 추천 수 2, 실제 %d", len(resp.Courses))
	}
	if resp.Courses[0].CourseCode != "MAT3110" || !almostEqual(resp.Courses[0].Score, 1.0) {
		t.Errorf("1순위 기대 MAT3110(1.0), 실제 %s(%v)", resp.Courses[0].CourseCode, resp.Courses[0].Score)
	}
	if resp.Courses[1].CourseCode != "MAT3120" || !almostEqual(resp.Courses[1].Score, 0.25) {
		t.Errorf("2순위 기대 MAT3120(0.25), 실제 %s(%v)", resp.Courses[1].CourseCode, resp.Courses[1].Score)
	}
	if resp.Courses[0].PeerCount != 2 {
		t.Errorf("동료 수 기대 2, 실제 %d", resp.Courses[0].PeerCount)
	}
	// 평균 근접도 = 점수 / 동료 수
	if !almostEqual(resp.Courses[0].AverageProximity, 0.5) {
		t.Errorf("MAT3110 평균 근접도 기대 0.5, 실제 %v", resp.Courses[0].AverageProximity)
	}
	if !almostEqual(resp.Courses[1].AverageProximity, 0.25) {
		t.Errorf("MAT3120 평균 근접도 기대 0.25, 실제 %v", resp.Courses[1].AverageProximity)
	}
	if resp.Courses[0].MajorName != "수학" {
		t.Errorf("전공 추천에는 선언 전공명이 붙어야 함: %+v", resp.Courses[0])
	}
}

func TestRecommendMajor_DefaultSemesterWithoutHistory(t *testing.T) {
	f := setupRecommendationTest()
	f.addUser("me", "수학")

	resp, err := f.svc.RecommendMajor(context.Background(), "me", &dto.RecommendRequest{})
	if err != nil {
		t.Fatalf("RecommendMajor 실패: %v", err)
	}
	if resp.CurrentSemester != 1.0 {
		t.Errorf("이력 없는 사용자의 현재 학기 기대 1.0, 실제 %v", resp.CurrentSemester)
	}
}

func TestRecommendMajor_ZeroPeersScoreZero(t *testing.T) {
	f := setupRecommendationTest()
	f.addUser("me", "수학")
	f.addCourse("MAT3130", "정수론", model.TermBoth)

	resp, err := f.svc.RecommendMajor(context.Background(), "me", &dto.RecommendRequest{})
	if err != nil {
		t.Fatalf("RecommendMajor 실패: %v", err)
	}
	if len(resp.Courses) != 1 {
		t.Fatalf("기대 추천 수 1, 실제 %d", len(resp.Courses))
	}
	if resp.Courses[0].Score != 0 || resp.Courses[0].PeerCount != 0 {
		t.Errorf("동료 없는 과목 기대 점수 0, 실제 %+v", resp.Courses[0])
	}
	if resp.Courses[0].AverageProximity != 0 {
		t.Errorf("동료 없는 과목의 평균 근접도는 0, 실제 %v", resp.Courses[0].AverageProximity)
	}
}

func TestScoreByProximity_TiePreservesCatalogOrder(t *testing.T) {
	f := setupRecommendationTest()
	svc := f.svc.(*recommendationService)

	// 동료가 없어 전부 0점: 코드 역순 입력이 그대로 유지되어야 한다
	candidates := []model.Course{
		{CourseCode: "MAT3120", CourseName: "위상수학", Semester: model.TermBoth},
		{CourseCode: "MAT3110", CourseName: "미분기하학", Semester: model.TermBoth},
	}
	scored, err := svc.scoreByProximity(context.Background(), candidates, map[string]bool{}, 1.0, "me", "", nil)
	if err != nil {
		t.Fatalf("scoreByProximity 실패: %v", err)
	}
	if len(scored) != 2 || scored[0].CourseCode != "MAT3120" || scored[1].CourseCode != "MAT3110" {
		t.Errorf("동점 후보는 카탈로그 순서를 유지해야 함: %+v", scored)
	}
}

func TestRecommendMajor_UnclassifiedFixedScore(t *testing.T) {
	f := setupRecommendationTest()
	f.addUser("me", "수학")
	f.addCourse("MAT4990", "신설과목", model.TermUnclassified)

	// 미분류 과목에 동료가 있어도 고정 점수
	f.addEnrollment("p1", "MAT4990", 3)

	resp, err := f.svc.RecommendMajor(context.Background(), "me", &dto.RecommendRequest{})
	if err != nil {
		t.Fatalf("RecommendMajor 실패: %v", err)
	}
	if len(resp.Courses) != 1 {
		t.Fatalf("기대 추천 수 1, 실제 %d", len(resp.Courses))
	}
	got := resp.Courses[0]
	if !almostEqual(got.Score, 0.01) || got.PeerCount != 0 {
		t.Errorf("미분류 과목 기대 점수 0.01/동료 0, 실제 %v/%d", got.Score, got.PeerCount)
	}
	if got.AverageProximity != 0 {
		t.Errorf("미분류 과목의 평균 근접도는 0, 실제 %v", got.AverageProximity)
	}
}

func TestRecommendMajor_Exclusions(t *testing.T) {
	f := setupRecommendationTest()
	f.addUser("me", "수학")
	f.addCourse("MAT3110", "미분기하학", model.TermBoth)
	f.addCourse("MAT3120", "위상수학", model.TermBoth)
	f.addCourse("MAT3130", "정수론", model.TermBoth)

	// 이미 수강
	f.addEnrollment("me", "MAT3110", 3)
	// 장바구니에 담김
	f.saved.saved = append(f.saved.saved, model.SavedCourse{UserID: "me", CourseCode: "MAT3120"})

	// 이번 요청에서 제외
	resp, err := f.svc.RecommendMajor(context.Background(), "me", &dto.RecommendRequest{Dismissed: []string{"MAT3130"}})
	if err != nil {
		t.Fatalf("RecommendMajor 실패: %v", err)
	}
	if len(resp.Courses) != 0 {
		t.Errorf("수강/담기/제외 과목은 추천에서 빠져야 함: %+v", resp.Courses)
	}
}

func TestRecommendMajor_ParityFiltersClassification(t *testing.T) {
	f := setupRecommendationTest()
	f.addUser("me", "수학")
	f.addCourse("MAT3110", "미분기하학", model.TermSpringOnly)
	f.addCourse("MAT3120", "위상수학", model.TermFallOnly)

	parity := 2
	resp, err := f.svc.RecommendMajor(context.Background(), "me", &dto.RecommendRequest{Parity: &parity})
	if err != nil {
		t.Fatalf("RecommendMajor 실패: %v", err)
	}
	if len(resp.Courses) != 1 || resp.Courses[0].CourseCode != "MAT3120" {
		t.Errorf("2학기 추천에는 2학기 개설 과목만 나와야 함: %+v", resp.Courses)
	}
}

func TestRecommendMajor_TopFive(t *testing.T) {
	f := setupRecommendationTest()
	f.addUser("me", "수학")
	codes := []string{"MAT3001", "MAT3002", "MAT3003", "MAT3004", "MAT3005", "MAT3006", "MAT3007"}
	for _, code := range codes {
		f.addCourse(code, "전공과목 "+code, model.TermBoth)
	}

	resp, err := f.svc.RecommendMajor(context.Background(), "me", &dto.RecommendRequest{})
	if err != nil {
		t.Fatalf("RecommendMajor 실패: %v", err)
	}
	if len(resp.Courses) != 5 {
		t.Errorf("추천은 최대 5개: 실제 %d", len(resp.Courses))
	}
}

func TestRecommendMajor_UnknownMajorMatchesNothing(t *testing.T) {
	f := setupRecommendationTest()
	f.addUser("me", "신학")
	f.addCourse("MAT3110", "미분기하학", model.TermBoth)

	resp, err := f.svc.RecommendMajor(context.Background(), "me", &dto.RecommendRequest{})
	if err != nil {
		t.Fatalf("RecommendMajor 실패: %v", err)
	}
	if len(resp.Courses) != 0 {
		t.Errorf("매핑에 없는 전공은 후보가 없어야 함: %+v", resp.Courses)
	}
}

// ── 교양 추천 ──

func TestRecommendGE_UncompletedTracks(t *testing.T) {
	f := setupRecommendationTest()
	f.addUser("me", "수학")
	f.addCourse("HFS2001", "인간과 신앙 입문", model.TermBoth)
	f.addCourse("ETS2001", "윤리와 사상", model.TermBoth)

	// 1트랙 과목 수강 → 1트랙만 이수
	f.addEnrollment("me", "HFS2001", 1)

	// 2트랙 과목에 동료 수강자
	f.addEnrollment("p1", "ETS2001", 2)
	f.addEnrollment("p2", "ETS2001", 3)

	resp, err := f.svc.RecommendGE(context.Background(), "me", &dto.RecommendRequest{})
	if err != nil {
		t.Fatalf("RecommendGE 실패: %v", err)
	}

	if len(resp.UncompletedTracks) != 4 {
		t.Fatalf("미이수 트랙 기대 4, 실제 %d: %v", len(resp.UncompletedTracks), resp.UncompletedTracks)
	}
	if resp.UncompletedTracks[0] != "- 2트랙 인간과 사상" {
		t.Errorf("트랙 표시 형식 오류: %q", resp.UncompletedTracks[0])
	}

	if len(resp.Courses) == 0 {
		t.Fatal("미이수 트랙 과목이 추천되어야 함")
	}
	top := resp.Courses[0]
	if top.CourseCode != "ETS2001" || top.PeerCount != 2 {
		t.Errorf("동료 수강자 수 내림차순 1순위 기대 ETS2001(2명), 실제 %s(%d명)", top.CourseCode, top.PeerCount)
	}
	if top.Score != 0 {
		t.Errorf("미이수 트랙 추천의 점수는 0, 실제 %v", top.Score)
	}
	if top.TrackName != "인간과 사상" {
		t.Errorf("추천 과목에 트랙 이름이 붙어야 함: %q", top.TrackName)
	}
}

func TestRecommendGE_AllTracksCompleted(t *testing.T) {
	f := setupRecommendationTest()
	f.addUser("me", "수학")
	f.addUser("peer-same", "수학")
	f.addUser("peer-other", "경영학")

	// 5개 트랙을 모두 이수
	trackCourses := []string{"HFS2001", "ETS2001", "SHS2001", "STS2001", "COR1003"}
	for i, code := range trackCourses {
		f.addCourse(code, "트랙과목 "+code, model.TermBoth)
		f.addEnrollment("me", code, float64(i%2+1))
	}

	// 교양 후보와 전공 과목 하나
	f.addCourse("HSS3001", "교양철학", model.TermBoth)
	f.addCourse("MAT3110", "미분기하학", model.TermBoth)

	// 같은 1전공 동료만 점수에 반영되어야 함
	f.addEnrollment("peer-same", "HSS3001", 2)
	f.addEnrollment("peer-other", "HSS3001", 2)

	resp, err := f.svc.RecommendGE(context.Background(), "me", &dto.RecommendRequest{})
	if err != nil {
		t.Fatalf("RecommendGE 실패: %v", err)
	}

	if len(resp.UncompletedTracks) != 0 {
		t.Errorf("전 트랙 이수자는 미이수 트랙이 없어야 함: %v", resp.UncompletedTracks)
	}
	for _, c := range resp.Courses {
		if c.CourseCode == "MAT3110" {
			t.Error("전공 접두어 과목은 교양 추천에서 제외되어야 함")
		}
	}

	var found *dto.RecommendedCourse
	for i := range resp.Courses {
		if resp.Courses[i].CourseCode == "HSS3001" {
			found = &resp.Courses[i]
			break
		}
	}
	if found == nil {
		t.Fatal("HSS3001이 추천에 포함되어야 함")
	}
	// 현재 학기 2, 동료(같은 전공 1명)의 수강 학기 2 → 1/(1+0) = 1.0
	if found.PeerCount != 1 || !almostEqual(found.Score, 1.0) {
		t.Errorf("같은 전공 동료만 반영: 기대 1명/1.0, 실제 %d명/%v", found.PeerCount, found.Score)
	}
	if !almostEqual(found.AverageProximity, 1.0) {
		t.Errorf("평균 근접도 기대 1.0, 실제 %v", found.AverageProximity)
	}
}
