package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Hyseok176/saint-major-recommender/internal/dto"
	"github.com/Hyseok176/saint-major-recommender/internal/model"
	"github.com/Hyseok176/saint-major-recommender/internal/repository"
)

func setupUserTest() (UserService, *mockUserRepo) {
	users := newMockUserRepo()
	repo := &repository.Repository{
		User:        users,
		Course:      newMockCourseRepo(),
		Enrollment:  newMockEnrollmentRepo(users),
		SavedCourse: newMockSavedCourseRepo(),
	}
	return NewUserService(repo, zap.NewNop()), users
}

func TestUserService_GetProfile(t *testing.T) {
	svc, users := setupUserTest()
	users.users["uid-1"] = &model.User{
		UserID:   "uid-1",
		Username: "hong",
		Nickname: "홍길동",
		Major1:   "수학",
		Major2:   "컴퓨터공학",
		Major3:   "미선택",
	}

	result, err := svc.GetProfile(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("GetProfile 실패: %v", err)
	}
	if result.Nickname != "홍길동" {
		t.Errorf("닉네임 기대 홍길동, 실제 %s", result.Nickname)
	}
	if len(result.Majors) != 2 {
		t.Errorf("미선택 제외 전공 수 기대 2, 실제 %v", result.Majors)
	}
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, _ := setupUserTest()
	_, err := svc.GetProfile(context.Background(), "없는사람")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("기대 오류 ErrUserNotFound, 실제 %v", err)
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc, users := setupUserTest()
	users.users["uid-1"] = &model.User{UserID: "uid-1", Username: "hong", Nickname: "홍길동"}

	result, err := svc.UpdateProfile(context.Background(), "uid-1", &dto.UpdateProfileRequest{Nickname: "새닉네임"})
	if err != nil {
		t.Fatalf("UpdateProfile 실패: %v", err)
	}
	if result.Nickname != "새닉네임" {
		t.Errorf("닉네임 수정 반영 안 됨: %s", result.Nickname)
	}
}

func TestNextSemesterOf(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		lastSemester string
		wantYear     int
		wantParity   int
	}{
		{"2023-1", 2023, 2}, // 1학기 다음은 같은 해 2학기
		{"2023-S", 2023, 2}, // 여름학기도 2학기로
		{"2023-2", 2024, 1}, // 2학기 다음은 이듬해 1학기
		{"2023-W", 2024, 1}, // 겨울학기도 이듬해 1학기로
		{"", 2024, 2},       // 성적표 없음 → 5월 기준 2학기
	}
	for _, tt := range tests {
		year, parity := nextSemesterOf(tt.lastSemester, now)
		if year != tt.wantYear || parity != tt.wantParity {
			t.Errorf("nextSemesterOf(%q) 기대 %d년 %d학기, 실제 %d년 %d학기",
				tt.lastSemester, tt.wantYear, tt.wantParity, year, parity)
		}
	}
}

func TestNextSemesterOf_FallbackByMonth(t *testing.T) {
	tests := []struct {
		month      time.Month
		wantYear   int
		wantParity int
	}{
		{time.January, 2024, 1},
		{time.April, 2024, 2},
		{time.October, 2025, 1},
	}
	for _, tt := range tests {
		now := time.Date(2024, tt.month, 15, 0, 0, 0, 0, time.UTC)
		year, parity := nextSemesterOf("잘못된값", now)
		if year != tt.wantYear || parity != tt.wantParity {
			t.Errorf("%d월 기준 기대 %d년 %d학기, 실제 %d년 %d학기",
				tt.month, tt.wantYear, tt.wantParity, year, parity)
		}
	}
}
