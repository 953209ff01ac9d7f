package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Hyseok176/saint-major-recommender/internal/dto"
	"github.com/Hyseok176/saint-major-recommender/internal/model"
	"github.com/Hyseok176/saint-major-recommender/internal/repository"
)

// UserService 사용자 정보 업무 인터페이스
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	// NextSemester 마지막 수강 학기를 기준으로 다음 정규 학기를 계산한다.
	NextSemester(ctx context.Context, userID string) (*dto.NextSemesterResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService UserService 인스턴스 생성
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Nickname != "" {
		user.Nickname = req.Nickname
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("프로필 수정 실패", zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) NextSemester(ctx context.Context, userID string) (*dto.NextSemesterResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	year, parity := nextSemesterOf(user.LastSemester, time.Now())
	return &dto.NextSemesterResponse{
		Year:    year,
		Parity:  parity,
		Display: fmt.Sprintf("%d년 %d학기", year, parity),
	}, nil
}

// nextSemesterOf 마지막 수강 학기의 다음 정규 학기.
// 2학기/겨울학기 다음은 이듬해 1학기, 1학기/여름학기 다음은 같은 해 2학기.
// 성적표가 없으면 현재 날짜 기준으로 판단한다.
func nextSemesterOf(lastSemester string, now time.Time) (year, parity int) {
	if info, err := model.ParseSemesterInfo(lastSemester); err == nil {
		switch info.Type() {
		case "2", "W":
			return info.Year() + 1, 1
		default: // "1", "S"
			return info.Year(), 2
		}
	}

	switch m := int(now.Month()); {
	case m >= 3 && m <= 8:
		return now.Year(), 2
	case m >= 9:
		return now.Year() + 1, 1
	default:
		return now.Year(), 1
	}
}

// toUserResponse 모델을 응답 DTO로 변환한다
func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           user.UserID,
		Username:     user.Username,
		Email:        user.Email,
		Nickname:     user.Nickname,
		Major1:       user.Major1,
		Major2:       user.Major2,
		Major3:       user.Major3,
		LastSemester: user.LastSemester,
		Majors:       user.Majors(),
	}
}
