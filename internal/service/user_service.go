package service

import (
	"context"
	"fmt"
	"time"

	"review-agent-be/internal/constant"
	"review-agent-be/internal/dto"
	"review-agent-be/internal/entity"
	"review-agent-be/internal/repository/contract"

	"github.com/google/uuid"
)

type IUserService interface {
	Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	Show(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type userService struct {
	users     contract.UserRepository
	schedules contract.ScheduleConfigRepository
}

func NewUserService(users contract.UserRepository, schedules contract.ScheduleConfigRepository) IUserService {
	return &userService{
		users:     users,
		schedules: schedules,
	}
}

// Register creates the user together with a disabled default schedule config,
// so reloads always find a config row for every known user.
func (s *userService) Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	existing, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username already taken", constant.ErrConflict)
	}

	user := entity.UserInfo{
		Id:        uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		Avatar:    req.Avatar,
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}

	defaultConfig := entity.UserScheduleConfig{
		Id:                  uuid.New(),
		UserId:              user.Id,
		ScanIntervalSeconds: constant.MinScanIntervalSeconds,
		DailyCron:           "0 8 * * *",
		WeeklyCron:          "0 8 * * 1",
		UpdatedAt:           time.Now(),
	}
	if err := s.schedules.Save(ctx, &defaultConfig); err != nil {
		return nil, err
	}

	return toUserResponse(&user), nil
}

func (s *userService) Show(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.users.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", constant.ErrNotFound)
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *entity.UserInfo) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        user.Id,
		Username:  user.Username,
		Email:     user.Email,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}
