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

// ScheduleReloader is satisfied by the task scheduler; the service only needs
// the per-user reload.
type ScheduleReloader interface {
	ReloadOne(ctx context.Context, userId uuid.UUID) error
}

type IScheduleConfigService interface {
	Get(ctx context.Context, userId uuid.UUID) (*dto.ScheduleConfigResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateScheduleConfigRequest) (*dto.ScheduleConfigResponse, error)
}

type scheduleConfigService struct {
	schedules contract.ScheduleConfigRepository
	reloader  ScheduleReloader
}

func NewScheduleConfigService(schedules contract.ScheduleConfigRepository, reloader ScheduleReloader) IScheduleConfigService {
	return &scheduleConfigService{
		schedules: schedules,
		reloader:  reloader,
	}
}

func (s *scheduleConfigService) Get(ctx context.Context, userId uuid.UUID) (*dto.ScheduleConfigResponse, error) {
	config, err := s.schedules.FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, fmt.Errorf("%w: schedule config", constant.ErrNotFound)
	}
	return toScheduleResponse(config), nil
}

// Update validates the interval bounds before anything is persisted, stores
// the config with crons derived from the time-of-day preferences, then makes
// the scheduler pick up the change.
func (s *scheduleConfigService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateScheduleConfigRequest) (*dto.ScheduleConfigResponse, error) {
	if req.ScanIntervalSeconds < constant.MinScanIntervalSeconds || req.ScanIntervalSeconds > constant.MaxScanIntervalSeconds {
		return nil, fmt.Errorf("%w: scan interval must be between %d and %d seconds",
			constant.ErrInvalid, constant.MinScanIntervalSeconds, constant.MaxScanIntervalSeconds)
	}

	config := entity.UserScheduleConfig{
		Id:                  uuid.New(),
		UserId:              userId,
		ScanDirectory:       req.ScanDirectory,
		AutoScanEnabled:     req.AutoScanEnabled,
		ScanIntervalSeconds: req.ScanIntervalSeconds,
		DailyEnabled:        req.DailyEnabled,
		DailyCron:           fmt.Sprintf("%d %d * * *", req.DailyMinute, req.DailyHour),
		WeeklyEnabled:       req.WeeklyEnabled,
		WeeklyCron:          fmt.Sprintf("%d %d * * %d", req.WeeklyMinute, req.WeeklyHour, req.WeeklyDay),
		UpdatedAt:           time.Now(),
	}
	if err := s.schedules.Save(ctx, &config); err != nil {
		return nil, err
	}

	if err := s.reloader.ReloadOne(ctx, userId); err != nil {
		return nil, fmt.Errorf("reload schedule: %w", err)
	}
	return toScheduleResponse(&config), nil
}

func toScheduleResponse(config *entity.UserScheduleConfig) *dto.ScheduleConfigResponse {
	return &dto.ScheduleConfigResponse{
		ScanDirectory:       config.ScanDirectory,
		AutoScanEnabled:     config.AutoScanEnabled,
		ScanIntervalSeconds: config.ScanIntervalSeconds,
		DailyEnabled:        config.DailyEnabled,
		DailyCron:           config.DailyCron,
		WeeklyEnabled:       config.WeeklyEnabled,
		WeeklyCron:          config.WeeklyCron,
		UpdatedAt:           config.UpdatedAt,
	}
}
