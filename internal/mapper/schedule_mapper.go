package mapper

import (
	"review-agent-be/internal/entity"
	"review-agent-be/internal/model"
)

type ScheduleMapper struct{}

func NewScheduleMapper() *ScheduleMapper {
	return &ScheduleMapper{}
}

func (m *ScheduleMapper) ToEntity(c *model.UserScheduleConfig) *entity.UserScheduleConfig {
	if c == nil {
		return nil
	}
	return &entity.UserScheduleConfig{
		Id:                  c.Id,
		UserId:              c.UserId,
		ScanDirectory:       c.ScanDirectory,
		AutoScanEnabled:     c.AutoScanEnabled,
		ScanIntervalSeconds: c.ScanIntervalSeconds,
		DailyEnabled:        c.DailyEnabled,
		DailyCron:           c.DailyCron,
		WeeklyEnabled:       c.WeeklyEnabled,
		WeeklyCron:          c.WeeklyCron,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (m *ScheduleMapper) ToModel(c *entity.UserScheduleConfig) *model.UserScheduleConfig {
	if c == nil {
		return nil
	}
	return &model.UserScheduleConfig{
		Id:                  c.Id,
		UserId:              c.UserId,
		ScanDirectory:       c.ScanDirectory,
		AutoScanEnabled:     c.AutoScanEnabled,
		ScanIntervalSeconds: c.ScanIntervalSeconds,
		DailyEnabled:        c.DailyEnabled,
		DailyCron:           c.DailyCron,
		WeeklyEnabled:       c.WeeklyEnabled,
		WeeklyCron:          c.WeeklyCron,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (m *ScheduleMapper) ToEntities(configs []*model.UserScheduleConfig) []*entity.UserScheduleConfig {
	out := make([]*entity.UserScheduleConfig, 0, len(configs))
	for _, c := range configs {
		out = append(out, m.ToEntity(c))
	}
	return out
}
