package contract

import (
	"context"

	"review-agent-be/internal/entity"

	"github.com/google/uuid"
)

type ScheduleConfigRepository interface {
	Save(ctx context.Context, config *entity.UserScheduleConfig) error
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserScheduleConfig, error)
	FindAll(ctx context.Context) ([]*entity.UserScheduleConfig, error)
}
