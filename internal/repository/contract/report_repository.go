package contract

import (
	"context"

	"review-agent-be/internal/entity"

	"github.com/google/uuid"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.ReportData) error
	FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.ReportData, error)
}

type SyncRecordRepository interface {
	Create(ctx context.Context, record *entity.SyncRecord) error
}
