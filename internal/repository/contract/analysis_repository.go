package contract

import (
	"context"
	"time"

	"review-agent-be/internal/entity"

	"github.com/google/uuid"
)

type AnalysisRepository interface {
	SaveAll(ctx context.Context, records []*entity.AnalysisRecord) error
	FindAllByFileId(ctx context.Context, fileId uuid.UUID) ([]*entity.AnalysisRecord, error)
	FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.AnalysisRecord, error)
	FindAllByDateRange(ctx context.Context, userId uuid.UUID, start, end time.Time) ([]*entity.AnalysisRecord, error)

	// Referential guards backing the tag-deletion invariant.
	CountByTagId(ctx context.Context, tagId uuid.UUID) (int64, error)
	CountBySubTagId(ctx context.Context, subTagId uuid.UUID) (int64, error)
}
