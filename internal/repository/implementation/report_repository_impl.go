package implementation

import (
	"context"

	"review-agent-be/internal/entity"
	"review-agent-be/internal/mapper"
	"review-agent-be/internal/model"
	"review-agent-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReportMapper
}

func NewReportRepository(db *gorm.DB) contract.ReportRepository {
	return &ReportRepositoryImpl{
		db:     db,
		mapper: mapper.NewReportMapper(),
	}
}

func (r *ReportRepositoryImpl) Create(ctx context.Context, report *entity.ReportData) error {
	m := r.mapper.ToModel(report)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*report = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReportRepositoryImpl) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.ReportData, error) {
	var models []*model.ReportData
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.ReportData, 0, len(models))
	for _, m := range models {
		out = append(out, r.mapper.ToEntity(m))
	}
	return out, nil
}

type SyncRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReportMapper
}

func NewSyncRecordRepository(db *gorm.DB) contract.SyncRecordRepository {
	return &SyncRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewReportMapper(),
	}
}

func (r *SyncRecordRepositoryImpl) Create(ctx context.Context, record *entity.SyncRecord) error {
	m := r.mapper.SyncToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.SyncToEntity(m)
	return nil
}
