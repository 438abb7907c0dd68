package implementation

import (
	"context"
	"fmt"
	"time"

	"review-agent-be/internal/entity"
	"review-agent-be/internal/mapper"
	"review-agent-be/internal/model"
	"review-agent-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnalysisRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnalysisMapper
}

func NewAnalysisRepository(db *gorm.DB) contract.AnalysisRepository {
	return &AnalysisRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnalysisMapper(),
	}
}

func (r *AnalysisRepositoryImpl) SaveAll(ctx context.Context, records []*entity.AnalysisRecord) error {
	if len(records) == 0 {
		return nil
	}
	models := r.mapper.ToModels(records)
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*records[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *AnalysisRepositoryImpl) FindAllByFileId(ctx context.Context, fileId uuid.UUID) ([]*entity.AnalysisRecord, error) {
	var models []*model.AnalysisRecord
	if err := r.db.WithContext(ctx).Where("file_id = ?", fileId).Order("session_start").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AnalysisRepositoryImpl) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.AnalysisRecord, error) {
	var models []*model.AnalysisRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AnalysisRepositoryImpl) FindAllByDateRange(ctx context.Context, userId uuid.UUID, start, end time.Time) ([]*entity.AnalysisRecord, error) {
	var models []*model.AnalysisRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userId, start, end).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AnalysisRepositoryImpl) CountByTagId(ctx context.Context, tagId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AnalysisRecord{}).
		Where("tag_id = ?", tagId).
		Count(&count).Error
	return count, err
}

func (r *AnalysisRepositoryImpl) CountBySubTagId(ctx context.Context, subTagId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AnalysisRecord{}).
		Where("sub_tag_ids @> ?", fmt.Sprintf(`["%s"]`, subTagId)).
		Count(&count).Error
	return count, err
}
