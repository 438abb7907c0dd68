package implementation

import (
	"context"
	"errors"

	"review-agent-be/internal/entity"
	"review-agent-be/internal/mapper"
	"review-agent-be/internal/model"
	"review-agent-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScheduleConfigRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScheduleMapper
}

func NewScheduleConfigRepository(db *gorm.DB) contract.ScheduleConfigRepository {
	return &ScheduleConfigRepositoryImpl{
		db:     db,
		mapper: mapper.NewScheduleMapper(),
	}
}

func (r *ScheduleConfigRepositoryImpl) Save(ctx context.Context, config *entity.UserScheduleConfig) error {
	m := r.mapper.ToModel(config)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*config = *r.mapper.ToEntity(m)
	return nil
}

func (r *ScheduleConfigRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserScheduleConfig, error) {
	var m model.UserScheduleConfig
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ScheduleConfigRepositoryImpl) FindAll(ctx context.Context) ([]*entity.UserScheduleConfig, error) {
	var models []*model.UserScheduleConfig
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
