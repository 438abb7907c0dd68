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
)

type FileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FileMapper
}

func NewFileRepository(db *gorm.DB) contract.FileRepository {
	return &FileRepositoryImpl{
		db:     db,
		mapper: mapper.NewFileMapper(),
	}
}

func (r *FileRepositoryImpl) Create(ctx context.Context, file *entity.FileInfo) error {
	m := r.mapper.ToModel(file)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*file = *r.mapper.ToEntity(m)
	return nil
}

func (r *FileRepositoryImpl) Update(ctx context.Context, file *entity.FileInfo) error {
	m := r.mapper.ToModel(file)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*file = *r.mapper.ToEntity(m)
	return nil
}

func (r *FileRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.FileInfo, error) {
	var m model.FileInfo
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FileRepositoryImpl) FindByPath(ctx context.Context, filePath string) (*entity.FileInfo, error) {
	var m model.FileInfo
	if err := r.db.WithContext(ctx).First(&m, "file_path = ?", filePath).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FileRepositoryImpl) FindAllByUserId(ctx context.Context, userId uuid.UUID, status *int) ([]*entity.FileInfo, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userId)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var models []*model.FileInfo
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FileRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status int) error {
	return r.db.WithContext(ctx).
		Model(&model.FileInfo{}).
		Where("id = ?", id).
		Update("status", status).Error
}
