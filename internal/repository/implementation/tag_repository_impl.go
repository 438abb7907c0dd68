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

type TagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TagMapper
}

func NewTagRepository(db *gorm.DB) contract.TagRepository {
	return &TagRepositoryImpl{
		db:     db,
		mapper: mapper.NewTagMapper(),
	}
}

func (r *TagRepositoryImpl) CreateMainTag(ctx context.Context, tag *entity.MainTag) error {
	m := r.mapper.MainToModel(tag)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tag = *r.mapper.MainToEntity(m)
	return nil
}

func (r *TagRepositoryImpl) CreateSubTag(ctx context.Context, tag *entity.SubTag) error {
	m := r.mapper.SubToModel(tag)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tag = *r.mapper.SubToEntity(m)
	return nil
}

func (r *TagRepositoryImpl) CreateRelation(ctx context.Context, rel *entity.TagRelation) error {
	m := r.mapper.RelationToModel(rel)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*rel = *r.mapper.RelationToEntity(m)
	return nil
}

func (r *TagRepositoryImpl) DeleteMainTag(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MainTag{}, "id = ?", id).Error
}

func (r *TagRepositoryImpl) DeleteSubTag(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SubTag{}, "id = ?", id).Error
}

func (r *TagRepositoryImpl) DeleteRelationsByMainTag(ctx context.Context, mainTagId uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TagRelation{}, "main_tag_id = ?", mainTagId).Error
}

func (r *TagRepositoryImpl) DeleteRelationsBySubTag(ctx context.Context, subTagId uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TagRelation{}, "sub_tag_id = ?", subTagId).Error
}

func (r *TagRepositoryImpl) FindMainTagById(ctx context.Context, id uuid.UUID) (*entity.MainTag, error) {
	var m model.MainTag
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.MainToEntity(&m), nil
}

func (r *TagRepositoryImpl) FindSubTagById(ctx context.Context, id uuid.UUID) (*entity.SubTag, error) {
	var m model.SubTag
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SubToEntity(&m), nil
}

func (r *TagRepositoryImpl) FindMainTagsByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.MainTag, error) {
	var models []*model.MainTag
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MainToEntities(models), nil
}

func (r *TagRepositoryImpl) FindSubTagsByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.SubTag, error) {
	var models []*model.SubTag
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SubToEntities(models), nil
}

func (r *TagRepositoryImpl) FindRelationsByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.TagRelation, error) {
	var models []*model.TagRelation
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.RelationToEntities(models), nil
}

func (r *TagRepositoryImpl) ExistsMainTagName(ctx context.Context, userId uuid.UUID, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.MainTag{}).
		Where("user_id = ? AND name = ?", userId, name).
		Count(&count).Error
	return count > 0, err
}

func (r *TagRepositoryImpl) ExistsSubTagName(ctx context.Context, userId uuid.UUID, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SubTag{}).
		Where("user_id = ? AND name = ?", userId, name).
		Count(&count).Error
	return count > 0, err
}
