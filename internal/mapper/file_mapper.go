package mapper

import (
	"review-agent-be/internal/entity"
	"review-agent-be/internal/model"
)

type FileMapper struct{}

func NewFileMapper() *FileMapper {
	return &FileMapper{}
}

func (m *FileMapper) ToEntity(f *model.FileInfo) *entity.FileInfo {
	if f == nil {
		return nil
	}
	updatedAt := f.UpdatedAt
	return &entity.FileInfo{
		Id:        f.Id,
		UserId:    f.UserId,
		FilePath:  f.FilePath,
		FileName:  f.FileName,
		Content:   f.Content,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
		UpdatedAt: &updatedAt,
	}
}

func (m *FileMapper) ToModel(f *entity.FileInfo) *model.FileInfo {
	if f == nil {
		return nil
	}
	out := &model.FileInfo{
		Id:        f.Id,
		UserId:    f.UserId,
		FilePath:  f.FilePath,
		FileName:  f.FileName,
		Content:   f.Content,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
	}
	if f.UpdatedAt != nil {
		out.UpdatedAt = *f.UpdatedAt
	}
	return out
}

func (m *FileMapper) ToEntities(files []*model.FileInfo) []*entity.FileInfo {
	out := make([]*entity.FileInfo, 0, len(files))
	for _, f := range files {
		out = append(out, m.ToEntity(f))
	}
	return out
}
