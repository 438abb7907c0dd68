package mapper

import (
	"review-agent-be/internal/entity"
	"review-agent-be/internal/model"
)

type TagMapper struct{}

func NewTagMapper() *TagMapper {
	return &TagMapper{}
}

func (m *TagMapper) MainToEntity(t *model.MainTag) *entity.MainTag {
	if t == nil {
		return nil
	}
	return &entity.MainTag{Id: t.Id, UserId: t.UserId, Name: t.Name, CreatedAt: t.CreatedAt}
}

func (m *TagMapper) MainToModel(t *entity.MainTag) *model.MainTag {
	if t == nil {
		return nil
	}
	return &model.MainTag{Id: t.Id, UserId: t.UserId, Name: t.Name, CreatedAt: t.CreatedAt}
}

func (m *TagMapper) MainToEntities(tags []*model.MainTag) []*entity.MainTag {
	out := make([]*entity.MainTag, 0, len(tags))
	for _, t := range tags {
		out = append(out, m.MainToEntity(t))
	}
	return out
}

func (m *TagMapper) SubToEntity(t *model.SubTag) *entity.SubTag {
	if t == nil {
		return nil
	}
	return &entity.SubTag{Id: t.Id, UserId: t.UserId, Name: t.Name, CreatedAt: t.CreatedAt}
}

func (m *TagMapper) SubToModel(t *entity.SubTag) *model.SubTag {
	if t == nil {
		return nil
	}
	return &model.SubTag{Id: t.Id, UserId: t.UserId, Name: t.Name, CreatedAt: t.CreatedAt}
}

func (m *TagMapper) SubToEntities(tags []*model.SubTag) []*entity.SubTag {
	out := make([]*entity.SubTag, 0, len(tags))
	for _, t := range tags {
		out = append(out, m.SubToEntity(t))
	}
	return out
}

func (m *TagMapper) RelationToEntity(r *model.TagRelation) *entity.TagRelation {
	if r == nil {
		return nil
	}
	return &entity.TagRelation{Id: r.Id, UserId: r.UserId, MainTagId: r.MainTagId, SubTagId: r.SubTagId}
}

func (m *TagMapper) RelationToModel(r *entity.TagRelation) *model.TagRelation {
	if r == nil {
		return nil
	}
	return &model.TagRelation{Id: r.Id, UserId: r.UserId, MainTagId: r.MainTagId, SubTagId: r.SubTagId}
}

func (m *TagMapper) RelationToEntities(rels []*model.TagRelation) []*entity.TagRelation {
	out := make([]*entity.TagRelation, 0, len(rels))
	for _, r := range rels {
		out = append(out, m.RelationToEntity(r))
	}
	return out
}
