package mapper

import (
	"review-agent-be/internal/entity"
	"review-agent-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.UserInfo) *entity.UserInfo {
	if u == nil {
		return nil
	}
	updatedAt := u.UpdatedAt
	return &entity.UserInfo{
		Id:        u.Id,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: &updatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.UserInfo) *model.UserInfo {
	if u == nil {
		return nil
	}
	out := &model.UserInfo{
		Id:        u.Id,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
	if u.UpdatedAt != nil {
		out.UpdatedAt = *u.UpdatedAt
	}
	return out
}
