package contract

import (
	"context"

	"review-agent-be/internal/entity"

	"github.com/google/uuid"
)

type TagRepository interface {
	CreateMainTag(ctx context.Context, tag *entity.MainTag) error
	CreateSubTag(ctx context.Context, tag *entity.SubTag) error
	CreateRelation(ctx context.Context, rel *entity.TagRelation) error

	DeleteMainTag(ctx context.Context, id uuid.UUID) error
	DeleteSubTag(ctx context.Context, id uuid.UUID) error
	DeleteRelationsByMainTag(ctx context.Context, mainTagId uuid.UUID) error
	DeleteRelationsBySubTag(ctx context.Context, subTagId uuid.UUID) error

	FindMainTagById(ctx context.Context, id uuid.UUID) (*entity.MainTag, error)
	FindSubTagById(ctx context.Context, id uuid.UUID) (*entity.SubTag, error)
	FindMainTagsByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.MainTag, error)
	FindSubTagsByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.SubTag, error)
	FindRelationsByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.TagRelation, error)

	ExistsMainTagName(ctx context.Context, userId uuid.UUID, name string) (bool, error)
	ExistsSubTagName(ctx context.Context, userId uuid.UUID, name string) (bool, error)
}
