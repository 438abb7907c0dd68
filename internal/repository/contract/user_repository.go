package contract

import (
	"context"

	"review-agent-be/internal/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.UserInfo) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.UserInfo, error)
	FindByUsername(ctx context.Context, username string) (*entity.UserInfo, error)
}
