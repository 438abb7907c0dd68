package contract

import (
	"context"

	"review-agent-be/internal/entity"

	"github.com/google/uuid"
)

type FileRepository interface {
	Create(ctx context.Context, file *entity.FileInfo) error
	Update(ctx context.Context, file *entity.FileInfo) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.FileInfo, error)
	FindByPath(ctx context.Context, filePath string) (*entity.FileInfo, error)
	FindAllByUserId(ctx context.Context, userId uuid.UUID, status *int) ([]*entity.FileInfo, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status int) error
}
