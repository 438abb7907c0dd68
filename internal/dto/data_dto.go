package dto

import (
	"time"

	"github.com/google/uuid"
)

type ImportFileRequest struct {
	FilePath string `json:"filePath" validate:"required"`
	FileName string `json:"fileName" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

type FileResponse struct {
	Id        uuid.UUID  `json:"id"`
	FilePath  string     `json:"filePath"`
	FileName  string     `json:"fileName"`
	Status    int        `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type SyncResponse struct {
	SyncCount int     `json:"syncCount"`
	SpendTime float64 `json:"spendTime"`
}
