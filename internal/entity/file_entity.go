package entity

import (
	"time"

	"github.com/google/uuid"
)

// FileInfo is one synced or uploaded session-log file. Status values live in
// internal/constant (NotProcessed/Processing/Processed/Updated/Error).
type FileInfo struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	FilePath  string
	FileName  string
	Content   string
	Status    int
	CreatedAt time.Time
	UpdatedAt *time.Time
}
