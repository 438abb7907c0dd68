package model

import (
	"time"

	"github.com/google/uuid"
)

type FileInfo struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	FilePath  string    `gorm:"type:varchar(1024);uniqueIndex;not null"`
	FileName  string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text"`
	Status    int       `gorm:"not null;default:0;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (FileInfo) TableName() string {
	return "file_info"
}
