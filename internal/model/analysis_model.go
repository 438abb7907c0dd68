package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AnalysisRecord struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID      `gorm:"type:uuid;not null;index"`
	FileId           uuid.UUID      `gorm:"type:uuid;not null;index"`
	SessionStart     int            `gorm:"not null"`
	SessionEnd       int            `gorm:"not null"`
	StartOffset      int            `gorm:"not null;default:0"`
	EndOffset        int            `gorm:"not null;default:0"`
	SessionContent   string         `gorm:"type:text"`
	TagId            *uuid.UUID     `gorm:"type:uuid;index"`
	SubTagIds        datatypes.JSON `gorm:"type:jsonb"`
	Recommends       datatypes.JSON `gorm:"type:jsonb"`
	ProblemStatement string         `gorm:"type:text"`
	Solution         string         `gorm:"type:text"`
	Status           int            `gorm:"not null;default:0"`
	CreatedAt        time.Time      `gorm:"autoCreateTime;index"`
}

func (AnalysisRecord) TableName() string {
	return "analysis_record"
}
