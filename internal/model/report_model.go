package model

import (
	"time"

	"github.com/google/uuid"
)

type ReportData struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind        int       `gorm:"not null"`
	Content     string    `gorm:"type:text"`
	PeriodStart time.Time `gorm:"not null"`
	PeriodEnd   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (ReportData) TableName() string {
	return "report_data"
}

type SyncRecord struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	SyncCount int       `gorm:"not null"`
	SpendTime float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (SyncRecord) TableName() string {
	return "sync_record"
}
