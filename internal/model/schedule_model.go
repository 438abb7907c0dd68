package model

import (
	"time"

	"github.com/google/uuid"
)

type UserScheduleConfig struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId              uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	ScanDirectory       string    `gorm:"type:varchar(1024)"`
	AutoScanEnabled     bool      `gorm:"not null;default:false"`
	ScanIntervalSeconds int       `gorm:"not null;default:3600"`
	DailyEnabled        bool      `gorm:"not null;default:false"`
	DailyCron           string    `gorm:"type:varchar(64)"`
	WeeklyEnabled       bool      `gorm:"not null;default:false"`
	WeeklyCron          string    `gorm:"type:varchar(64)"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (UserScheduleConfig) TableName() string {
	return "user_schedule_config"
}
