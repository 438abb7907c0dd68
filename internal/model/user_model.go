package model

import (
	"time"

	"github.com/google/uuid"
)

type UserInfo struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email     string    `gorm:"type:varchar(255)"`
	Avatar    string    `gorm:"type:varchar(512)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserInfo) TableName() string {
	return "user_info"
}
