package model

import (
	"time"

	"github.com/google/uuid"
)

type MainTag struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_main_tag_user_name,priority:1"`
	Name      string    `gorm:"type:varchar(100);not null;index:idx_main_tag_user_name,priority:2,unique"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (MainTag) TableName() string {
	return "main_tag"
}

type SubTag struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_sub_tag_user_name,priority:1"`
	Name      string    `gorm:"type:varchar(100);not null;index:idx_sub_tag_user_name,priority:2,unique"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (SubTag) TableName() string {
	return "sub_tag"
}

type TagRelation struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	MainTagId uuid.UUID `gorm:"type:uuid;not null;index"`
	SubTagId  uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (TagRelation) TableName() string {
	return "tag_relation"
}
