package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserInfo struct {
	Id        uuid.UUID
	Username  string
	Email     string
	Avatar    string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
