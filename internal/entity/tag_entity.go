package entity

import (
	"time"

	"github.com/google/uuid"
)

type MainTag struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	CreatedAt time.Time
}

type SubTag struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// TagRelation links a main tag to one of its sub tags.
type TagRelation struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	MainTagId uuid.UUID
	SubTagId  uuid.UUID
}
