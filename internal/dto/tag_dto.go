package dto

import (
	"github.com/google/uuid"
)

type CreateMainTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=128"`
}

type CreateSubTagRequest struct {
	Name      string    `json:"name" validate:"required,min=1,max=128"`
	MainTagId uuid.UUID `json:"mainTagId" validate:"required"`
}

type CreateTagResponse struct {
	Id uuid.UUID `json:"id"`
}

type SubTagResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TagTreeResponse is one main tag with its linked sub tags.
type TagTreeResponse struct {
	Id      uuid.UUID         `json:"id"`
	Name    string            `json:"name"`
	SubTags []*SubTagResponse `json:"subTags"`
}
