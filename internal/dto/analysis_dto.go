package dto

import (
	"time"

	"github.com/google/uuid"
)

type RunAnalysisRequest struct {
	FileId uuid.UUID `json:"fileId" validate:"required"`
}

// RunAnalysisResponse acknowledges that a run was accepted; the pipeline
// itself completes asynchronously.
type RunAnalysisResponse struct {
	FileId uuid.UUID `json:"fileId"`
	Status int       `json:"status"`
}

type AnalysisRecordResponse struct {
	Id               uuid.UUID   `json:"id"`
	FileId           uuid.UUID   `json:"fileId"`
	SessionStart     int         `json:"sessionStart"`
	SessionEnd       int         `json:"sessionEnd"`
	StartOffset      int         `json:"startOffset"`
	EndOffset        int         `json:"endOffset"`
	TagId            *uuid.UUID  `json:"tagId,omitempty"`
	TagName          string      `json:"tagName,omitempty"`
	SubTagIds        []uuid.UUID `json:"subTagIds,omitempty"`
	SubTagNames      []string    `json:"subTagNames,omitempty"`
	Recommends       []string    `json:"recommends,omitempty"`
	ProblemStatement string      `json:"problemStatement,omitempty"`
	Solution         string      `json:"solution,omitempty"`
	Status           int         `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// TagUsageResponse is one row of the per-tag record counts shown on the
// dashboard.
type TagUsageResponse struct {
	TagId uuid.UUID `json:"tagId"`
	Name  string    `json:"name"`
	Count int64     `json:"count"`
}
