package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is one analyzed session persisted after a pipeline run.
// SessionStart/SessionEnd are the 1-based ordinals of the raw header blocks the
// session spans; StartOffset/EndOffset are the resolved character offsets.
type AnalysisRecord struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	FileId           uuid.UUID
	SessionStart     int
	SessionEnd       int
	StartOffset      int
	EndOffset        int
	SessionContent   string
	TagId            *uuid.UUID
	SubTagIds        []uuid.UUID
	Recommends       []string
	ProblemStatement string
	Solution         string
	Status           int
	CreatedAt        time.Time
}
