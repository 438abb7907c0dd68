package pipeline

import (
	"context"

	"github.com/google/uuid"
)

// Session carries one logical session through the pipeline. It is created by
// the extraction stage and enriched in place by the classify and analyze
// stages; the runner persists it afterwards.
type Session struct {
	SessionStart int // 1-based ordinal of the first raw header block
	SessionEnd   int // 1-based ordinal of the last raw header block
	StartOffset  int
	EndOffset    int
	Content      string

	TagId       *uuid.UUID
	SubTagIds   []uuid.UUID
	SubTagNames []string
	Recommends  []string

	ProblemStatement string
	Solution         string
	Status           int
}

// State is the typed context threaded through the ordered stages for one file
// run. Each run owns its own instance; it is never shared across runs.
type State struct {
	UserId          uuid.UUID
	FileId          uuid.UUID
	OriginalContent string
	Sessions        []*Session
}

// Stage is one step of the ordered pipeline. Stages run strictly in sequence
// and mutate the shared State; an error aborts the whole run.
type Stage struct {
	Name string
	Run  func(ctx context.Context, state *State) error
}
