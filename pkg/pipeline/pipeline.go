package pipeline

import (
	"context"
	"fmt"

	"review-agent-be/internal/constant"
	"review-agent-be/internal/pkg/logger"
	"review-agent-be/pkg/llm/gateway"
	"review-agent-be/pkg/pipeline/analyze"
	"review-agent-be/pkg/pipeline/classify"
	"review-agent-be/pkg/pipeline/prompt"
	"review-agent-be/pkg/pipeline/segment"
	"review-agent-be/pkg/pipeline/taxonomy"
)

// Executor runs the three-stage analysis pipeline over one file:
// session extraction, tag classification, deep analysis. Stages run strictly
// in order on a typed State; only infrastructure failures (taxonomy load,
// prompt catalog) abort a run, per-session model failures never do.
type Executor struct {
	segmenter  *segment.Segmenter
	gateway    *gateway.Gateway
	prompts    *prompt.Catalog
	taxonomy   *taxonomy.Builder
	classifier *classify.Classifier
	analyzer   *analyze.Analyzer
	logger     logger.ILogger
}

func NewExecutor(
	gw *gateway.Gateway,
	prompts *prompt.Catalog,
	taxonomyBuilder *taxonomy.Builder,
	log logger.ILogger,
) *Executor {
	return &Executor{
		segmenter:  segment.NewSegmenter(),
		gateway:    gw,
		prompts:    prompts,
		taxonomy:   taxonomyBuilder,
		classifier: classify.NewClassifier(gw, prompts, log),
		analyzer:   analyze.NewAnalyzer(gw, prompts, log),
		logger:     log,
	}
}

func (e *Executor) stages() []Stage {
	return []Stage{
		{Name: "session-extraction", Run: e.runExtraction},
		{Name: "tag-classification", Run: e.runClassification},
		{Name: "session-analysis", Run: e.runAnalysis},
	}
}

// Execute runs all stages in order, mutating state in place.
func (e *Executor) Execute(ctx context.Context, state *State) error {
	for _, stage := range e.stages() {
		e.logger.Info("pipeline", "stage start", map[string]interface{}{
			"stage":    stage.Name,
			"fileId":   state.FileId.String(),
			"sessions": len(state.Sessions),
		})
		if err := stage.Run(ctx, state); err != nil {
			return fmt.Errorf("pipeline stage %s: %w", stage.Name, err)
		}
	}
	return nil
}

type ordinalRange struct {
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`
}

// runExtraction asks the model to group raw header blocks into logical
// sessions as ordinal ranges, then resolves each range back to offsets and
// content. When the model yields nothing usable, every raw block becomes its
// own session, so a silent model never loses data.
func (e *Executor) runExtraction(ctx context.Context, state *State) error {
	blocks := e.segmenter.Segment(state.OriginalContent)
	if len(blocks) == 0 {
		return nil
	}

	systemPrompt, err := e.prompts.Get(prompt.SessionExtraction)
	if err != nil {
		return err
	}

	// No response schema here: the reply is a bare JSON array and strict
	// structured output only accepts object roots.
	var ranges []ordinalRange
	ok, err := e.gateway.CompleteInto(ctx, systemPrompt, state.OriginalContent, &ranges)
	if err != nil {
		e.logger.Warn("pipeline", "session extraction call failed, falling back to raw blocks", map[string]interface{}{
			"fileId": state.FileId.String(),
			"error":  err.Error(),
		})
	}
	if ok {
		for _, r := range ranges {
			span := e.segmenter.ResolveRange(state.OriginalContent, r.StartIndex, r.EndIndex)
			if span.Content == "" {
				continue
			}
			state.Sessions = append(state.Sessions, &Session{
				SessionStart: r.StartIndex,
				SessionEnd:   r.EndIndex,
				StartOffset:  span.StartOffset,
				EndOffset:    span.EndOffset,
				Content:      span.Content,
				Status:       constant.SessionStatusError,
			})
		}
	}

	if len(state.Sessions) == 0 {
		for _, b := range blocks {
			state.Sessions = append(state.Sessions, &Session{
				SessionStart: b.Ordinal,
				SessionEnd:   b.Ordinal,
				StartOffset:  b.StartOffset,
				EndOffset:    b.EndOffset,
				Content:      b.Content,
				Status:       constant.SessionStatusError,
			})
		}
	}
	return nil
}

// runClassification tags each session against the user's taxonomy. A session
// the model cannot classify simply stays untagged.
func (e *Executor) runClassification(ctx context.Context, state *State) error {
	if len(state.Sessions) == 0 {
		return nil
	}
	idx, err := e.taxonomy.Build(ctx, state.UserId)
	if err != nil {
		return fmt.Errorf("load taxonomy: %w", err)
	}
	for _, session := range state.Sessions {
		result, ok := e.classifier.Classify(ctx, session.Content, idx)
		if !ok {
			continue
		}
		session.TagId = result.TagId
		session.SubTagIds = result.SubTagIds
		session.SubTagNames = result.SubTagNames
		session.Recommends = result.Recommends
	}
	return nil
}

// runAnalysis produces the deep analysis per session. Success marks the
// session processed; a failed session keeps its error status and the batch
// continues.
func (e *Executor) runAnalysis(ctx context.Context, state *State) error {
	for _, session := range state.Sessions {
		result, ok := e.analyzer.Analyze(ctx, session.Content, session.SubTagNames)
		if !ok {
			e.logger.Warn("pipeline", "session analysis produced no result", map[string]interface{}{
				"fileId":       state.FileId.String(),
				"sessionStart": session.SessionStart,
			})
			continue
		}
		session.ProblemStatement = result.ProblemStatement
		session.Solution = result.Solution
		session.Status = constant.SessionStatusProcessed
	}
	return nil
}
