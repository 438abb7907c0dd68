package analyze

import (
	"context"
	"strings"

	"review-agent-be/internal/pkg/logger"
	"review-agent-be/pkg/llm"
	"review-agent-be/pkg/llm/gateway"
	"review-agent-be/pkg/pipeline/prompt"
)

// Result holds the model's deep analysis of one session.
type Result struct {
	ProblemStatement string
	Solution         string
}

type analysisReply struct {
	Problem        string `json:"problem"`
	AnalysisReport string `json:"analysisReport"`
}

var analysisSchema = llm.GenerateSchema[analysisReply]()

type Analyzer struct {
	gateway *gateway.Gateway
	prompts *prompt.Catalog
	logger  logger.ILogger
}

func NewAnalyzer(gw *gateway.Gateway, prompts *prompt.Catalog, log logger.ILogger) *Analyzer {
	return &Analyzer{gateway: gw, prompts: prompts, logger: log}
}

// SelectVariant picks the analysis prompt from the session's sub-tag names.
// Matching is a case-insensitive substring check; "thinking" wins over "bug",
// and anything else falls through to the default prompt.
func SelectVariant(subTagNames []string) string {
	hasBug := false
	for _, name := range subTagNames {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "thinking") {
			return prompt.AnalysisThinking
		}
		if strings.Contains(lower, "bug") {
			hasBug = true
		}
	}
	if hasBug {
		return prompt.AnalysisBug
	}
	return prompt.AnalysisDefault
}

// Analyze runs the selected analysis prompt over one session's content.
// Returns ok=false when the model produced no usable result; the caller marks
// the session as failed and moves on, one bad session never aborts the batch.
func (a *Analyzer) Analyze(ctx context.Context, sessionContent string, subTagNames []string) (*Result, bool) {
	variant := SelectVariant(subTagNames)
	systemPrompt, err := a.prompts.Get(variant)
	if err != nil {
		a.logger.Error("analyze", "load analysis prompt", map[string]interface{}{
			"variant": variant,
			"error":   err.Error(),
		})
		return nil, false
	}

	var reply analysisReply
	ok, err := a.gateway.CompleteInto(ctx, systemPrompt, sessionContent, &reply,
		llm.WithResponseSchema("SessionAnalysis", analysisSchema))
	if err != nil {
		a.logger.Warn("analyze", "model call failed", map[string]interface{}{
			"variant": variant,
			"error":   err.Error(),
		})
		return nil, false
	}
	if !ok || strings.TrimSpace(reply.AnalysisReport) == "" {
		a.logger.Info("analyze", "model returned no analysis", map[string]interface{}{"variant": variant})
		return nil, false
	}
	return &Result{ProblemStatement: reply.Problem, Solution: reply.AnalysisReport}, true
}
