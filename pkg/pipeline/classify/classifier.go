package classify

import (
	"context"

	"review-agent-be/internal/pkg/logger"
	"review-agent-be/pkg/llm"
	"review-agent-be/pkg/llm/gateway"
	"review-agent-be/pkg/pipeline/prompt"
	"review-agent-be/pkg/pipeline/taxonomy"

	"github.com/google/uuid"
)

// Result is a resolved classification: taxonomy ids instead of the free-form
// names the model replied with.
type Result struct {
	TagId       *uuid.UUID
	SubTagIds   []uuid.UUID
	SubTagNames []string
	Recommends  []string
}

type classifyReply struct {
	Category    string   `json:"category"`
	SubCategory []string `json:"subCategory"`
	Recommends  []string `json:"recommends"`
}

var classifySchema = llm.GenerateSchema[classifyReply]()

type Classifier struct {
	gateway *gateway.Gateway
	prompts *prompt.Catalog
	logger  logger.ILogger
}

func NewClassifier(gw *gateway.Gateway, prompts *prompt.Catalog, log logger.ILogger) *Classifier {
	return &Classifier{gateway: gw, prompts: prompts, logger: log}
}

// Classify asks the model to pick one main category, sub-categories and
// recommendation keywords for a session, then resolves the names via the
// taxonomy index. Names the model invented outside the taxonomy are dropped
// silently. Returns ok=false when the model produced no usable result; the
// session then stays unclassified, which is not an error.
func (c *Classifier) Classify(ctx context.Context, sessionContent string, idx *taxonomy.Index) (*Result, bool) {
	systemPrompt, err := c.prompts.Build(prompt.Classify, map[string]string{"categories": idx.Prompt})
	if err != nil {
		c.logger.Error("classify", "build classify prompt", map[string]interface{}{"error": err.Error()})
		return nil, false
	}

	var reply classifyReply
	ok, err := c.gateway.CompleteInto(ctx, systemPrompt, sessionContent, &reply,
		llm.WithResponseSchema("SessionClassification", classifySchema))
	if err != nil {
		c.logger.Warn("classify", "model call failed", map[string]interface{}{"error": err.Error()})
		return nil, false
	}
	if !ok {
		c.logger.Info("classify", "model returned no classification", nil)
		return nil, false
	}

	result := &Result{Recommends: reply.Recommends}
	if id, found := idx.NameToId[reply.Category]; found {
		result.TagId = &id
	}
	for _, name := range reply.SubCategory {
		id, found := idx.NameToId[name]
		if !found {
			continue
		}
		if containsId(result.SubTagIds, id) {
			continue
		}
		result.SubTagIds = append(result.SubTagIds, id)
		result.SubTagNames = append(result.SubTagNames, name)
	}
	return result, true
}

func containsId(ids []uuid.UUID, id uuid.UUID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
