package classify

import (
	"context"
	"errors"
	"testing"
	"time"

	"review-agent-be/internal/pkg/logger"
	"review-agent-be/pkg/llm"
	"review-agent-be/pkg/llm/gateway"
	"review-agent-be/pkg/pipeline/prompt"
	"review-agent-be/pkg/pipeline/taxonomy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.reply, s.err
}

func newClassifier(reply string, err error) *Classifier {
	gw := gateway.New(&stubProvider{reply: reply, err: err}, time.Minute)
	return NewClassifier(gw, prompt.NewCatalog(), logger.NewNopLogger())
}

func testIndex() (*taxonomy.Index, map[string]uuid.UUID) {
	ids := map[string]uuid.UUID{
		"Performance": uuid.New(),
		"GC Tuning":   uuid.New(),
		"Indexing":    uuid.New(),
	}
	idx := &taxonomy.Index{
		UserId:   uuid.New(),
		Prompt:   "Performance\n  - GC Tuning\n  - Indexing",
		NameToId: ids,
		SubTagById: map[uuid.UUID]string{
			ids["GC Tuning"]: "GC Tuning",
			ids["Indexing"]:  "Indexing",
		},
	}
	return idx, ids
}

func TestClassifyResolvesNamesToIds(t *testing.T) {
	idx, ids := testIndex()
	c := newClassifier(`{"category":"Performance","subCategory":["GC Tuning","Indexing"],"recommends":["profile allocations"]}`, nil)

	result, ok := c.Classify(context.Background(), "session text", idx)
	require.True(t, ok)
	require.NotNil(t, result.TagId)
	assert.Equal(t, ids["Performance"], *result.TagId)
	assert.Equal(t, []uuid.UUID{ids["GC Tuning"], ids["Indexing"]}, result.SubTagIds)
	assert.Equal(t, []string{"GC Tuning", "Indexing"}, result.SubTagNames)
	assert.Equal(t, []string{"profile allocations"}, result.Recommends)
}

func TestClassifyDropsUnknownNames(t *testing.T) {
	idx, ids := testIndex()
	c := newClassifier(`{"category":"Made Up","subCategory":["Indexing","Also Invented"],"recommends":[]}`, nil)

	result, ok := c.Classify(context.Background(), "session text", idx)
	require.True(t, ok)
	assert.Nil(t, result.TagId)
	assert.Equal(t, []uuid.UUID{ids["Indexing"]}, result.SubTagIds)
	assert.Equal(t, []string{"Indexing"}, result.SubTagNames)
}

func TestClassifyDeduplicatesSubTags(t *testing.T) {
	idx, ids := testIndex()
	c := newClassifier(`{"category":"Performance","subCategory":["Indexing","Indexing"],"recommends":[]}`, nil)

	result, ok := c.Classify(context.Background(), "session text", idx)
	require.True(t, ok)
	assert.Equal(t, []uuid.UUID{ids["Indexing"]}, result.SubTagIds)
}

func TestClassifyEmptyReplyIsNotAnError(t *testing.T) {
	idx, _ := testIndex()

	result, ok := newClassifier("", nil).Classify(context.Background(), "session text", idx)
	assert.False(t, ok)
	assert.Nil(t, result)
}

func TestClassifyUndecodableReplyIsNotAnError(t *testing.T) {
	idx, _ := testIndex()

	result, ok := newClassifier("I could not decide on a category.", nil).Classify(context.Background(), "session text", idx)
	assert.False(t, ok)
	assert.Nil(t, result)
}

func TestClassifyProviderFailureIsNotFatal(t *testing.T) {
	idx, _ := testIndex()

	result, ok := newClassifier("", errors.New("connection refused")).Classify(context.Background(), "session text", idx)
	assert.False(t, ok)
	assert.Nil(t, result)
}
