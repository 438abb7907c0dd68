package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"review-agent-be/internal/constant"
	"review-agent-be/internal/entity"
	"review-agent-be/internal/pkg/logger"
	"review-agent-be/pkg/llm"
	"review-agent-be/pkg/llm/gateway"
	"review-agent-be/pkg/pipeline/prompt"
	"review-agent-be/pkg/pipeline/taxonomy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const logFixture = `# 2026-03-01 09:00:00
Investigated slow queries on the orders table.
# 2026-03-01 09:40:00
Added the missing composite index.
# 2026-03-02 14:00:00
Thinking about how the cache layer should evolve.
`

// scriptedProvider replays a fixed sequence of replies, one per model call.
type scriptedProvider struct {
	mu      sync.Mutex
	replies []string
	calls   int
}

func (p *scriptedProvider) next() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if len(p.replies) == 0 {
		return ""
	}
	reply := p.replies[0]
	p.replies = p.replies[1:]
	return reply
}

func (p *scriptedProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	return p.next(), nil
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.next(), nil
}

// fakeTagRepo serves a fixed two-level taxonomy for one user.
type fakeTagRepo struct {
	userId    uuid.UUID
	mains     []*entity.MainTag
	subs      []*entity.SubTag
	relations []*entity.TagRelation
}

func (f *fakeTagRepo) CreateMainTag(ctx context.Context, tag *entity.MainTag) error      { return nil }
func (f *fakeTagRepo) CreateSubTag(ctx context.Context, tag *entity.SubTag) error        { return nil }
func (f *fakeTagRepo) CreateRelation(ctx context.Context, rel *entity.TagRelation) error { return nil }
func (f *fakeTagRepo) DeleteMainTag(ctx context.Context, id uuid.UUID) error             { return nil }
func (f *fakeTagRepo) DeleteSubTag(ctx context.Context, id uuid.UUID) error              { return nil }
func (f *fakeTagRepo) DeleteRelationsByMainTag(ctx context.Context, id uuid.UUID) error  { return nil }
func (f *fakeTagRepo) DeleteRelationsBySubTag(ctx context.Context, id uuid.UUID) error   { return nil }

func (f *fakeTagRepo) FindMainTagById(ctx context.Context, id uuid.UUID) (*entity.MainTag, error) {
	return nil, nil
}

func (f *fakeTagRepo) FindSubTagById(ctx context.Context, id uuid.UUID) (*entity.SubTag, error) {
	return nil, nil
}

func (f *fakeTagRepo) FindMainTagsByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.MainTag, error) {
	return f.mains, nil
}

func (f *fakeTagRepo) FindSubTagsByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.SubTag, error) {
	return f.subs, nil
}

func (f *fakeTagRepo) FindRelationsByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.TagRelation, error) {
	return f.relations, nil
}

func (f *fakeTagRepo) ExistsMainTagName(ctx context.Context, userId uuid.UUID, name string) (bool, error) {
	return false, nil
}

func (f *fakeTagRepo) ExistsSubTagName(ctx context.Context, userId uuid.UUID, name string) (bool, error) {
	return false, nil
}

func newFakeTagRepo(userId uuid.UUID) (*fakeTagRepo, map[string]uuid.UUID) {
	ids := map[string]uuid.UUID{
		"Performance": uuid.New(),
		"Indexing":    uuid.New(),
		"Thinking":    uuid.New(),
	}
	repo := &fakeTagRepo{
		userId: userId,
		mains:  []*entity.MainTag{{Id: ids["Performance"], UserId: userId, Name: "Performance"}},
		subs: []*entity.SubTag{
			{Id: ids["Indexing"], UserId: userId, Name: "Indexing"},
			{Id: ids["Thinking"], UserId: userId, Name: "Thinking"},
		},
		relations: []*entity.TagRelation{
			{Id: uuid.New(), UserId: userId, MainTagId: ids["Performance"], SubTagId: ids["Indexing"]},
			{Id: uuid.New(), UserId: userId, MainTagId: ids["Performance"], SubTagId: ids["Thinking"]},
		},
	}
	return repo, ids
}

func newExecutor(replies []string, userId uuid.UUID) (*Executor, *scriptedProvider, map[string]uuid.UUID) {
	provider := &scriptedProvider{replies: replies}
	repo, ids := newFakeTagRepo(userId)
	gw := gateway.New(provider, time.Minute)
	exec := NewExecutor(gw, prompt.NewCatalog(), taxonomy.NewBuilder(repo), logger.NewNopLogger())
	return exec, provider, ids
}

func TestExecuteFullRun(t *testing.T) {
	userId := uuid.New()
	// Call order: extraction, then classify+analyze per session. The model
	// groups blocks 1-2 into one logical session and leaves block 3 alone.
	exec, provider, ids := newExecutor([]string{
		`[{"startIndex":1,"endIndex":2},{"startIndex":3,"endIndex":3}]`,
		`{"category":"Performance","subCategory":["Indexing"],"recommends":["add covering index"]}`,
		`{"category":"Performance","subCategory":["Thinking"],"recommends":[]}`,
		`{"problem":"Slow order queries","analysisReport":"The missing composite index caused full scans."}`,
		`{"problem":"Cache layer direction","analysisReport":"Exploration of cache eviction strategies."}`,
	}, userId)

	state := &State{UserId: userId, FileId: uuid.New(), OriginalContent: logFixture}
	require.NoError(t, exec.Execute(context.Background(), state))
	require.Len(t, state.Sessions, 2)
	assert.Equal(t, 5, provider.calls)

	first := state.Sessions[0]
	assert.Equal(t, 1, first.SessionStart)
	assert.Equal(t, 2, first.SessionEnd)
	assert.Contains(t, first.Content, "slow queries")
	assert.Contains(t, first.Content, "composite index")
	require.NotNil(t, first.TagId)
	assert.Equal(t, ids["Performance"], *first.TagId)
	assert.Equal(t, []uuid.UUID{ids["Indexing"]}, first.SubTagIds)
	assert.Equal(t, "Slow order queries", first.ProblemStatement)
	assert.Equal(t, constant.SessionStatusProcessed, first.Status)

	second := state.Sessions[1]
	assert.Equal(t, 3, second.SessionStart)
	assert.Equal(t, 3, second.SessionEnd)
	assert.Equal(t, []string{"Thinking"}, second.SubTagNames)
	assert.Equal(t, constant.SessionStatusProcessed, second.Status)
}

func TestExecuteFallsBackToRawBlocks(t *testing.T) {
	userId := uuid.New()
	// Extraction reply is unusable; every header block becomes its own session.
	exec, _, _ := newExecutor([]string{
		`I cannot produce ranges for this.`,
		`{"category":"","subCategory":[],"recommends":[]}`,
		`{"category":"","subCategory":[],"recommends":[]}`,
		`{"category":"","subCategory":[],"recommends":[]}`,
		`{"problem":"p1","analysisReport":"r1"}`,
		`{"problem":"p2","analysisReport":"r2"}`,
		`{"problem":"p3","analysisReport":"r3"}`,
	}, userId)

	state := &State{UserId: userId, FileId: uuid.New(), OriginalContent: logFixture}
	require.NoError(t, exec.Execute(context.Background(), state))
	require.Len(t, state.Sessions, 3)
	for i, session := range state.Sessions {
		assert.Equal(t, i+1, session.SessionStart)
		assert.Equal(t, i+1, session.SessionEnd)
		assert.Equal(t, constant.SessionStatusProcessed, session.Status)
	}
}

func TestExecuteFailedAnalysisKeepsErrorStatus(t *testing.T) {
	userId := uuid.New()
	exec, _, _ := newExecutor([]string{
		`[{"startIndex":1,"endIndex":2},{"startIndex":3,"endIndex":3}]`,
		`{"category":"Performance","subCategory":["Indexing"],"recommends":[]}`,
		`{"category":"Performance","subCategory":[],"recommends":[]}`,
		`{"problem":"Slow order queries","analysisReport":"Index fixed it."}`,
		``, // analysis of the second session yields nothing
	}, userId)

	state := &State{UserId: userId, FileId: uuid.New(), OriginalContent: logFixture}
	require.NoError(t, exec.Execute(context.Background(), state))
	require.Len(t, state.Sessions, 2)
	assert.Equal(t, constant.SessionStatusProcessed, state.Sessions[0].Status)
	assert.Equal(t, constant.SessionStatusError, state.Sessions[1].Status)
	assert.Empty(t, state.Sessions[1].Solution)
}

func TestExecuteNoHeadersIsOneImplicitSession(t *testing.T) {
	userId := uuid.New()
	exec, _, _ := newExecutor([]string{
		`[]`,
		`{"category":"","subCategory":[],"recommends":[]}`,
		`{"problem":"p","analysisReport":"r"}`,
	}, userId)

	state := &State{UserId: userId, FileId: uuid.New(), OriginalContent: "free-form notes without any header"}
	require.NoError(t, exec.Execute(context.Background(), state))
	require.Len(t, state.Sessions, 1)
	assert.Equal(t, 1, state.Sessions[0].SessionStart)
	assert.Equal(t, constant.SessionStatusProcessed, state.Sessions[0].Status)
}

func TestExecuteEmptyContentYieldsNoSessions(t *testing.T) {
	userId := uuid.New()
	exec, provider, _ := newExecutor(nil, userId)

	state := &State{UserId: userId, FileId: uuid.New(), OriginalContent: "   \n"}
	require.NoError(t, exec.Execute(context.Background(), state))
	assert.Empty(t, state.Sessions)
	assert.Zero(t, provider.calls)
}
