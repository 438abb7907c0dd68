package taxonomy

import (
	"context"
	"strings"
	"testing"

	"review-agent-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTagRepo struct {
	mains     []*entity.MainTag
	subs      []*entity.SubTag
	relations []*entity.TagRelation
	calls     int
}

func (f *fakeTagRepo) CreateMainTag(ctx context.Context, tag *entity.MainTag) error     { return nil }
func (f *fakeTagRepo) CreateSubTag(ctx context.Context, tag *entity.SubTag) error       { return nil }
func (f *fakeTagRepo) CreateRelation(ctx context.Context, rel *entity.TagRelation) error { return nil }
func (f *fakeTagRepo) DeleteMainTag(ctx context.Context, id uuid.UUID) error            { return nil }
func (f *fakeTagRepo) DeleteSubTag(ctx context.Context, id uuid.UUID) error             { return nil }
func (f *fakeTagRepo) DeleteRelationsByMainTag(ctx context.Context, mainTagId uuid.UUID) error {
	return nil
}
func (f *fakeTagRepo) DeleteRelationsBySubTag(ctx context.Context, subTagId uuid.UUID) error {
	return nil
}
func (f *fakeTagRepo) FindMainTagById(ctx context.Context, id uuid.UUID) (*entity.MainTag, error) {
	return nil, nil
}
func (f *fakeTagRepo) FindSubTagById(ctx context.Context, id uuid.UUID) (*entity.SubTag, error) {
	return nil, nil
}
func (f *fakeTagRepo) FindMainTagsByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.MainTag, error) {
	f.calls++
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

func buildFixture(userId uuid.UUID) *fakeTagRepo {
	perf := &entity.MainTag{Id: uuid.New(), UserId: userId, Name: "Performance"}
	arch := &entity.MainTag{Id: uuid.New(), UserId: userId, Name: "Architecture"}
	gc := &entity.SubTag{Id: uuid.New(), UserId: userId, Name: "GC Tuning"}
	idx := &entity.SubTag{Id: uuid.New(), UserId: userId, Name: "Indexing"}
	return &fakeTagRepo{
		mains: []*entity.MainTag{perf, arch},
		subs:  []*entity.SubTag{gc, idx},
		relations: []*entity.TagRelation{
			{Id: uuid.New(), UserId: userId, MainTagId: perf.Id, SubTagId: gc.Id},
			{Id: uuid.New(), UserId: userId, MainTagId: perf.Id, SubTagId: idx.Id},
		},
	}
}

func TestBuildPromptListsMainTagsWithTheirSubTags(t *testing.T) {
	userId := uuid.New()
	repo := buildFixture(userId)
	b := NewBuilder(repo)

	idx, err := b.Build(context.Background(), userId)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(idx.Prompt, "\n"), "\n")
	require.Equal(t, []string{
		"Performance",
		"  - GC Tuning",
		"  - Indexing",
		"Architecture",
	}, lines)
}

func TestBuildNameToIdCoversBothLevels(t *testing.T) {
	userId := uuid.New()
	repo := buildFixture(userId)
	b := NewBuilder(repo)

	idx, err := b.Build(context.Background(), userId)
	require.NoError(t, err)

	assert.Len(t, idx.NameToId, 4)
	assert.Equal(t, repo.mains[0].Id, idx.NameToId["Performance"])
	assert.Equal(t, repo.subs[0].Id, idx.NameToId["GC Tuning"])
}

func TestBuildRejectsDuplicateNamesAcrossLevels(t *testing.T) {
	userId := uuid.New()
	repo := buildFixture(userId)
	repo.subs = append(repo.subs, &entity.SubTag{Id: uuid.New(), UserId: userId, Name: "Performance"})
	b := NewBuilder(repo)

	_, err := b.Build(context.Background(), userId)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate tag name")
}

func TestBuildCachesUntilInvalidated(t *testing.T) {
	userId := uuid.New()
	repo := buildFixture(userId)
	b := NewBuilder(repo)

	_, err := b.Build(context.Background(), userId)
	require.NoError(t, err)
	_, err = b.Build(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls, "second build should hit the cache")

	b.Invalidate(userId)
	_, err = b.Build(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}
