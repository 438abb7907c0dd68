package service

import (
	"context"
	"testing"

	"review-agent-be/internal/constant"
	"review-agent-be/internal/dto"
	"review-agent-be/internal/entity"
	"review-agent-be/pkg/pipeline/taxonomy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTagService(tags *fakeTagRepo, analyses *fakeAnalysisRepo) ITagService {
	return NewTagService(tags, analyses, taxonomy.NewBuilder(tags))
}

func TestTagNamesShareOneNamespace(t *testing.T) {
	tags := newFakeTagRepo()
	svc := newTagService(tags, &fakeAnalysisRepo{})
	userId := uuid.New()

	main, err := svc.CreateMainTag(context.Background(), userId, &dto.CreateMainTagRequest{Name: "Performance"})
	require.NoError(t, err)

	_, err = svc.CreateSubTag(context.Background(), userId, &dto.CreateSubTagRequest{
		Name: "Indexing", MainTagId: main.Id,
	})
	require.NoError(t, err)

	// A sub-tag name blocks a new main tag and vice versa.
	_, err = svc.CreateMainTag(context.Background(), userId, &dto.CreateMainTagRequest{Name: "Indexing"})
	require.ErrorIs(t, err, constant.ErrConflict)

	_, err = svc.CreateSubTag(context.Background(), userId, &dto.CreateSubTagRequest{
		Name: "Performance", MainTagId: main.Id,
	})
	require.ErrorIs(t, err, constant.ErrConflict)
}

func TestCreateSubTagRequiresOwnMainTag(t *testing.T) {
	svc := newTagService(newFakeTagRepo(), &fakeAnalysisRepo{})

	_, err := svc.CreateSubTag(context.Background(), uuid.New(), &dto.CreateSubTagRequest{
		Name: "Indexing", MainTagId: uuid.New(),
	})
	require.ErrorIs(t, err, constant.ErrNotFound)
}

func TestDeleteMainTagRefusedWhileReferenced(t *testing.T) {
	tags := newFakeTagRepo()
	analyses := &fakeAnalysisRepo{}
	svc := newTagService(tags, analyses)
	userId := uuid.New()

	main, err := svc.CreateMainTag(context.Background(), userId, &dto.CreateMainTagRequest{Name: "Performance"})
	require.NoError(t, err)

	tagId := main.Id
	require.NoError(t, analyses.SaveAll(context.Background(), []*entity.AnalysisRecord{
		{Id: uuid.New(), UserId: userId, TagId: &tagId},
	}))

	err = svc.DeleteMainTag(context.Background(), userId, main.Id)
	require.ErrorIs(t, err, constant.ErrConflict)

	// Still present.
	found, findErr := tags.FindMainTagById(context.Background(), main.Id)
	require.NoError(t, findErr)
	assert.NotNil(t, found)
}

func TestDeleteSubTagRemovesRelation(t *testing.T) {
	tags := newFakeTagRepo()
	svc := newTagService(tags, &fakeAnalysisRepo{})
	userId := uuid.New()

	main, err := svc.CreateMainTag(context.Background(), userId, &dto.CreateMainTagRequest{Name: "Performance"})
	require.NoError(t, err)
	sub, err := svc.CreateSubTag(context.Background(), userId, &dto.CreateSubTagRequest{
		Name: "Indexing", MainTagId: main.Id,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSubTag(context.Background(), userId, sub.Id))

	relations, err := tags.FindRelationsByUserId(context.Background(), userId)
	require.NoError(t, err)
	assert.Empty(t, relations)

	// Name is free again.
	_, err = svc.CreateMainTag(context.Background(), userId, &dto.CreateMainTagRequest{Name: "Indexing"})
	require.NoError(t, err)
}

func TestGetTreeSkipsDanglingRelations(t *testing.T) {
	tags := newFakeTagRepo()
	svc := newTagService(tags, &fakeAnalysisRepo{})
	userId := uuid.New()

	main, err := svc.CreateMainTag(context.Background(), userId, &dto.CreateMainTagRequest{Name: "Performance"})
	require.NoError(t, err)
	_, err = svc.CreateSubTag(context.Background(), userId, &dto.CreateSubTagRequest{
		Name: "Indexing", MainTagId: main.Id,
	})
	require.NoError(t, err)

	// A relation pointing at a missing sub tag must not surface in the tree.
	require.NoError(t, tags.CreateRelation(context.Background(), &entity.TagRelation{
		Id: uuid.New(), UserId: userId, MainTagId: main.Id, SubTagId: uuid.New(),
	}))

	tree, err := svc.GetTree(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].SubTags, 1)
	assert.Equal(t, "Indexing", tree[0].SubTags[0].Name)
}
