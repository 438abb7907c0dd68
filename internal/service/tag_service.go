package service

import (
	"context"
	"fmt"
	"time"

	"review-agent-be/internal/constant"
	"review-agent-be/internal/dto"
	"review-agent-be/internal/entity"
	"review-agent-be/internal/repository/contract"
	"review-agent-be/pkg/pipeline/taxonomy"

	"github.com/google/uuid"
)

type ITagService interface {
	GetTree(ctx context.Context, userId uuid.UUID) ([]*dto.TagTreeResponse, error)
	CreateMainTag(ctx context.Context, userId uuid.UUID, req *dto.CreateMainTagRequest) (*dto.CreateTagResponse, error)
	CreateSubTag(ctx context.Context, userId uuid.UUID, req *dto.CreateSubTagRequest) (*dto.CreateTagResponse, error)
	DeleteMainTag(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	DeleteSubTag(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type tagService struct {
	tags     contract.TagRepository
	analyses contract.AnalysisRepository
	taxonomy *taxonomy.Builder
}

func NewTagService(tags contract.TagRepository, analyses contract.AnalysisRepository, taxonomyBuilder *taxonomy.Builder) ITagService {
	return &tagService{
		tags:     tags,
		analyses: analyses,
		taxonomy: taxonomyBuilder,
	}
}

func (s *tagService) GetTree(ctx context.Context, userId uuid.UUID) ([]*dto.TagTreeResponse, error) {
	mains, err := s.tags.FindMainTagsByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	subs, err := s.tags.FindSubTagsByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	relations, err := s.tags.FindRelationsByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	subById := make(map[uuid.UUID]*entity.SubTag, len(subs))
	for _, sub := range subs {
		subById[sub.Id] = sub
	}

	result := make([]*dto.TagTreeResponse, 0, len(mains))
	byMainId := make(map[uuid.UUID]*dto.TagTreeResponse, len(mains))
	for _, main := range mains {
		node := &dto.TagTreeResponse{
			Id:      main.Id,
			Name:    main.Name,
			SubTags: make([]*dto.SubTagResponse, 0),
		}
		result = append(result, node)
		byMainId[main.Id] = node
	}
	for _, rel := range relations {
		node := byMainId[rel.MainTagId]
		sub := subById[rel.SubTagId]
		if node == nil || sub == nil {
			continue
		}
		node.SubTags = append(node.SubTags, &dto.SubTagResponse{Id: sub.Id, Name: sub.Name})
	}
	return result, nil
}

// CreateMainTag enforces the shared name namespace: a name used by any main or
// sub tag of the user is taken.
func (s *tagService) CreateMainTag(ctx context.Context, userId uuid.UUID, req *dto.CreateMainTagRequest) (*dto.CreateTagResponse, error) {
	if err := s.ensureNameFree(ctx, userId, req.Name); err != nil {
		return nil, err
	}

	tag := entity.MainTag{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if err := s.tags.CreateMainTag(ctx, &tag); err != nil {
		return nil, err
	}
	s.taxonomy.Invalidate(userId)
	return &dto.CreateTagResponse{Id: tag.Id}, nil
}

func (s *tagService) CreateSubTag(ctx context.Context, userId uuid.UUID, req *dto.CreateSubTagRequest) (*dto.CreateTagResponse, error) {
	main, err := s.tags.FindMainTagById(ctx, req.MainTagId)
	if err != nil {
		return nil, err
	}
	if main == nil || main.UserId != userId {
		return nil, fmt.Errorf("%w: main tag", constant.ErrNotFound)
	}
	if err := s.ensureNameFree(ctx, userId, req.Name); err != nil {
		return nil, err
	}

	tag := entity.SubTag{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if err := s.tags.CreateSubTag(ctx, &tag); err != nil {
		return nil, err
	}
	rel := entity.TagRelation{
		Id:        uuid.New(),
		UserId:    userId,
		MainTagId: main.Id,
		SubTagId:  tag.Id,
	}
	if err := s.tags.CreateRelation(ctx, &rel); err != nil {
		return nil, err
	}
	s.taxonomy.Invalidate(userId)
	return &dto.CreateTagResponse{Id: tag.Id}, nil
}

// DeleteMainTag refuses to delete a tag still referenced by analysis records.
func (s *tagService) DeleteMainTag(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	tag, err := s.tags.FindMainTagById(ctx, id)
	if err != nil {
		return err
	}
	if tag == nil || tag.UserId != userId {
		return fmt.Errorf("%w: main tag", constant.ErrNotFound)
	}

	count, err := s.analyses.CountByTagId(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: tag is referenced by %d analysis record(s)", constant.ErrConflict, count)
	}

	if err := s.tags.DeleteRelationsByMainTag(ctx, id); err != nil {
		return err
	}
	if err := s.tags.DeleteMainTag(ctx, id); err != nil {
		return err
	}
	s.taxonomy.Invalidate(userId)
	return nil
}

func (s *tagService) DeleteSubTag(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	tag, err := s.tags.FindSubTagById(ctx, id)
	if err != nil {
		return err
	}
	if tag == nil || tag.UserId != userId {
		return fmt.Errorf("%w: sub tag", constant.ErrNotFound)
	}

	count, err := s.analyses.CountBySubTagId(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: sub tag is referenced by %d analysis record(s)", constant.ErrConflict, count)
	}

	if err := s.tags.DeleteRelationsBySubTag(ctx, id); err != nil {
		return err
	}
	if err := s.tags.DeleteSubTag(ctx, id); err != nil {
		return err
	}
	s.taxonomy.Invalidate(userId)
	return nil
}

func (s *tagService) ensureNameFree(ctx context.Context, userId uuid.UUID, name string) error {
	asMain, err := s.tags.ExistsMainTagName(ctx, userId, name)
	if err != nil {
		return err
	}
	asSub, err := s.tags.ExistsSubTagName(ctx, userId, name)
	if err != nil {
		return err
	}
	if asMain || asSub {
		return fmt.Errorf("%w: tag name %q already in use", constant.ErrConflict, name)
	}
	return nil
}
