package taxonomy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"review-agent-be/internal/repository/contract"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Index is the per-user view of the two-level tag taxonomy: the categories
// text embedded into the classify prompt and the reverse name->id map used to
// translate model output back to ids. Main and sub tags share one namespace,
// so names must be unique per user across both levels.
type Index struct {
	UserId     uuid.UUID
	Prompt     string
	NameToId   map[string]uuid.UUID
	SubTagById map[uuid.UUID]string
}

type Builder struct {
	tags  contract.TagRepository
	cache *gocache.Cache
}

func NewBuilder(tags contract.TagRepository) *Builder {
	return &Builder{
		tags:  tags,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Build assembles the index for one user, serving repeat calls from cache
// until Invalidate or TTL expiry.
func (b *Builder) Build(ctx context.Context, userId uuid.UUID) (*Index, error) {
	if cached, found := b.cache.Get(userId.String()); found {
		return cached.(*Index), nil
	}

	mainTags, err := b.tags.FindMainTagsByUserId(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("load main tags: %w", err)
	}
	subTags, err := b.tags.FindSubTagsByUserId(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("load sub tags: %w", err)
	}
	relations, err := b.tags.FindRelationsByUserId(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("load tag relations: %w", err)
	}

	subById := make(map[uuid.UUID]string, len(subTags))
	for _, sub := range subTags {
		subById[sub.Id] = sub.Name
	}
	subsOfMain := make(map[uuid.UUID][]uuid.UUID, len(mainTags))
	for _, rel := range relations {
		subsOfMain[rel.MainTagId] = append(subsOfMain[rel.MainTagId], rel.SubTagId)
	}

	idx := &Index{
		UserId:     userId,
		NameToId:   make(map[string]uuid.UUID, len(mainTags)+len(subTags)),
		SubTagById: subById,
	}

	var sb strings.Builder
	for _, main := range mainTags {
		if _, dup := idx.NameToId[main.Name]; dup {
			return nil, fmt.Errorf("duplicate tag name %q for user %s", main.Name, userId)
		}
		idx.NameToId[main.Name] = main.Id
		sb.WriteString(main.Name)
		sb.WriteString("\n")
		for _, subId := range subsOfMain[main.Id] {
			name, ok := subById[subId]
			if !ok {
				continue // relation to a deleted sub tag
			}
			sb.WriteString("  - ")
			sb.WriteString(name)
			sb.WriteString("\n")
		}
	}
	for _, sub := range subTags {
		if _, dup := idx.NameToId[sub.Name]; dup {
			return nil, fmt.Errorf("duplicate tag name %q for user %s", sub.Name, userId)
		}
		idx.NameToId[sub.Name] = sub.Id
	}
	idx.Prompt = sb.String()

	b.cache.Set(userId.String(), idx, gocache.DefaultExpiration)
	return idx, nil
}

// Invalidate drops the cached index after a tag mutation.
func (b *Builder) Invalidate(userId uuid.UUID) {
	b.cache.Delete(userId.String())
}
