package mapper

import (
	"encoding/json"

	"review-agent-be/internal/entity"
	"review-agent-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AnalysisMapper struct{}

func NewAnalysisMapper() *AnalysisMapper {
	return &AnalysisMapper{}
}

func (m *AnalysisMapper) ToEntity(r *model.AnalysisRecord) *entity.AnalysisRecord {
	if r == nil {
		return nil
	}
	var subTagIds []uuid.UUID
	if len(r.SubTagIds) > 0 {
		_ = json.Unmarshal(r.SubTagIds, &subTagIds)
	}
	var recommends []string
	if len(r.Recommends) > 0 {
		_ = json.Unmarshal(r.Recommends, &recommends)
	}
	return &entity.AnalysisRecord{
		Id:               r.Id,
		UserId:           r.UserId,
		FileId:           r.FileId,
		SessionStart:     r.SessionStart,
		SessionEnd:       r.SessionEnd,
		StartOffset:      r.StartOffset,
		EndOffset:        r.EndOffset,
		SessionContent:   r.SessionContent,
		TagId:            r.TagId,
		SubTagIds:        subTagIds,
		Recommends:       recommends,
		ProblemStatement: r.ProblemStatement,
		Solution:         r.Solution,
		Status:           r.Status,
		CreatedAt:        r.CreatedAt,
	}
}

func (m *AnalysisMapper) ToModel(r *entity.AnalysisRecord) *model.AnalysisRecord {
	if r == nil {
		return nil
	}
	subTagIds, _ := json.Marshal(r.SubTagIds)
	recommends, _ := json.Marshal(r.Recommends)
	return &model.AnalysisRecord{
		Id:               r.Id,
		UserId:           r.UserId,
		FileId:           r.FileId,
		SessionStart:     r.SessionStart,
		SessionEnd:       r.SessionEnd,
		StartOffset:      r.StartOffset,
		EndOffset:        r.EndOffset,
		SessionContent:   r.SessionContent,
		TagId:            r.TagId,
		SubTagIds:        datatypes.JSON(subTagIds),
		Recommends:       datatypes.JSON(recommends),
		ProblemStatement: r.ProblemStatement,
		Solution:         r.Solution,
		Status:           r.Status,
		CreatedAt:        r.CreatedAt,
	}
}

func (m *AnalysisMapper) ToEntities(records []*model.AnalysisRecord) []*entity.AnalysisRecord {
	out := make([]*entity.AnalysisRecord, 0, len(records))
	for _, r := range records {
		out = append(out, m.ToEntity(r))
	}
	return out
}

func (m *AnalysisMapper) ToModels(records []*entity.AnalysisRecord) []*model.AnalysisRecord {
	out := make([]*model.AnalysisRecord, 0, len(records))
	for _, r := range records {
		out = append(out, m.ToModel(r))
	}
	return out
}
