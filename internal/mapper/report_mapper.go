package mapper

import (
	"review-agent-be/internal/entity"
	"review-agent-be/internal/model"
)

type ReportMapper struct{}

func NewReportMapper() *ReportMapper {
	return &ReportMapper{}
}

func (m *ReportMapper) ToEntity(r *model.ReportData) *entity.ReportData {
	if r == nil {
		return nil
	}
	return &entity.ReportData{
		Id:          r.Id,
		UserId:      r.UserId,
		Kind:        r.Kind,
		Content:     r.Content,
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *ReportMapper) ToModel(r *entity.ReportData) *model.ReportData {
	if r == nil {
		return nil
	}
	return &model.ReportData{
		Id:          r.Id,
		UserId:      r.UserId,
		Kind:        r.Kind,
		Content:     r.Content,
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *ReportMapper) SyncToEntity(r *model.SyncRecord) *entity.SyncRecord {
	if r == nil {
		return nil
	}
	return &entity.SyncRecord{
		Id:        r.Id,
		UserId:    r.UserId,
		SyncCount: r.SyncCount,
		SpendTime: r.SpendTime,
		CreatedAt: r.CreatedAt,
	}
}

func (m *ReportMapper) SyncToModel(r *entity.SyncRecord) *model.SyncRecord {
	if r == nil {
		return nil
	}
	return &model.SyncRecord{
		Id:        r.Id,
		UserId:    r.UserId,
		SyncCount: r.SyncCount,
		SpendTime: r.SpendTime,
		CreatedAt: r.CreatedAt,
	}
}
