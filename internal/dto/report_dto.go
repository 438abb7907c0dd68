package dto

import (
	"time"

	"github.com/google/uuid"
)

type ReportResponse struct {
	Id          uuid.UUID `json:"id"`
	Kind        int       `json:"kind"`
	Content     string    `json:"content"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
	CreatedAt   time.Time `json:"createdAt"`
}
