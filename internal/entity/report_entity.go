package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReportData struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Kind        int
	Content     string
	PeriodStart time.Time
	PeriodEnd   time.Time
	CreatedAt   time.Time
}

// SyncRecord is the audit row written after each directory scan.
type SyncRecord struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	SyncCount int
	SpendTime float64
	CreatedAt time.Time
}
