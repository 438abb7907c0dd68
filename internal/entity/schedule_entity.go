package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserScheduleConfig drives the dynamic per-user tasks: directory sync on a
// fixed delay, daily/weekly reports on cron specs derived from the user's
// time-of-day preference.
type UserScheduleConfig struct {
	Id                  uuid.UUID
	UserId              uuid.UUID
	ScanDirectory       string
	AutoScanEnabled     bool
	ScanIntervalSeconds int
	DailyEnabled        bool
	DailyCron           string
	WeeklyEnabled       bool
	WeeklyCron          string
	UpdatedAt           time.Time
}
