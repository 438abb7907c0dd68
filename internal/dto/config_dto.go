package dto

import "time"

// UpdateScheduleConfigRequest carries the user's scheduling preferences. The
// scan interval bounds are validated again in the service before anything is
// persisted; the cron specs are derived from the time-of-day fields, never
// supplied by the client.
type UpdateScheduleConfigRequest struct {
	ScanDirectory       string `json:"scanDirectory" validate:"required"`
	AutoScanEnabled     bool   `json:"autoScanEnabled"`
	ScanIntervalSeconds int    `json:"scanIntervalSeconds" validate:"required,min=3600,max=43200"`

	DailyEnabled  bool `json:"dailyEnabled"`
	DailyHour     int  `json:"dailyHour" validate:"min=0,max=23"`
	DailyMinute   int  `json:"dailyMinute" validate:"min=0,max=59"`
	WeeklyEnabled bool `json:"weeklyEnabled"`
	WeeklyDay     int  `json:"weeklyDay" validate:"min=0,max=6"`
	WeeklyHour    int  `json:"weeklyHour" validate:"min=0,max=23"`
	WeeklyMinute  int  `json:"weeklyMinute" validate:"min=0,max=59"`
}

type ScheduleConfigResponse struct {
	ScanDirectory       string    `json:"scanDirectory"`
	AutoScanEnabled     bool      `json:"autoScanEnabled"`
	ScanIntervalSeconds int       `json:"scanIntervalSeconds"`
	DailyEnabled        bool      `json:"dailyEnabled"`
	DailyCron           string    `json:"dailyCron"`
	WeeklyEnabled       bool      `json:"weeklyEnabled"`
	WeeklyCron          string    `json:"weeklyCron"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
