package service

import (
	"context"
	"errors"

	"review-agent-be/internal/constant"
	"review-agent-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// SchedulerTasks adapts the service layer to the scheduler's task contract.
type SchedulerTasks struct {
	data     IDataService
	analysis IAnalysisService
	reports  IReportService
	logger   logger.ILogger
}

func NewSchedulerTasks(data IDataService, analysis IAnalysisService, reports IReportService, log logger.ILogger) *SchedulerTasks {
	return &SchedulerTasks{
		data:     data,
		analysis: analysis,
		reports:  reports,
		logger:   log,
	}
}

// RunSync scans the user's directory, then analyzes every file the scan left
// pending. A failure on one file does not stop the rest.
func (t *SchedulerTasks) RunSync(ctx context.Context, userId uuid.UUID) error {
	if _, err := t.data.SyncDirectory(ctx, userId); err != nil {
		return err
	}

	for _, status := range []int{constant.FileStatusNotProcessed, constant.FileStatusUpdated} {
		status := status
		files, err := t.data.ListFiles(ctx, userId, &status)
		if err != nil {
			return err
		}
		for _, file := range files {
			if err := t.analysis.RunBlocking(ctx, userId, file.Id); err != nil {
				t.logger.Warn("scheduler-tasks", "scheduled analysis failed", map[string]interface{}{
					"userId": userId.String(),
					"fileId": file.Id.String(),
					"error":  err.Error(),
				})
			}
		}
	}
	return nil
}

func (t *SchedulerTasks) RunDailyReport(ctx context.Context, userId uuid.UUID) error {
	_, err := t.reports.GenerateDaily(ctx, userId)
	return ignoreEmptyPeriod(err)
}

func (t *SchedulerTasks) RunWeeklyReport(ctx context.Context, userId uuid.UUID) error {
	_, err := t.reports.GenerateWeekly(ctx, userId)
	return ignoreEmptyPeriod(err)
}

// A period without analyzed sessions is a normal outcome for a scheduled
// report, not a task failure.
func ignoreEmptyPeriod(err error) error {
	if errors.Is(err, constant.ErrNotFound) {
		return nil
	}
	return err
}
