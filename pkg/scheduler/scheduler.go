package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"review-agent-be/internal/entity"
	"review-agent-be/internal/pkg/logger"
	"review-agent-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/semaphore"
)

// TaskKind identifies one of the per-user recurring task slots.
type TaskKind int

const (
	TaskSync TaskKind = iota + 1
	TaskDailyReport
	TaskWeeklyReport
)

func (k TaskKind) String() string {
	switch k {
	case TaskSync:
		return "sync"
	case TaskDailyReport:
		return "daily-report"
	case TaskWeeklyReport:
		return "weekly-report"
	default:
		return "unknown"
	}
}

// Tasks is what the scheduler fires. Implemented by the service layer.
type Tasks interface {
	RunSync(ctx context.Context, userId uuid.UUID) error
	RunDailyReport(ctx context.Context, userId uuid.UUID) error
	RunWeeklyReport(ctx context.Context, userId uuid.UUID) error
}

type taskKey struct {
	UserId uuid.UUID
	Kind   TaskKind
}

// handle is one live scheduled task. Cancelling its context stops the loop;
// done closes when the loop has fully exited.
type handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Scheduler keeps at most one live handle per (user, task kind) in a single
// keyed registry guarded by one mutex, so a reload can atomically cancel and
// replace a user's tasks without a window where two copies run. Task bodies
// run through a weighted semaphore to bound concurrent model work.
type Scheduler struct {
	mu      sync.Mutex
	handles map[taskKey]*handle

	configs contract.ScheduleConfigRepository
	tasks   Tasks
	logger  logger.ILogger

	parser  cron.Parser
	sem     *semaphore.Weighted
	rootCtx context.Context
	stop    context.CancelFunc
	started bool
	now     func() time.Time
}

func NewScheduler(configs contract.ScheduleConfigRepository, tasks Tasks, maxConcurrent int64, log logger.ILogger) *Scheduler {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	return &Scheduler{
		handles: map[taskKey]*handle{},
		configs: configs,
		tasks:   tasks,
		logger:  log,
		parser:  cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
		sem:     semaphore.NewWeighted(maxConcurrent),
		now:     time.Now,
	}
}

// Start makes the scheduler live and loads every stored config. Idempotent.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.rootCtx, s.stop = context.WithCancel(ctx)
	s.started = true
	s.mu.Unlock()

	return s.ReloadAll(ctx)
}

// Stop cancels every live handle and waits for the loops to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	s.stop()
	handles := make([]*handle, 0, len(s.handles))
	for key, h := range s.handles {
		handles = append(handles, h)
		delete(s.handles, key)
	}
	s.mu.Unlock()

	for _, h := range handles {
		<-h.done
	}
}

// ReloadAll cancels every live handle, then re-derives every user's tasks
// from the stored configs. Handles for users whose config row is gone do not
// survive the reload.
func (s *Scheduler) ReloadAll(ctx context.Context) error {
	configs, err := s.configs.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load schedule configs: %w", err)
	}

	s.mu.Lock()
	for key, h := range s.handles {
		h.cancel()
		delete(s.handles, key)
	}
	s.mu.Unlock()

	for _, config := range configs {
		s.apply(config)
	}
	s.logger.Info("scheduler", "reloaded all schedules", map[string]interface{}{"users": len(configs)})
	return nil
}

// ReloadOne re-derives one user's tasks from their stored config. A user with
// no stored config has all their tasks cancelled.
func (s *Scheduler) ReloadOne(ctx context.Context, userId uuid.UUID) error {
	config, err := s.configs.FindByUserId(ctx, userId)
	if err != nil {
		return fmt.Errorf("load schedule config: %w", err)
	}
	if config == nil {
		s.cancelUser(userId)
		return nil
	}
	s.apply(config)
	return nil
}

// apply replaces the user's three task slots under one lock acquisition, so
// observers never see a mix of old and new tasks.
func (s *Scheduler) apply(config *entity.UserScheduleConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}

	s.replaceLocked(taskKey{config.UserId, TaskSync}, config.AutoScanEnabled, func(ctx context.Context) {
		s.runFixedDelay(ctx, config.UserId, TaskSync,
			time.Duration(config.ScanIntervalSeconds)*time.Second, s.tasks.RunSync)
	})
	s.replaceLocked(taskKey{config.UserId, TaskDailyReport}, config.DailyEnabled, func(ctx context.Context) {
		s.runCron(ctx, config.UserId, TaskDailyReport, config.DailyCron, s.tasks.RunDailyReport)
	})
	s.replaceLocked(taskKey{config.UserId, TaskWeeklyReport}, config.WeeklyEnabled, func(ctx context.Context) {
		s.runCron(ctx, config.UserId, TaskWeeklyReport, config.WeeklyCron, s.tasks.RunWeeklyReport)
	})
}

// replaceLocked cancels the current handle for key (if any) and, when enabled,
// installs a fresh one running loop. Caller holds s.mu.
func (s *Scheduler) replaceLocked(key taskKey, enabled bool, loop func(ctx context.Context)) {
	if existing, ok := s.handles[key]; ok {
		existing.cancel()
		delete(s.handles, key)
	}
	if !enabled {
		return
	}

	ctx, cancel := context.WithCancel(s.rootCtx)
	h := &handle{cancel: cancel, done: make(chan struct{})}
	s.handles[key] = h
	go func() {
		defer close(h.done)
		loop(ctx)
	}()
}

func (s *Scheduler) cancelUser(userId uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, kind := range []TaskKind{TaskSync, TaskDailyReport, TaskWeeklyReport} {
		key := taskKey{userId, kind}
		if h, ok := s.handles[key]; ok {
			h.cancel()
			delete(s.handles, key)
		}
	}
}

// LiveTasks reports the currently scheduled kinds for a user, in kind order.
func (s *Scheduler) LiveTasks(userId uuid.UUID) []TaskKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kinds []TaskKind
	for _, kind := range []TaskKind{TaskSync, TaskDailyReport, TaskWeeklyReport} {
		if _, ok := s.handles[taskKey{userId, kind}]; ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// runFixedDelay waits the full interval after each completed run, so a slow
// run never stacks onto the next one.
func (s *Scheduler) runFixedDelay(ctx context.Context, userId uuid.UUID, kind TaskKind, interval time.Duration, task func(context.Context, uuid.UUID) error) {
	if interval <= 0 {
		s.logger.Error("scheduler", "refusing non-positive interval", map[string]interface{}{
			"userId": userId.String(),
			"task":   kind.String(),
		})
		return
	}
	timer := time.NewTimer(interval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		s.execute(ctx, userId, kind, task)
		timer.Reset(interval)
	}
}

// runCron fires at each activation of a 5-field cron spec.
func (s *Scheduler) runCron(ctx context.Context, userId uuid.UUID, kind TaskKind, spec string, task func(context.Context, uuid.UUID) error) {
	schedule, err := s.parser.Parse(spec)
	if err != nil {
		s.logger.Error("scheduler", "invalid cron spec", map[string]interface{}{
			"userId": userId.String(),
			"task":   kind.String(),
			"spec":   spec,
			"error":  err.Error(),
		})
		return
	}
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	for {
		next := schedule.Next(s.now())
		timer.Reset(time.Until(next))
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		s.execute(ctx, userId, kind, task)
	}
}

// execute runs one task body under the concurrency semaphore. Task errors are
// logged and swallowed; a failing task never kills its loop.
func (s *Scheduler) execute(ctx context.Context, userId uuid.UUID, kind TaskKind, task func(context.Context, uuid.UUID) error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return
	}
	defer s.sem.Release(1)

	started := s.now()
	if err := task(ctx, userId); err != nil {
		s.logger.Error("scheduler", "task failed", map[string]interface{}{
			"userId":  userId.String(),
			"task":    kind.String(),
			"elapsed": time.Since(started).String(),
			"error":   err.Error(),
		})
		return
	}
	s.logger.Info("scheduler", "task completed", map[string]interface{}{
		"userId":  userId.String(),
		"task":    kind.String(),
		"elapsed": time.Since(started).String(),
	})
}
