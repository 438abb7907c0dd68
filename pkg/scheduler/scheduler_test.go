package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"review-agent-be/internal/entity"
	"review-agent-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigRepo struct {
	mu      sync.Mutex
	configs map[uuid.UUID]*entity.UserScheduleConfig
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: map[uuid.UUID]*entity.UserScheduleConfig{}}
}

func (f *fakeConfigRepo) Save(ctx context.Context, config *entity.UserScheduleConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configs[config.UserId] = config
	return nil
}

func (f *fakeConfigRepo) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserScheduleConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.configs[userId], nil
}

func (f *fakeConfigRepo) remove(userId uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.configs, userId)
}

func (f *fakeConfigRepo) FindAll(ctx context.Context) ([]*entity.UserScheduleConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*entity.UserScheduleConfig, 0, len(f.configs))
	for _, c := range f.configs {
		all = append(all, c)
	}
	return all, nil
}

type countingTasks struct {
	mu     sync.Mutex
	syncs  int
	daily  int
	weekly int
}

func (c *countingTasks) RunSync(ctx context.Context, userId uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.syncs++
	return nil
}

func (c *countingTasks) RunDailyReport(ctx context.Context, userId uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.daily++
	return nil
}

func (c *countingTasks) RunWeeklyReport(ctx context.Context, userId uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.weekly++
	return nil
}

func (c *countingTasks) syncCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.syncs
}

func fullConfig(userId uuid.UUID) *entity.UserScheduleConfig {
	return &entity.UserScheduleConfig{
		Id:                  uuid.New(),
		UserId:              userId,
		ScanDirectory:       "/srv/logs",
		AutoScanEnabled:     true,
		ScanIntervalSeconds: 3600,
		DailyEnabled:        true,
		DailyCron:           "0 8 * * *",
		WeeklyEnabled:       true,
		WeeklyCron:          "0 8 * * 1",
	}
}

func TestStartLoadsAllStoredConfigs(t *testing.T) {
	repo := newFakeConfigRepo()
	userA, userB := uuid.New(), uuid.New()
	require.NoError(t, repo.Save(context.Background(), fullConfig(userA)))
	configB := fullConfig(userB)
	configB.AutoScanEnabled = false
	require.NoError(t, repo.Save(context.Background(), configB))

	s := NewScheduler(repo, &countingTasks{}, 2, logger.NewNopLogger())
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.Equal(t, []TaskKind{TaskSync, TaskDailyReport, TaskWeeklyReport}, s.LiveTasks(userA))
	assert.Equal(t, []TaskKind{TaskDailyReport, TaskWeeklyReport}, s.LiveTasks(userB))
}

func TestReloadOneReplacesInsteadOfStacking(t *testing.T) {
	repo := newFakeConfigRepo()
	userId := uuid.New()
	require.NoError(t, repo.Save(context.Background(), fullConfig(userId)))

	s := NewScheduler(repo, &countingTasks{}, 2, logger.NewNopLogger())
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.ReloadOne(context.Background(), userId))
	}
	assert.Equal(t, []TaskKind{TaskSync, TaskDailyReport, TaskWeeklyReport}, s.LiveTasks(userId))
	s.mu.Lock()
	assert.Len(t, s.handles, 3)
	s.mu.Unlock()
}

func TestReloadOneDisablingCancelsTheSlot(t *testing.T) {
	repo := newFakeConfigRepo()
	userId := uuid.New()
	require.NoError(t, repo.Save(context.Background(), fullConfig(userId)))

	s := NewScheduler(repo, &countingTasks{}, 2, logger.NewNopLogger())
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	updated := fullConfig(userId)
	updated.AutoScanEnabled = false
	updated.WeeklyEnabled = false
	require.NoError(t, repo.Save(context.Background(), updated))
	require.NoError(t, s.ReloadOne(context.Background(), userId))

	assert.Equal(t, []TaskKind{TaskDailyReport}, s.LiveTasks(userId))
}

func TestReloadOneMissingConfigCancelsEverything(t *testing.T) {
	repo := newFakeConfigRepo()
	userId := uuid.New()
	require.NoError(t, repo.Save(context.Background(), fullConfig(userId)))

	s := NewScheduler(repo, &countingTasks{}, 2, logger.NewNopLogger())
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	repo.mu.Lock()
	delete(repo.configs, userId)
	repo.mu.Unlock()
	require.NoError(t, s.ReloadOne(context.Background(), userId))

	assert.Empty(t, s.LiveTasks(userId))
}

func TestSyncFiresOnFixedDelay(t *testing.T) {
	repo := newFakeConfigRepo()
	userId := uuid.New()
	config := fullConfig(userId)
	config.DailyEnabled = false
	config.WeeklyEnabled = false
	config.ScanIntervalSeconds = 1 // interval bounds are enforced upstream, not here
	require.NoError(t, repo.Save(context.Background(), config))

	tasks := &countingTasks{}
	s := NewScheduler(repo, tasks, 2, logger.NewNopLogger())
	require.NoError(t, s.Start(context.Background()))

	deadline := time.Now().Add(3 * time.Second)
	for tasks.syncCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	s.Stop()
	assert.GreaterOrEqual(t, tasks.syncCount(), 1)
}

func TestStopWaitsForLoopsAndClearsRegistry(t *testing.T) {
	repo := newFakeConfigRepo()
	userId := uuid.New()
	require.NoError(t, repo.Save(context.Background(), fullConfig(userId)))

	s := NewScheduler(repo, &countingTasks{}, 2, logger.NewNopLogger())
	require.NoError(t, s.Start(context.Background()))
	s.Stop()

	assert.Empty(t, s.LiveTasks(userId))
	// Stop is idempotent and reload after stop is a no-op.
	s.Stop()
	require.NoError(t, s.ReloadOne(context.Background(), userId))
	assert.Empty(t, s.LiveTasks(userId))
}

func TestInvalidCronSpecDoesNotCrash(t *testing.T) {
	repo := newFakeConfigRepo()
	userId := uuid.New()
	config := fullConfig(userId)
	config.AutoScanEnabled = false
	config.WeeklyEnabled = false
	config.DailyCron = "not a cron spec"
	require.NoError(t, repo.Save(context.Background(), config))

	s := NewScheduler(repo, &countingTasks{}, 2, logger.NewNopLogger())
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()
}

func TestReloadAllDropsHandlesForDeletedConfigs(t *testing.T) {
	repo := newFakeConfigRepo()
	userA, userB := uuid.New(), uuid.New()
	require.NoError(t, repo.Save(context.Background(), fullConfig(userA)))
	require.NoError(t, repo.Save(context.Background(), fullConfig(userB)))

	s := NewScheduler(repo, &countingTasks{}, 2, logger.NewNopLogger())
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	// Config row removed out of band; a full reload must not keep its tasks.
	repo.remove(userA)
	require.NoError(t, s.ReloadAll(context.Background()))

	assert.Empty(t, s.LiveTasks(userA))
	assert.Equal(t, []TaskKind{TaskSync, TaskDailyReport, TaskWeeklyReport}, s.LiveTasks(userB))
}

func TestReloadOneLeavesOtherUsersHandlesUntouched(t *testing.T) {
	repo := newFakeConfigRepo()
	userA, userB := uuid.New(), uuid.New()
	require.NoError(t, repo.Save(context.Background(), fullConfig(userA)))
	require.NoError(t, repo.Save(context.Background(), fullConfig(userB)))

	s := NewScheduler(repo, &countingTasks{}, 2, logger.NewNopLogger())
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	grab := func(userId uuid.UUID) map[TaskKind]*handle {
		s.mu.Lock()
		defer s.mu.Unlock()
		out := map[TaskKind]*handle{}
		for _, kind := range []TaskKind{TaskSync, TaskDailyReport, TaskWeeklyReport} {
			out[kind] = s.handles[taskKey{userId, kind}]
		}
		return out
	}

	beforeA := grab(userA)
	beforeB := grab(userB)
	require.NoError(t, s.ReloadOne(context.Background(), userA))
	afterA := grab(userA)
	afterB := grab(userB)

	for _, kind := range []TaskKind{TaskSync, TaskDailyReport, TaskWeeklyReport} {
		// B's handles are the same objects, never cancelled or re-created.
		assert.Same(t, beforeB[kind], afterB[kind], "user B %s", kind)
		// A's were replaced with fresh ones, exactly one per kind.
		require.NotNil(t, afterA[kind], "user A %s", kind)
		assert.NotSame(t, beforeA[kind], afterA[kind], "user A %s", kind)
	}
	assert.Equal(t, []TaskKind{TaskSync, TaskDailyReport, TaskWeeklyReport}, s.LiveTasks(userA))
}
