package service

import (
	"context"
	"sync"
	"testing"

	"review-agent-be/internal/constant"
	"review-agent-be/internal/dto"
	"review-agent-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleRepo struct {
	mu      sync.Mutex
	configs map[uuid.UUID]*entity.UserScheduleConfig
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{configs: map[uuid.UUID]*entity.UserScheduleConfig{}}
}

func (f *fakeScheduleRepo) Save(ctx context.Context, config *entity.UserScheduleConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configs[config.UserId] = config
	return nil
}

func (f *fakeScheduleRepo) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserScheduleConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.configs[userId], nil
}

func (f *fakeScheduleRepo) FindAll(ctx context.Context) ([]*entity.UserScheduleConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*entity.UserScheduleConfig
	for _, config := range f.configs {
		result = append(result, config)
	}
	return result, nil
}

type spyReloader struct {
	mu    sync.Mutex
	calls []uuid.UUID
}

func (s *spyReloader) ReloadOne(ctx context.Context, userId uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, userId)
	return nil
}

func validUpdateRequest() *dto.UpdateScheduleConfigRequest {
	return &dto.UpdateScheduleConfigRequest{
		ScanDirectory:       "/srv/logs",
		AutoScanEnabled:     true,
		ScanIntervalSeconds: 7200,
		DailyEnabled:        true,
		DailyHour:           8,
		DailyMinute:         30,
		WeeklyEnabled:       true,
		WeeklyDay:           1,
		WeeklyHour:          9,
		WeeklyMinute:        0,
	}
}

func TestUpdateDerivesCronSpecsAndReloads(t *testing.T) {
	repo := newFakeScheduleRepo()
	reloader := &spyReloader{}
	svc := NewScheduleConfigService(repo, reloader)
	userId := uuid.New()

	resp, err := svc.Update(context.Background(), userId, validUpdateRequest())
	require.NoError(t, err)

	assert.Equal(t, "30 8 * * *", resp.DailyCron)
	assert.Equal(t, "0 9 * * 1", resp.WeeklyCron)
	assert.Equal(t, 7200, resp.ScanIntervalSeconds)

	saved, err := repo.FindByUserId(context.Background(), userId)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "30 8 * * *", saved.DailyCron)

	require.Len(t, reloader.calls, 1)
	assert.Equal(t, userId, reloader.calls[0])
}

func TestUpdateRejectsIntervalBelowMinimum(t *testing.T) {
	repo := newFakeScheduleRepo()
	reloader := &spyReloader{}
	svc := NewScheduleConfigService(repo, reloader)
	userId := uuid.New()

	req := validUpdateRequest()
	req.ScanIntervalSeconds = 1800

	_, err := svc.Update(context.Background(), userId, req)
	require.ErrorIs(t, err, constant.ErrInvalid)

	// Nothing was persisted and the scheduler was never poked.
	saved, findErr := repo.FindByUserId(context.Background(), userId)
	require.NoError(t, findErr)
	assert.Nil(t, saved)
	assert.Empty(t, reloader.calls)
}

func TestUpdateRejectsIntervalAboveMaximum(t *testing.T) {
	repo := newFakeScheduleRepo()
	reloader := &spyReloader{}
	svc := NewScheduleConfigService(repo, reloader)

	req := validUpdateRequest()
	req.ScanIntervalSeconds = constant.MaxScanIntervalSeconds + 1

	_, err := svc.Update(context.Background(), uuid.New(), req)
	require.ErrorIs(t, err, constant.ErrInvalid)
	assert.Empty(t, reloader.calls)
}

func TestGetUnknownUserIsNotFound(t *testing.T) {
	svc := NewScheduleConfigService(newFakeScheduleRepo(), &spyReloader{})

	_, err := svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, constant.ErrNotFound)
}
