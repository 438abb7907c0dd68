package service

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"review-agent-be/internal/constant"
	"review-agent-be/internal/dto"
	"review-agent-be/internal/entity"
	"review-agent-be/internal/pkg/logger"
	"review-agent-be/internal/repository/contract"
	"review-agent-be/pkg/events"

	"github.com/google/uuid"
)

// File extensions picked up by a directory scan.
var scannableExtensions = map[string]bool{
	".md":  true,
	".txt": true,
	".log": true,
}

type IDataService interface {
	ImportFile(ctx context.Context, userId uuid.UUID, req *dto.ImportFileRequest) (*dto.FileResponse, error)
	ListFiles(ctx context.Context, userId uuid.UUID, status *int) ([]*dto.FileResponse, error)
	ShowFile(ctx context.Context, userId uuid.UUID, fileId uuid.UUID) (*dto.FileResponse, error)
	SyncDirectory(ctx context.Context, userId uuid.UUID) (*dto.SyncResponse, error)
}

type dataService struct {
	files       contract.FileRepository
	schedules   contract.ScheduleConfigRepository
	syncRecords contract.SyncRecordRepository
	notify      INotifyService
	logger      logger.ILogger
}

func NewDataService(
	files contract.FileRepository,
	schedules contract.ScheduleConfigRepository,
	syncRecords contract.SyncRecordRepository,
	notify INotifyService,
	log logger.ILogger,
) IDataService {
	return &dataService{
		files:       files,
		schedules:   schedules,
		syncRecords: syncRecords,
		notify:      notify,
		logger:      log,
	}
}

// ImportFile stores one log file. Re-importing a known path replaces the
// content and marks the file Updated so the next run re-analyzes it.
func (s *dataService) ImportFile(ctx context.Context, userId uuid.UUID, req *dto.ImportFileRequest) (*dto.FileResponse, error) {
	existing, err := s.files.FindByPath(ctx, req.FilePath)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if existing.UserId != userId {
			return nil, fmt.Errorf("%w: file belongs to another user", constant.ErrConflict)
		}
		if existing.Content == req.Content {
			return toFileResponse(existing), nil
		}
		now := time.Now()
		existing.Content = req.Content
		existing.FileName = req.FileName
		existing.Status = constant.FileStatusUpdated
		existing.UpdatedAt = &now
		if err := s.files.Update(ctx, existing); err != nil {
			return nil, err
		}
		return toFileResponse(existing), nil
	}

	file := entity.FileInfo{
		Id:        uuid.New(),
		UserId:    userId,
		FilePath:  req.FilePath,
		FileName:  req.FileName,
		Content:   req.Content,
		Status:    constant.FileStatusNotProcessed,
		CreatedAt: time.Now(),
	}
	if err := s.files.Create(ctx, &file); err != nil {
		return nil, err
	}
	return toFileResponse(&file), nil
}

func (s *dataService) ListFiles(ctx context.Context, userId uuid.UUID, status *int) ([]*dto.FileResponse, error) {
	files, err := s.files.FindAllByUserId(ctx, userId, status)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.FileResponse, 0, len(files))
	for _, file := range files {
		result = append(result, toFileResponse(file))
	}
	return result, nil
}

func (s *dataService) ShowFile(ctx context.Context, userId uuid.UUID, fileId uuid.UUID) (*dto.FileResponse, error) {
	file, err := s.files.FindById(ctx, fileId)
	if err != nil {
		return nil, err
	}
	if file == nil || file.UserId != userId {
		return nil, fmt.Errorf("%w: file", constant.ErrNotFound)
	}
	return toFileResponse(file), nil
}

// SyncDirectory walks the user's configured scan directory and imports every
// new or changed log file, then writes one audit record for the scan.
func (s *dataService) SyncDirectory(ctx context.Context, userId uuid.UUID) (*dto.SyncResponse, error) {
	config, err := s.schedules.FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if config == nil || config.ScanDirectory == "" {
		return nil, fmt.Errorf("%w: no scan directory configured", constant.ErrInvalid)
	}

	started := time.Now()
	synced := 0
	walkErr := filepath.WalkDir(config.ScanDirectory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !scannableExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("data", "skipping unreadable file", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			return nil
		}
		changed, err := s.upsertScanned(ctx, userId, path, string(content))
		if err != nil {
			return err
		}
		if changed {
			synced++
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("scan directory %s: %w", config.ScanDirectory, walkErr)
	}

	spend := time.Since(started).Seconds()
	record := entity.SyncRecord{
		Id:        uuid.New(),
		UserId:    userId,
		SyncCount: synced,
		SpendTime: spend,
		CreatedAt: time.Now(),
	}
	if err := s.syncRecords.Create(ctx, &record); err != nil {
		return nil, err
	}

	s.notify.Notify(ctx, userId, events.TypeSyncCompleted,
		fmt.Sprintf("Directory sync finished: %d file(s) updated", synced),
		map[string]interface{}{"syncCount": synced, "spendTime": spend})

	return &dto.SyncResponse{SyncCount: synced, SpendTime: spend}, nil
}

// upsertScanned reports whether the file was newly created or changed.
func (s *dataService) upsertScanned(ctx context.Context, userId uuid.UUID, path, content string) (bool, error) {
	existing, err := s.files.FindByPath(ctx, path)
	if err != nil {
		return false, err
	}
	if existing == nil {
		file := entity.FileInfo{
			Id:        uuid.New(),
			UserId:    userId,
			FilePath:  path,
			FileName:  filepath.Base(path),
			Content:   content,
			Status:    constant.FileStatusNotProcessed,
			CreatedAt: time.Now(),
		}
		return true, s.files.Create(ctx, &file)
	}
	if existing.UserId != userId || existing.Content == content {
		return false, nil
	}
	now := time.Now()
	existing.Content = content
	existing.Status = constant.FileStatusUpdated
	existing.UpdatedAt = &now
	return true, s.files.Update(ctx, existing)
}

func toFileResponse(file *entity.FileInfo) *dto.FileResponse {
	return &dto.FileResponse{
		Id:        file.Id,
		FilePath:  file.FilePath,
		FileName:  file.FileName,
		Status:    file.Status,
		CreatedAt: file.CreatedAt,
		UpdatedAt: file.UpdatedAt,
	}
}
