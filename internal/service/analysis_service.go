package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"review-agent-be/internal/constant"
	"review-agent-be/internal/dto"
	"review-agent-be/internal/entity"
	"review-agent-be/internal/pkg/logger"
	"review-agent-be/internal/repository/contract"
	"review-agent-be/pkg/events"
	"review-agent-be/pkg/pipeline"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// AnalysisCompletedMessage is the in-process event emitted after every run.
// The consumer service turns it into user-facing notifications.
type AnalysisCompletedMessage struct {
	UserId      uuid.UUID `json:"userId"`
	FileId      uuid.UUID `json:"fileId"`
	FileName    string    `json:"fileName"`
	RecordCount int       `json:"recordCount"`
	Status      int       `json:"status"`
}

type IAnalysisService interface {
	// Run validates and accepts a run, then executes the pipeline in the
	// background.
	Run(ctx context.Context, userId uuid.UUID, req *dto.RunAnalysisRequest) (*dto.RunAnalysisResponse, error)
	// RunBlocking executes a full run synchronously. Used by scheduled syncs.
	RunBlocking(ctx context.Context, userId uuid.UUID, fileId uuid.UUID) error
	ListByFile(ctx context.Context, userId uuid.UUID, fileId uuid.UUID) ([]*dto.AnalysisRecordResponse, error)
	ListByUser(ctx context.Context, userId uuid.UUID) ([]*dto.AnalysisRecordResponse, error)
	// TagUsage returns per-main-tag record counts for the user's dashboard.
	TagUsage(ctx context.Context, userId uuid.UUID) ([]*dto.TagUsageResponse, error)
}

type analysisService struct {
	users    contract.UserRepository
	files    contract.FileRepository
	analyses contract.AnalysisRepository
	tags     contract.TagRepository
	executor *pipeline.Executor
	notify   INotifyService
	pubSub   *gochannel.GoChannel
	topic    string
	logger   logger.ILogger
}

func NewAnalysisService(
	users contract.UserRepository,
	files contract.FileRepository,
	analyses contract.AnalysisRepository,
	tags contract.TagRepository,
	executor *pipeline.Executor,
	notify INotifyService,
	pubSub *gochannel.GoChannel,
	topic string,
	log logger.ILogger,
) IAnalysisService {
	return &analysisService{
		users:    users,
		files:    files,
		analyses: analyses,
		tags:     tags,
		executor: executor,
		notify:   notify,
		pubSub:   pubSub,
		topic:    topic,
		logger:   log,
	}
}

func (s *analysisService) Run(ctx context.Context, userId uuid.UUID, req *dto.RunAnalysisRequest) (*dto.RunAnalysisResponse, error) {
	file, err := s.prepare(ctx, userId, req.FileId)
	if err != nil {
		return nil, err
	}

	// The run outlives the HTTP request, so it gets its own context.
	go s.process(context.Background(), userId, file)

	return &dto.RunAnalysisResponse{FileId: file.Id, Status: constant.FileStatusProcessing}, nil
}

func (s *analysisService) RunBlocking(ctx context.Context, userId uuid.UUID, fileId uuid.UUID) error {
	file, err := s.prepare(ctx, userId, fileId)
	if err != nil {
		return err
	}
	s.process(ctx, userId, file)
	return nil
}

// prepare validates the run and moves the file to Processing before any model
// work starts. Validation failures are fail-fast and never touch the file row.
func (s *analysisService) prepare(ctx context.Context, userId uuid.UUID, fileId uuid.UUID) (*entity.FileInfo, error) {
	user, err := s.users.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", constant.ErrNotFound)
	}

	file, err := s.files.FindById(ctx, fileId)
	if err != nil {
		return nil, err
	}
	if file == nil || file.UserId != userId {
		return nil, fmt.Errorf("%w: file", constant.ErrNotFound)
	}
	if file.Status == constant.FileStatusProcessing {
		return nil, fmt.Errorf("%w: file is already being processed", constant.ErrConflict)
	}

	if err := s.files.UpdateStatus(ctx, file.Id, constant.FileStatusProcessing); err != nil {
		return nil, err
	}
	return file, nil
}

// process runs the pipeline and persists the outcome. The file ends Processed
// when at least one analysis record was produced, Error otherwise.
func (s *analysisService) process(ctx context.Context, userId uuid.UUID, file *entity.FileInfo) {
	s.notify.Notify(ctx, userId, events.TypeAnalysisStarted, "Analysis started for "+file.FileName,
		map[string]interface{}{"fileId": file.Id.String()})

	state := &pipeline.State{
		UserId:          userId,
		FileId:          file.Id,
		OriginalContent: file.Content,
	}

	finalStatus := constant.FileStatusError
	recordCount := 0
	if err := s.executor.Execute(ctx, state); err != nil {
		s.logger.Error("analysis", "pipeline run failed", map[string]interface{}{
			"fileId": file.Id.String(),
			"error":  err.Error(),
		})
	} else if len(state.Sessions) > 0 {
		records := make([]*entity.AnalysisRecord, 0, len(state.Sessions))
		for _, session := range state.Sessions {
			records = append(records, &entity.AnalysisRecord{
				Id:               uuid.New(),
				UserId:           userId,
				FileId:           file.Id,
				SessionStart:     session.SessionStart,
				SessionEnd:       session.SessionEnd,
				StartOffset:      session.StartOffset,
				EndOffset:        session.EndOffset,
				SessionContent:   session.Content,
				TagId:            session.TagId,
				SubTagIds:        session.SubTagIds,
				Recommends:       session.Recommends,
				ProblemStatement: session.ProblemStatement,
				Solution:         session.Solution,
				Status:           session.Status,
				CreatedAt:        time.Now(),
			})
		}
		if err := s.analyses.SaveAll(ctx, records); err != nil {
			s.logger.Error("analysis", "persist records failed", map[string]interface{}{
				"fileId": file.Id.String(),
				"error":  err.Error(),
			})
		} else {
			finalStatus = constant.FileStatusProcessed
			recordCount = len(records)
		}
	}

	if err := s.files.UpdateStatus(ctx, file.Id, finalStatus); err != nil {
		s.logger.Error("analysis", "update file status failed", map[string]interface{}{
			"fileId": file.Id.String(),
			"error":  err.Error(),
		})
	}

	s.publishCompleted(userId, file, recordCount, finalStatus)
}

func (s *analysisService) publishCompleted(userId uuid.UUID, file *entity.FileInfo, recordCount, status int) {
	if s.pubSub == nil {
		return
	}
	payload, err := json.Marshal(AnalysisCompletedMessage{
		UserId:      userId,
		FileId:      file.Id,
		FileName:    file.FileName,
		RecordCount: recordCount,
		Status:      status,
	})
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topic, msg); err != nil {
		s.logger.Warn("analysis", "publish completed event failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *analysisService) ListByFile(ctx context.Context, userId uuid.UUID, fileId uuid.UUID) ([]*dto.AnalysisRecordResponse, error) {
	file, err := s.files.FindById(ctx, fileId)
	if err != nil {
		return nil, err
	}
	if file == nil || file.UserId != userId {
		return nil, fmt.Errorf("%w: file", constant.ErrNotFound)
	}

	records, err := s.analyses.FindAllByFileId(ctx, fileId)
	if err != nil {
		return nil, err
	}
	return s.toAnalysisResponses(ctx, userId, records)
}

func (s *analysisService) ListByUser(ctx context.Context, userId uuid.UUID) ([]*dto.AnalysisRecordResponse, error) {
	records, err := s.analyses.FindAllByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.toAnalysisResponses(ctx, userId, records)
}

func (s *analysisService) TagUsage(ctx context.Context, userId uuid.UUID) ([]*dto.TagUsageResponse, error) {
	mains, err := s.tags.FindMainTagsByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.TagUsageResponse, 0, len(mains))
	for _, main := range mains {
		count, err := s.analyses.CountByTagId(ctx, main.Id)
		if err != nil {
			return nil, err
		}
		result = append(result, &dto.TagUsageResponse{TagId: main.Id, Name: main.Name, Count: count})
	}
	return result, nil
}

func (s *analysisService) toAnalysisResponses(ctx context.Context, userId uuid.UUID, records []*entity.AnalysisRecord) ([]*dto.AnalysisRecordResponse, error) {
	mainNames, subNames, err := s.tagNames(ctx, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AnalysisRecordResponse, 0, len(records))
	for _, record := range records {
		resp := &dto.AnalysisRecordResponse{
			Id:               record.Id,
			FileId:           record.FileId,
			SessionStart:     record.SessionStart,
			SessionEnd:       record.SessionEnd,
			StartOffset:      record.StartOffset,
			EndOffset:        record.EndOffset,
			TagId:            record.TagId,
			SubTagIds:        record.SubTagIds,
			Recommends:       record.Recommends,
			ProblemStatement: record.ProblemStatement,
			Solution:         record.Solution,
			Status:           record.Status,
			CreatedAt:        record.CreatedAt,
		}
		if record.TagId != nil {
			resp.TagName = mainNames[*record.TagId]
		}
		for _, subId := range record.SubTagIds {
			if name, ok := subNames[subId]; ok {
				resp.SubTagNames = append(resp.SubTagNames, name)
			}
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *analysisService) tagNames(ctx context.Context, userId uuid.UUID) (map[uuid.UUID]string, map[uuid.UUID]string, error) {
	mains, err := s.tags.FindMainTagsByUserId(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	subs, err := s.tags.FindSubTagsByUserId(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	mainNames := make(map[uuid.UUID]string, len(mains))
	for _, main := range mains {
		mainNames[main.Id] = main.Name
	}
	subNames := make(map[uuid.UUID]string, len(subs))
	for _, sub := range subs {
		subNames[sub.Id] = sub.Name
	}
	return mainNames, subNames, nil
}
