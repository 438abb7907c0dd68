package service

import (
	"context"
	"encoding/json"
	"fmt"

	"review-agent-be/internal/constant"
	"review-agent-be/internal/pkg/logger"
	"review-agent-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService drains the in-process completed-run topic and fans each
// message out as a user-facing notification. Keeping this off the pipeline
// goroutine means a slow broker never delays a run.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	notify    INotifyService
	logger    logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, notify INotifyService, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		notify:    notify,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload AnalysisCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "unmarshal completed message", map[string]interface{}{"error": err.Error()})
		// Malformed messages are acked, retrying cannot fix them.
		msg.Ack()
		return
	}

	eventType := events.TypeAnalysisCompleted
	text := fmt.Sprintf("Analysis finished for %s: %d session(s)", payload.FileName, payload.RecordCount)
	if payload.Status == constant.FileStatusError {
		eventType = events.TypeAnalysisFailed
		text = "Analysis failed for " + payload.FileName
	}

	cs.notify.Notify(ctx, payload.UserId, eventType, text, map[string]interface{}{
		"fileId":      payload.FileId.String(),
		"recordCount": payload.RecordCount,
	})
	msg.Ack()
}
