package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"review-agent-be/internal/dto"
	"review-agent-be/internal/pkg/logger"
	"review-agent-be/pkg/events"
	pktNats "review-agent-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	recentListMax = 100
	recentListTTL = 7 * 24 * time.Hour
)

// INotifyService pushes lifecycle updates to the event bus and keeps a capped
// per-user recent list for polling clients. Delivery is best effort: a dead
// broker never fails the operation that produced the update.
type INotifyService interface {
	Notify(ctx context.Context, userId uuid.UUID, eventType, message string, metadata map[string]interface{})
	Recent(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.NotificationMessage, error)
}

type notifyService struct {
	publisher *pktNats.Publisher
	redis     *redis.Client
	logger    logger.ILogger
}

func NewNotifyService(publisher *pktNats.Publisher, redisClient *redis.Client, log logger.ILogger) INotifyService {
	return &notifyService{
		publisher: publisher,
		redis:     redisClient,
		logger:    log,
	}
}

func recentKey(userId uuid.UUID) string {
	return fmt.Sprintf("notify:recent:%s", userId)
}

func (s *notifyService) Notify(ctx context.Context, userId uuid.UUID, eventType, message string, metadata map[string]interface{}) {
	payload := map[string]interface{}{
		"userId":  userId.String(),
		"message": message,
	}
	for k, v := range metadata {
		payload[k] = v
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.New(eventType, payload)); err != nil {
			s.logger.Warn("notify", "publish failed", map[string]interface{}{
				"type":  eventType,
				"error": err.Error(),
			})
		}
	}

	if s.redis == nil {
		return
	}
	entry := dto.NotificationMessage{
		Type:       eventType,
		Message:    message,
		Metadata:   metadata,
		OccurredAt: time.Now(),
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	key := recentKey(userId)
	pipe := s.redis.Pipeline()
	pipe.LPush(ctx, key, raw)
	pipe.LTrim(ctx, key, 0, recentListMax-1)
	pipe.Expire(ctx, key, recentListTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("notify", "recent list update failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *notifyService) Recent(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.NotificationMessage, error) {
	if s.redis == nil {
		return []*dto.NotificationMessage{}, nil
	}
	if limit <= 0 || limit > recentListMax {
		limit = recentListMax
	}
	raw, err := s.redis.LRange(ctx, recentKey(userId), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read recent notifications: %w", err)
	}

	result := make([]*dto.NotificationMessage, 0, len(raw))
	for _, item := range raw {
		var msg dto.NotificationMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			continue
		}
		result = append(result, &msg)
	}
	return result, nil
}
