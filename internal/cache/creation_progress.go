package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"ticketee/internal/model"
	apperrors "ticketee/pkg/app_errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ProgressStore 保存活動建立進度，讓前端輪詢進度面板
type ProgressStore interface {
	Save(ctx context.Context, progress *model.CreationProgress) error
	Get(ctx context.Context, submissionID uuid.UUID) (*model.CreationProgress, error)
}

type RedisProgressStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProgressStore(client *redis.Client, ttl time.Duration) ProgressStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisProgressStore{client: client, ttl: ttl}
}

func progressKey(submissionID uuid.UUID) string {
	return fmt.Sprintf("creation:%s", submissionID)
}

func (s *RedisProgressStore) Save(ctx context.Context, progress *model.CreationProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	return s.client.Set(ctx, progressKey(progress.SubmissionID), data, s.ttl).Err()
}

func (s *RedisProgressStore) Get(ctx context.Context, submissionID uuid.UUID) (*model.CreationProgress, error) {
	data, err := s.client.Get(ctx, progressKey(submissionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}

	var progress model.CreationProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, fmt.Errorf("unmarshal progress: %w", err)
	}
	return &progress, nil
}
