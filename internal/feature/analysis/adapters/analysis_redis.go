// Package adapters はanalysisフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"board_backend/internal/feature/analysis/domain/entity"
	"board_backend/internal/feature/analysis/usecase"
)

// DefaultRecordTTL は分析レコードの保持期間です。
// 結果はリクエストスコープのもので、恒久的な保存はしません。
const DefaultRecordTTL = 24 * time.Hour

// AnalysisRedis implements usecase.AnalysisRepository using Redis.
type AnalysisRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// AnalysisRedisがAnalysisRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.AnalysisRepository = (*AnalysisRedis)(nil)

// NewAnalysisRedis creates a new AnalysisRedis instance.
// If ttl is 0, DefaultRecordTTL is used. If prefix is empty, "analysis" is used.
func NewAnalysisRedis(client *redis.Client, prefix string, ttl time.Duration) *AnalysisRedis {
	if prefix == "" {
		prefix = "analysis"
	}
	if ttl <= 0 {
		ttl = DefaultRecordTTL
	}
	return &AnalysisRedis{client: client, prefix: prefix, ttl: ttl}
}

// key returns the Redis key for an analysis record.
func (r *AnalysisRedis) key(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// Create persists a new analysis record with the configured TTL.
func (r *AnalysisRedis) Create(ctx context.Context, a *entity.Analysis) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	return r.client.Set(ctx, r.key(a.ID), data, r.ttl).Err()
}

// Update overwrites an existing record, keeping the remaining TTL.
// KEEPTTL on a missing key would recreate the record without expiry,
// so a record whose key already expired is rewritten with a fresh TTL.
func (r *AnalysisRedis) Update(ctx context.Context, a *entity.Analysis) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	ok, err := r.client.SetXX(ctx, r.key(a.ID), data, redis.KeepTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return r.client.Set(ctx, r.key(a.ID), data, r.ttl).Err()
	}
	return nil
}

// FindByID retrieves an analysis record by its ID.
func (r *AnalysisRedis) FindByID(ctx context.Context, id string) (*entity.Analysis, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrAnalysisNotFound
		}
		return nil, err
	}

	var a entity.Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &a, nil
}
