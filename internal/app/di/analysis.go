package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"board_backend/internal/feature/analysis/adapters"
	"board_backend/internal/feature/analysis/usecase"
)

// NewAnalysisRepository creates an AnalysisRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to PostgreSQL.
func NewAnalysisRepository(rdb *redis.Client, db *gorm.DB) usecase.AnalysisRepository {
	if rdb != nil {
		return adapters.NewAnalysisRedis(rdb, "analysis", adapters.DefaultRecordTTL)
	}
	return adapters.NewAnalysisGorm(db)
}
