package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"board_backend/internal/feature/analysis/domain/entity"
	"board_backend/internal/feature/analysis/usecase"
)

// analysisGorm はAnalysisRepositoryインターフェースのRDB実装です。
// Redisが利用できない環境向けのフォールバックとして使用されます。
type analysisGorm struct {
	db *gorm.DB
}

// analysisGormがAnalysisRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.AnalysisRepository = (*analysisGorm)(nil)

// NewAnalysisGorm は指定されたgorm.DB接続でanalysisGormの新しいインスタンスを生成します。
func NewAnalysisGorm(db *gorm.DB) *analysisGorm {
	return &analysisGorm{db: db}
}

// AnalysisModel は分析レコードのテーブル定義です。
// 結果は固定スキーマのJSONとして1カラムに保存します。
type AnalysisModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	Status      string `gorm:"size:16;not null"`
	SubmittedAt time.Time
	CompletedAt *time.Time
	Result      []byte `gorm:"type:bytes"`
	Error       string `gorm:"size:1024"`
}

func (AnalysisModel) TableName() string {
	return "analyses"
}

func toModel(a *entity.Analysis) (*AnalysisModel, error) {
	m := &AnalysisModel{
		ID:          a.ID,
		Status:      string(a.Status),
		SubmittedAt: a.SubmittedAt,
		CompletedAt: a.CompletedAt,
		Error:       a.Error,
	}
	if a.Result != nil {
		data, err := json.Marshal(a.Result)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal analysis result: %w", err)
		}
		m.Result = data
	}
	return m, nil
}

func toEntity(m *AnalysisModel) (*entity.Analysis, error) {
	a := &entity.Analysis{
		ID:          m.ID,
		Status:      entity.Status(m.Status),
		SubmittedAt: m.SubmittedAt,
		CompletedAt: m.CompletedAt,
		Error:       m.Error,
	}
	if len(m.Result) > 0 {
		var result entity.AnalysisResult
		if err := json.Unmarshal(m.Result, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
		}
		a.Result = &result
	}
	return a, nil
}

// Create は分析レコードをデータベースに追加します。
func (r *analysisGorm) Create(ctx context.Context, a *entity.Analysis) error {
	m, err := toModel(a)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// Update は既存の分析レコードを上書きします。
func (r *analysisGorm) Update(ctx context.Context, a *entity.Analysis) error {
	m, err := toModel(a)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(m).Error
}

// FindByID はIDで分析レコードを取得します。
// 存在しない場合はusecase.ErrAnalysisNotFoundを返します。
func (r *analysisGorm) FindByID(ctx context.Context, id string) (*entity.Analysis, error) {
	var m AnalysisModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAnalysisNotFound
		}
		return nil, err
	}
	return toEntity(&m)
}
