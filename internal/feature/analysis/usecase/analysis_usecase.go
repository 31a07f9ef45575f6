package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"board_backend/internal/feature/analysis/domain/entity"
)

const (
	// defaultMaxAttempts はレートリミット時の最大試行回数です。
	defaultMaxAttempts = 5
	// defaultBaseBackoff はリトライ時の初期待機時間です（指数的に増加）。
	defaultBaseBackoff = 10 * time.Second
	// defaultRunTimeout はバックグラウンド分析1件の全体タイムアウトです。
	defaultRunTimeout = 5 * time.Minute
)

// SuggestionGenerator は1タスク分の提案生成を抽象化します。
// 返されるSuggestionSetはタスクのスキーマ検証を通過済みでなければなりません。
// レートリミット時はErrRateLimitedをラップしたエラーを返します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SuggestionGenerator interface {
	Generate(ctx context.Context, task AdvisorTask) (*entity.SuggestionSet, error)
}

// AnalysisRepository は分析状態レコードの永続化層を抽象化します。
type AnalysisRepository interface {
	// Create は新しい分析レコードを保存します。
	Create(ctx context.Context, a *entity.Analysis) error
	// Update は既存の分析レコードを上書きします。
	Update(ctx context.Context, a *entity.Analysis) error
	// FindByID はIDで分析レコードを取得します。
	// 存在しない場合はErrAnalysisNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.Analysis, error)
}

// Pacer は生成呼び出し間のトークンバジェットに基づく待機を抽象化します。
type Pacer interface {
	WaitIfNeeded(ctx context.Context) error
}

// Config はanalysisUsecaseの調整可能なパラメータです。
// ゼロ値のフィールドにはデフォルトが適用されます。
type Config struct {
	MaxAttempts int           // レートリミット時の最大試行回数
	BaseBackoff time.Duration // リトライの初期待機時間
	RunTimeout  time.Duration // 分析1件の全体タイムアウト
}

// analysisUsecase は分析リクエストのライフサイクルを管理します。
type analysisUsecase struct {
	repo      AnalysisRepository
	generator SuggestionGenerator
	pacer     Pacer
	schema    SuggestionSchema
	cfg       Config
}

// NewAnalysisUsecase はanalysisUsecaseの新しいインスタンスを生成します。
func NewAnalysisUsecase(repo AnalysisRepository, generator SuggestionGenerator, pacer Pacer, cfg Config) *analysisUsecase {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = defaultBaseBackoff
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = defaultRunTimeout
	}
	return &analysisUsecase{
		repo:      repo,
		generator: generator,
		pacer:     pacer,
		schema:    DefaultSuggestionSchema(),
		cfg:       cfg,
	}
}

// Submit は分析リクエストを受け付け、キュー済みレコードを返します。
// 生成処理はバックグラウンドで実行され、進捗はGetで確認します。
func (u *analysisUsecase) Submit(ctx context.Context, input entity.StartupInput) (*entity.Analysis, error) {
	analysis := &entity.Analysis{
		ID:          uuid.NewString(),
		Status:      entity.StatusQueued,
		SubmittedAt: time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, analysis); err != nil {
		return nil, fmt.Errorf("failed to create analysis record: %w", err)
	}

	// リクエストスコープのctxとは切り離して実行する
	go func() {
		runCtx, cancel := context.WithTimeout(context.Background(), u.cfg.RunTimeout)
		defer cancel()
		u.run(runCtx, analysis.ID, input)
	}()

	return analysis, nil
}

// Get はIDで分析レコードを取得します。
func (u *analysisUsecase) Get(ctx context.Context, id string) (*entity.Analysis, error) {
	return u.repo.FindByID(ctx, id)
}

// run は5つのアドバイザータスクを固定順で実行し、結果を抽出して保存します。
// いずれかのタスクが検証済み出力を生成できなかった場合、残りのタスクは
// 実行せず、欠落カテゴリを特定するエラーで分析全体を失敗させます。
func (u *analysisUsecase) run(ctx context.Context, id string, input entity.StartupInput) {
	u.setStatus(ctx, id, entity.StatusProcessing)

	tasks := BuildAdvisorTasks(input, u.schema)
	results := make([]TaskResult, 0, len(tasks))
	for _, task := range tasks {
		set, err := u.generateWithRetry(ctx, task)
		if err != nil {
			slog.Error("advisor task failed", "analysis_id", id, "category", task.Category, "error", err)
			results = append(results, TaskResult{Category: task.Category})
			break
		}
		slog.Info("advisor task completed", "analysis_id", id, "category", task.Category, "suggestions", len(set.Suggestions))
		results = append(results, TaskResult{Category: task.Category, Validated: set})
	}

	result, err := ExtractResults(results)

	now := time.Now().UTC()
	analysis := &entity.Analysis{
		ID:          id,
		SubmittedAt: u.submittedAt(ctx, id),
		CompletedAt: &now,
	}
	if err != nil {
		analysis.Status = entity.StatusFailed
		analysis.Error = err.Error()
		slog.Error("analysis failed", "analysis_id", id, "error", err)
	} else {
		analysis.Status = entity.StatusCompleted
		analysis.Result = result
		slog.Info("analysis completed", "analysis_id", id)
	}

	if err := u.repo.Update(ctx, analysis); err != nil {
		slog.Error("failed to store analysis outcome", "analysis_id", id, "error", err)
	}
}

// generateWithRetry は1タスクを実行します。レートリミット時のみ指数バックオフで
// リトライし、スキーマ検証エラーなどはそのまま失敗として返します。
func (u *analysisUsecase) generateWithRetry(ctx context.Context, task AdvisorTask) (*entity.SuggestionSet, error) {
	var lastErr error
	for attempt := 0; attempt < u.cfg.MaxAttempts; attempt++ {
		if err := u.pacer.WaitIfNeeded(ctx); err != nil {
			return nil, err
		}

		set, err := u.generator.Generate(ctx, task)
		if err == nil {
			return set, nil
		}
		lastErr = err

		if !isRateLimited(err) {
			return nil, err
		}

		// 最終試行後はリトライが続かないため待機しない
		if attempt == u.cfg.MaxAttempts-1 {
			break
		}

		delay := u.cfg.BaseBackoff * (1 << attempt)
		slog.Warn("rate limited, backing off", "category", task.Category, "attempt", attempt+1, "delay", delay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("rate limit exceeded after %d attempts: %w", u.cfg.MaxAttempts, lastErr)
}

// setStatus は分析レコードの状態だけを更新します。
func (u *analysisUsecase) setStatus(ctx context.Context, id string, status entity.Status) {
	analysis, err := u.repo.FindByID(ctx, id)
	if err != nil {
		slog.Error("failed to load analysis for status update", "analysis_id", id, "error", err)
		return
	}
	analysis.Status = status
	if err := u.repo.Update(ctx, analysis); err != nil {
		slog.Error("failed to update analysis status", "analysis_id", id, "error", err)
	}
}

// submittedAt は保存済みレコードの受付時刻を引き継ぎます。
func (u *analysisUsecase) submittedAt(ctx context.Context, id string) time.Time {
	if analysis, err := u.repo.FindByID(ctx, id); err == nil {
		return analysis.SubmittedAt
	}
	return time.Time{}
}
