// Package usecase はanalysisフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"errors"
	"fmt"

	"board_backend/internal/feature/analysis/domain/entity"
)

var (
	// ErrMissingStructuredOutput is returned when a task result lacks its
	// validated structured output. It signals that the upstream generation or
	// schema validation step failed; there is no local recovery or fallback
	// text parsing.
	ErrMissingStructuredOutput = errors.New("missing structured output")

	// ErrAnalysisNotFound is returned when no analysis exists for the given ID.
	ErrAnalysisNotFound = errors.New("analysis not found")

	// ErrRateLimited is returned by a SuggestionGenerator when the model
	// provider rejects the request due to rate limits. Callers may retry.
	ErrRateLimited = errors.New("model provider rate limit exceeded")
)

// MissingOutputError は検証済み構造化出力を欠いたカテゴリを特定するエラーです。
// errors.Is(err, ErrMissingStructuredOutput) で判別できます。
type MissingOutputError struct {
	Category entity.Category
}

func (e *MissingOutputError) Error() string {
	return fmt.Sprintf("missing structured output for %s task", e.Category)
}

func (e *MissingOutputError) Unwrap() error {
	return ErrMissingStructuredOutput
}

// isRateLimited は生成エラーがリトライ可能なレートリミット起因かを判定します。
func isRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
