// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"

	"board_backend/internal/feature/analysis/adapters/gemini"
	"board_backend/internal/feature/analysis/usecase"
	"board_backend/internal/shared/ratelimiter"
)

// NewSuggestionGenerator creates the Gemini-backed structured suggestion generator.
func NewSuggestionGenerator(ctx context.Context) (usecase.SuggestionGenerator, error) {
	return gemini.NewSuggestionClient(ctx)
}

// NewPacer creates the token-budget pacer shared by all advisor tasks.
func NewPacer() *ratelimiter.TokenPacer {
	return ratelimiter.NewTokenPacer(
		ratelimiter.DefaultTokensPerMinute,
		ratelimiter.DefaultTokensPerTask,
		ratelimiter.DefaultSafetyMargin,
	)
}
