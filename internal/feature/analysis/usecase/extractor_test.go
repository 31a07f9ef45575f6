package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board_backend/internal/feature/analysis/domain/entity"
)

// validResults builds a full task result slice in the fixed category order.
func validResults() []TaskResult {
	results := make([]TaskResult, 0, len(entity.Categories()))
	for _, cat := range entity.Categories() {
		results = append(results, TaskResult{
			Category: cat,
			Validated: &entity.SuggestionSet{
				Category:    cat,
				Suggestions: []string{string(cat) + "-1", string(cat) + "-2", string(cat) + "-3", string(cat) + "-4", string(cat) + "-5"},
			},
		})
	}
	return results
}

func TestExtractResults_Success(t *testing.T) {
	t.Parallel()

	result, err := ExtractResults(validResults())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, []string{"marketing-1", "marketing-2", "marketing-3", "marketing-4", "marketing-5"}, result.MarketingSuggestions)
	assert.Equal(t, []string{"tech-1", "tech-2", "tech-3", "tech-4", "tech-5"}, result.TechSuggestions)
	assert.Equal(t, []string{"org_hr-1", "org_hr-2", "org_hr-3", "org_hr-4", "org_hr-5"}, result.OrgHRSuggestions)
	assert.Equal(t, []string{"competitive-1", "competitive-2", "competitive-3", "competitive-4", "competitive-5"}, result.CompetitiveSuggestions)
	assert.Equal(t, []string{"finance-1", "finance-2", "finance-3", "finance-4", "finance-5"}, result.FinanceSuggestions)
}

func TestExtractResults_Deterministic(t *testing.T) {
	t.Parallel()

	input := validResults()

	first, err1 := ExtractResults(input)
	second, err2 := ExtractResults(input)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestExtractResults_MissingOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mutate       func(results []TaskResult) []TaskResult
		wantCategory entity.Category
	}{
		{
			name: "org_hr slot has no validated output",
			mutate: func(results []TaskResult) []TaskResult {
				results[2].Validated = nil
				return results
			},
			wantCategory: entity.CategoryOrgHR,
		},
		{
			name: "org_hr slot has empty suggestions",
			mutate: func(results []TaskResult) []TaskResult {
				results[2].Validated = &entity.SuggestionSet{Category: entity.CategoryOrgHR}
				return results
			},
			wantCategory: entity.CategoryOrgHR,
		},
		{
			name: "first slot carries the wrong category",
			mutate: func(results []TaskResult) []TaskResult {
				results[0].Category = entity.CategoryFinance
				return results
			},
			wantCategory: entity.CategoryMarketing,
		},
		{
			name: "result slice is shorter than the panel",
			mutate: func(results []TaskResult) []TaskResult {
				return results[:3]
			},
			wantCategory: entity.CategoryCompetitive,
		},
		{
			name: "result slice is empty",
			mutate: func(results []TaskResult) []TaskResult {
				return nil
			},
			wantCategory: entity.CategoryMarketing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := ExtractResults(tt.mutate(validResults()))

			require.Error(t, err)
			assert.Nil(t, result, "no partial result should be produced")
			assert.ErrorIs(t, err, ErrMissingStructuredOutput)

			var missing *MissingOutputError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.wantCategory, missing.Category)
			assert.Contains(t, err.Error(), string(tt.wantCategory))
		})
	}
}

func TestMissingOutputError_Message(t *testing.T) {
	t.Parallel()

	err := &MissingOutputError{Category: entity.CategoryOrgHR}

	assert.Equal(t, "missing structured output for org_hr task", err.Error())
	assert.True(t, errors.Is(err, ErrMissingStructuredOutput))
}
