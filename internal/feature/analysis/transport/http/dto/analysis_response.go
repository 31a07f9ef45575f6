package dto

import (
	"time"

	"board_backend/internal/feature/analysis/domain/entity"
)

// AnalyzeResponse は分析受付時のレスポンスです。
type AnalyzeResponse struct {
	AnalysisID string `json:"analysis_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// ResultsResponse は5カテゴリ分の検証済み提案リストです。
type ResultsResponse struct {
	MarketingSuggestions   []string `json:"marketing_suggestions"`
	TechSuggestions        []string `json:"tech_suggestions"`
	OrgHRSuggestions       []string `json:"org_hr_suggestions"`
	CompetitiveSuggestions []string `json:"competitive_suggestions"`
	FinanceSuggestions     []string `json:"finance_suggestions"`
}

// StatusResponse は分析状態照会のレスポンスです。
type StatusResponse struct {
	AnalysisID  string           `json:"analysis_id"`
	Status      string           `json:"status"`
	SubmittedAt string           `json:"submitted_at"`
	CompletedAt *string          `json:"completed_at,omitempty"`
	Result      *ResultsResponse `json:"result,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// NewStatusResponse はドメインエンティティからレスポンスDTOを組み立てます。
func NewStatusResponse(a *entity.Analysis) StatusResponse {
	resp := StatusResponse{
		AnalysisID:  a.ID,
		Status:      string(a.Status),
		SubmittedAt: a.SubmittedAt.Format(time.RFC3339),
		Error:       a.Error,
	}
	if a.CompletedAt != nil {
		s := a.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	if a.Result != nil {
		resp.Result = &ResultsResponse{
			MarketingSuggestions:   a.Result.MarketingSuggestions,
			TechSuggestions:        a.Result.TechSuggestions,
			OrgHRSuggestions:       a.Result.OrgHRSuggestions,
			CompetitiveSuggestions: a.Result.CompetitiveSuggestions,
			FinanceSuggestions:     a.Result.FinanceSuggestions,
		}
	}
	return resp
}
