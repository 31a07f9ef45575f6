package usecase

import (
	"board_backend/internal/feature/analysis/domain/entity"
)

// TaskResult は1タスク分の実行結果ハンドルです。
// 生成・スキーマ検証を通過した場合のみValidatedが設定されます。
// 本パッケージはValidatedの中身を再検証しません（検証は生成側の責務です）。
type TaskResult struct {
	Category  entity.Category       // このタスクのカテゴリ
	Validated *entity.SuggestionSet // 検証済み出力。失敗時はnil
}

// ExtractResults は固定カテゴリ順の5タスク結果を1つのAnalysisResultに写像します。
// いずれかのスロットに検証済み出力が無い場合、そのカテゴリを特定する
// MissingOutputErrorを返し、部分的な結果は生成しません。
// 副作用はなく、同じ入力に対して常に同じ結果を返します。
func ExtractResults(results []TaskResult) (*entity.AnalysisResult, error) {
	lists := make(map[entity.Category][]string, len(results))
	for i, want := range entity.Categories() {
		if i >= len(results) {
			return nil, &MissingOutputError{Category: want}
		}
		r := results[i]
		// スロットのカテゴリ不一致も、期待カテゴリの出力欠落として扱う
		if r.Category != want || r.Validated == nil || len(r.Validated.Suggestions) == 0 {
			return nil, &MissingOutputError{Category: want}
		}
		lists[want] = r.Validated.Suggestions
	}

	return &entity.AnalysisResult{
		MarketingSuggestions:   lists[entity.CategoryMarketing],
		TechSuggestions:        lists[entity.CategoryTech],
		OrgHRSuggestions:       lists[entity.CategoryOrgHR],
		CompetitiveSuggestions: lists[entity.CategoryCompetitive],
		FinanceSuggestions:     lists[entity.CategoryFinance],
	}, nil
}
