// Package entity はanalysisフィーチャーのドメインモデルを定義します。
package entity

import "time"

// Category はアドバイザリーパネルの固定カテゴリを表します。
type Category string

// パネルの5カテゴリ。分析タスクは常にこの順序で実行されます。
const (
	CategoryMarketing   Category = "marketing"
	CategoryTech        Category = "tech"
	CategoryOrgHR       Category = "org_hr"
	CategoryCompetitive Category = "competitive"
	CategoryFinance     Category = "finance"
)

// Categories は固定のカテゴリ順序を返します。
// タスク実行・結果抽出の両方がこの順序に依存します。
func Categories() []Category {
	return []Category{
		CategoryMarketing,
		CategoryTech,
		CategoryOrgHR,
		CategoryCompetitive,
		CategoryFinance,
	}
}

// SuggestionSet は1カテゴリ分の検証済み提案リストを表します。
// 生成・スキーマ検証を通過した後にのみ生成され、以降は読み取り専用です。
type SuggestionSet struct {
	Category    Category // 提案のカテゴリ
	Suggestions []string // ちょうど5件の非空文字列
}

// AnalysisResult は全5カテゴリの提案を集約した分析結果です。
// 5カテゴリすべてが揃っていることが不変条件です（部分的な結果は存在しません）。
type AnalysisResult struct {
	MarketingSuggestions   []string `json:"marketing_suggestions"`
	TechSuggestions        []string `json:"tech_suggestions"`
	OrgHRSuggestions       []string `json:"org_hr_suggestions"`
	CompetitiveSuggestions []string `json:"competitive_suggestions"`
	FinanceSuggestions     []string `json:"finance_suggestions"`
}

// Status は分析リクエストのライフサイクル状態を表します。
type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Analysis は1件の分析リクエストの状態レコードです。
type Analysis struct {
	ID          string          // 分析リクエストのUUID
	Status      Status          // 現在のライフサイクル状態
	SubmittedAt time.Time       // リクエスト受付時刻
	CompletedAt *time.Time      // 完了または失敗した時刻
	Result      *AnalysisResult // 完了時のみ設定される
	Error       string          // 失敗時のみ設定される
}
