package entity

// StartupInput は分析対象スタートアップの事業データです。
// トランスポート層でバリデーション済みの値がそのまま渡されます。
type StartupInput struct {
	ProductTechnology ProductTechnology
	MarketingGrowth   MarketingGrowth
	TeamOrganization  TeamOrganization
	CompetitionMarket CompetitionMarket
	FinanceRunway     FinanceRunway
}

// ProductTechnology はプロダクト・技術面の情報です。
type ProductTechnology struct {
	ProductType     string   // Web / Mobile / SaaS / Hardware / AI
	CurrentFeatures []string // 現在の主要機能
	TechStack       []string // 利用技術スタック
	DataStrategy    string   // None / User Data / External APIs / Proprietary
	AIUsage         string   // None / Planned / In Production
	TechChallenges  string   // 技術的な課題
}

// MarketingGrowth はマーケティング・成長面の情報です。
type MarketingGrowth struct {
	CurrentMarketingChannels []string // 現在のマーケティングチャネル
	MonthlyUsers             int      // 月間ユーザー数
	CustomerAcquisitionCost  string   // 顧客獲得コスト
	RetentionStrategy        string   // リテンション施策
	GrowthProblems           string   // 成長面の課題
}

// TeamOrganization はチーム・組織面の情報です。
type TeamOrganization struct {
	TeamSize              int      // チーム人数
	FounderRoles          []string // 創業者の役割
	HiringPlanNext3Months string   // 直近3ヶ月の採用計画
	OrgChallenges         string   // 組織面の課題
}

// CompetitionMarket は競合・市場面の情報です。
type CompetitionMarket struct {
	KnownCompetitors []string // 既知の競合
	UniqueAdvantage  string   // 独自の強み
	PricingModel     string   // 価格モデル
	MarketRisks      string   // 市場リスク
}

// FinanceRunway は財務・ランウェイ面の情報です。
type FinanceRunway struct {
	MonthlyBurn       string // 月間バーンレート
	CurrentRevenue    string // 現在の売上
	FundingStatus     string // Bootstrapped / Angel / Seed / Series A
	RunwayMonths      string // 残りランウェイ（月数）
	FinancialConcerns string // 財務面の懸念
}
