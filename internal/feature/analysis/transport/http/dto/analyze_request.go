// Package dto はanalysisフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "board_backend/internal/feature/analysis/domain/entity"

// AnalyzeRequest は/api/analyzeエンドポイントのリクエストボディを表します。
type AnalyzeRequest struct {
	StartupData StartupData `json:"startup_data" binding:"required"`
}

// StartupData は分析対象スタートアップの事業データです。
type StartupData struct {
	ProductTechnology ProductTechnology `json:"product_technology" binding:"required"`
	MarketingGrowth   MarketingGrowth   `json:"marketing_growth" binding:"required"`
	TeamOrganization  TeamOrganization  `json:"team_organization" binding:"required"`
	CompetitionMarket CompetitionMarket `json:"competition_market" binding:"required"`
	FinanceRunway     FinanceRunway     `json:"finance_runway" binding:"required"`
}

// ProductTechnology はプロダクト・技術面の入力です。
type ProductTechnology struct {
	ProductType     string   `json:"product_type" binding:"required,oneof=Web Mobile SaaS Hardware AI"`
	CurrentFeatures []string `json:"current_features"`
	TechStack       []string `json:"tech_stack"`
	DataStrategy    string   `json:"data_strategy" binding:"required,oneof=None 'User Data' 'External APIs' Proprietary"`
	AIUsage         string   `json:"ai_usage" binding:"required,oneof=None Planned 'In Production'"`
	TechChallenges  string   `json:"tech_challenges"`
}

// MarketingGrowth はマーケティング・成長面の入力です。
type MarketingGrowth struct {
	CurrentMarketingChannels []string `json:"current_marketing_channels"`
	MonthlyUsers             int      `json:"monthly_users" binding:"min=0"`
	CustomerAcquisitionCost  string   `json:"customer_acquisition_cost"`
	RetentionStrategy        string   `json:"retention_strategy"`
	GrowthProblems           string   `json:"growth_problems"`
}

// TeamOrganization はチーム・組織面の入力です。
type TeamOrganization struct {
	TeamSize              int      `json:"team_size" binding:"min=0"`
	FounderRoles          []string `json:"founder_roles"`
	HiringPlanNext3Months string   `json:"hiring_plan_next_3_months"`
	OrgChallenges         string   `json:"org_challenges"`
}

// CompetitionMarket は競合・市場面の入力です。
type CompetitionMarket struct {
	KnownCompetitors []string `json:"known_competitors"`
	UniqueAdvantage  string   `json:"unique_advantage"`
	PricingModel     string   `json:"pricing_model"`
	MarketRisks      string   `json:"market_risks"`
}

// FinanceRunway は財務・ランウェイ面の入力です。
type FinanceRunway struct {
	MonthlyBurn       string `json:"monthly_burn"`
	CurrentRevenue    string `json:"current_revenue"`
	FundingStatus     string `json:"funding_status" binding:"required,oneof=Bootstrapped Angel Seed 'Series A'"`
	RunwayMonths      string `json:"runway_months"`
	FinancialConcerns string `json:"financial_concerns"`
}

// ToEntity はリクエストDTOをドメインエンティティに変換します。
func (r AnalyzeRequest) ToEntity() entity.StartupInput {
	d := r.StartupData
	return entity.StartupInput{
		ProductTechnology: entity.ProductTechnology{
			ProductType:     d.ProductTechnology.ProductType,
			CurrentFeatures: d.ProductTechnology.CurrentFeatures,
			TechStack:       d.ProductTechnology.TechStack,
			DataStrategy:    d.ProductTechnology.DataStrategy,
			AIUsage:         d.ProductTechnology.AIUsage,
			TechChallenges:  d.ProductTechnology.TechChallenges,
		},
		MarketingGrowth: entity.MarketingGrowth{
			CurrentMarketingChannels: d.MarketingGrowth.CurrentMarketingChannels,
			MonthlyUsers:             d.MarketingGrowth.MonthlyUsers,
			CustomerAcquisitionCost:  d.MarketingGrowth.CustomerAcquisitionCost,
			RetentionStrategy:        d.MarketingGrowth.RetentionStrategy,
			GrowthProblems:           d.MarketingGrowth.GrowthProblems,
		},
		TeamOrganization: entity.TeamOrganization{
			TeamSize:              d.TeamOrganization.TeamSize,
			FounderRoles:          d.TeamOrganization.FounderRoles,
			HiringPlanNext3Months: d.TeamOrganization.HiringPlanNext3Months,
			OrgChallenges:         d.TeamOrganization.OrgChallenges,
		},
		CompetitionMarket: entity.CompetitionMarket{
			KnownCompetitors: d.CompetitionMarket.KnownCompetitors,
			UniqueAdvantage:  d.CompetitionMarket.UniqueAdvantage,
			PricingModel:     d.CompetitionMarket.PricingModel,
			MarketRisks:      d.CompetitionMarket.MarketRisks,
		},
		FinanceRunway: entity.FinanceRunway{
			MonthlyBurn:       d.FinanceRunway.MonthlyBurn,
			CurrentRevenue:    d.FinanceRunway.CurrentRevenue,
			FundingStatus:     d.FinanceRunway.FundingStatus,
			RunwayMonths:      d.FinanceRunway.RunwayMonths,
			FinancialConcerns: d.FinanceRunway.FinancialConcerns,
		},
	}
}
