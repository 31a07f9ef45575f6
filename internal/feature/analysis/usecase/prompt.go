package usecase

import (
	"fmt"
	"strings"

	"board_backend/internal/feature/analysis/domain/entity"
)

// AdvisorTask は1カテゴリ分の生成タスク設定です。
// プロンプトはリクエストごとにStartupInputから組み立てられ、
// プロセス全体で共有される設定オブジェクトは存在しません。
type AdvisorTask struct {
	Category entity.Category  // このタスクのカテゴリ
	Prompt   string           // 生成に渡す完全なプロンプト
	Schema   SuggestionSchema // 出力に要求する制約
}

// アドバイザーごとのロール定義。プロンプトの冒頭に置かれます。
const (
	roleMarketing   = "You are a startup marketing advisor with deep experience in growth strategy and customer acquisition."
	roleTech        = "You are a startup tech lead with experience scaling engineering teams and architectures."
	roleOrgHR       = "You are an organizational and HR strategist specializing in early-stage startups."
	roleCompetitive = "You are a competitive strategy analyst for startups entering crowded markets."
	roleFinance     = "You are a startup finance advisor focused on runway, burn rate and fundraising."
)

// BuildAdvisorTasks はスタートアップ情報から固定カテゴリ順の5タスクを組み立てます。
func BuildAdvisorTasks(input entity.StartupInput, schema SuggestionSchema) []AdvisorTask {
	profile := startupProfile(input)

	tasks := make([]AdvisorTask, 0, len(entity.Categories()))
	for _, cat := range entity.Categories() {
		var role, focus string
		switch cat {
		case entity.CategoryMarketing:
			role = roleMarketing
			focus = fmt.Sprintf(
				"Focus on marketing and growth. Channels in use: %s. Monthly users: %d. CAC: %s. Retention strategy: %s. Known growth problems: %s.",
				joinOr(input.MarketingGrowth.CurrentMarketingChannels, "none"),
				input.MarketingGrowth.MonthlyUsers,
				input.MarketingGrowth.CustomerAcquisitionCost,
				input.MarketingGrowth.RetentionStrategy,
				input.MarketingGrowth.GrowthProblems,
			)
		case entity.CategoryTech:
			role = roleTech
			focus = fmt.Sprintf(
				"Focus on product and technology. Product type: %s. Tech stack: %s. Data strategy: %s. AI usage: %s. Known tech challenges: %s.",
				input.ProductTechnology.ProductType,
				joinOr(input.ProductTechnology.TechStack, "unknown"),
				input.ProductTechnology.DataStrategy,
				input.ProductTechnology.AIUsage,
				input.ProductTechnology.TechChallenges,
			)
		case entity.CategoryOrgHR:
			role = roleOrgHR
			focus = fmt.Sprintf(
				"Focus on team and organization. Team size: %d. Founder roles: %s. Hiring plan for the next 3 months: %s. Known org challenges: %s.",
				input.TeamOrganization.TeamSize,
				joinOr(input.TeamOrganization.FounderRoles, "unknown"),
				input.TeamOrganization.HiringPlanNext3Months,
				input.TeamOrganization.OrgChallenges,
			)
		case entity.CategoryCompetitive:
			role = roleCompetitive
			focus = fmt.Sprintf(
				"Focus on competition and market position. Known competitors: %s. Unique advantage: %s. Pricing model: %s. Market risks: %s.",
				joinOr(input.CompetitionMarket.KnownCompetitors, "none identified"),
				input.CompetitionMarket.UniqueAdvantage,
				input.CompetitionMarket.PricingModel,
				input.CompetitionMarket.MarketRisks,
			)
		case entity.CategoryFinance:
			role = roleFinance
			focus = fmt.Sprintf(
				"Focus on finance and runway. Monthly burn: %s. Current revenue: %s. Funding status: %s. Runway: %s months. Financial concerns: %s.",
				input.FinanceRunway.MonthlyBurn,
				input.FinanceRunway.CurrentRevenue,
				input.FinanceRunway.FundingStatus,
				input.FinanceRunway.RunwayMonths,
				input.FinanceRunway.FinancialConcerns,
			)
		}

		prompt := fmt.Sprintf(
			"%s\n\nStartup profile:\n%s\n\n%s\n\nReturn a JSON object with a single \"suggestions\" key containing exactly %d concrete, actionable suggestions as strings. No other keys, no prose outside the JSON.",
			role, profile, focus, schema.Items,
		)

		tasks = append(tasks, AdvisorTask{Category: cat, Prompt: prompt, Schema: schema})
	}
	return tasks
}

// startupProfile は全カテゴリ共通のスタートアップ概要を整形します。
func startupProfile(in entity.StartupInput) string {
	return fmt.Sprintf(
		"- Product: %s (features: %s)\n- Team size: %d\n- Monthly users: %d\n- Funding: %s, runway %s months",
		in.ProductTechnology.ProductType,
		joinOr(in.ProductTechnology.CurrentFeatures, "none"),
		in.TeamOrganization.TeamSize,
		in.MarketingGrowth.MonthlyUsers,
		in.FinanceRunway.FundingStatus,
		in.FinanceRunway.RunwayMonths,
	)
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
