// Package gemini はGoogle Gemini APIを使用した構造化提案生成クライアントを提供します。
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"google.golang.org/genai"

	"board_backend/internal/feature/analysis/domain/entity"
	"board_backend/internal/feature/analysis/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
	// temperature はJSON出力の安定性を優先した低めの値です。
	temperature float32 = 0.3
	// maxOutputTokens は1タスクあたりの出力トークン上限です。
	maxOutputTokens int32 = 1200
)

// SuggestionClient はGemini APIでスキーマ検証済みの提案リストを生成します。
// レスポンススキーマで出力形式を強制した上で、受信後にローカルでも
// 同じ制約を検証します。フォールバックのテキストパースは行いません。
type SuggestionClient struct {
	client *genai.Client
	model  string
}

// SuggestionClientがSuggestionGeneratorを実装していることをコンパイル時に検証します。
var _ usecase.SuggestionGenerator = (*SuggestionClient)(nil)

// NewSuggestionClient はADCを使用してSuggestionClientの新しいインスタンスを生成します。
// モデルは環境変数 GEMINI_MODEL で上書きできます。
func NewSuggestionClient(ctx context.Context) (*SuggestionClient, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultModel
	}
	return &SuggestionClient{client: client, model: model}, nil
}

// Generate はタスクのプロンプトとスキーマで提案リストを生成します。
// スキーマ検証に失敗した出力は即座にエラーとなり、修復は試みません。
func (g *SuggestionClient) Generate(ctx context.Context, task usecase.AdvisorTask) (*entity.SuggestionSet, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(task.Schema),
		Temperature:      genai.Ptr(temperature),
		MaxOutputTokens:  maxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(task.Prompt), cfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
			return nil, fmt.Errorf("gemini: %w", usecase.ErrRateLimited)
		}
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}

	suggestions, err := parseSuggestions(resp.Text(), task.Schema)
	if err != nil {
		return nil, fmt.Errorf("%s task: %w", task.Category, err)
	}

	return &entity.SuggestionSet{Category: task.Category, Suggestions: suggestions}, nil
}

// parseSuggestions はモデル出力をデコードし、スキーマに照らして検証します。
func parseSuggestions(text string, schema usecase.SuggestionSchema) ([]string, error) {
	var payload struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("model output is not valid JSON: %w", err)
	}
	validated, err := schema.Validate(payload.Suggestions)
	if err != nil {
		return nil, fmt.Errorf("model output failed schema validation: %w", err)
	}
	return validated, nil
}

// responseSchema はSuggestionSchemaをGeminiのレスポンススキーマに変換します。
func responseSchema(s usecase.SuggestionSchema) *genai.Schema {
	n := int64(s.Items)
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"suggestions"},
		Properties: map[string]*genai.Schema{
			"suggestions": {
				Type:     genai.TypeArray,
				MinItems: &n,
				MaxItems: &n,
				Items:    &genai.Schema{Type: genai.TypeString},
			},
		},
	}
}
