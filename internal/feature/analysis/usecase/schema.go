package usecase

import (
	"fmt"
	"strings"
)

// DefaultSuggestionCount は1カテゴリあたりの提案件数です。
const DefaultSuggestionCount = 5

// SuggestionSchema は提案リストの宣言的な制約（ちょうどItems件・各要素は非空文字列）です。
// 生成直後に必ずValidateを通し、通過した値だけが検証済みとして扱われます。
// モデル側に渡すレスポンススキーマと同じ制約ですが、モデル側の保証は信用しません。
type SuggestionSchema struct {
	Items int // 要求する提案件数
}

// DefaultSuggestionSchema はちょうど5件の提案を要求するスキーマを返します。
func DefaultSuggestionSchema() SuggestionSchema {
	return SuggestionSchema{Items: DefaultSuggestionCount}
}

// Validate は生成された提案リストをスキーマに照らして検証します。
// 各要素を前後トリムした上で、空要素または件数違反があればエラーを返します。
// 成功時はトリム済みのコピーを返します。
func (s SuggestionSchema) Validate(suggestions []string) ([]string, error) {
	if len(suggestions) != s.Items {
		return nil, fmt.Errorf("expected exactly %d suggestions, got %d", s.Items, len(suggestions))
	}
	out := make([]string, 0, len(suggestions))
	for i, raw := range suggestions {
		v := strings.TrimSpace(raw)
		if v == "" {
			return nil, fmt.Errorf("suggestion %d is empty", i+1)
		}
		out = append(out, v)
	}
	return out, nil
}
