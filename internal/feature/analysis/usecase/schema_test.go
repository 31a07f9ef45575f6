package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSuggestionSchema(t *testing.T) {
	t.Parallel()

	schema := DefaultSuggestionSchema()
	assert.Equal(t, DefaultSuggestionCount, schema.Items)
}

func TestSuggestionSchema_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		items       int
		suggestions []string
		want        []string
		wantErr     bool
	}{
		{
			name:        "success: exactly five non-empty suggestions",
			items:       5,
			suggestions: []string{"a", "b", "c", "d", "e"},
			want:        []string{"a", "b", "c", "d", "e"},
			wantErr:     false,
		},
		{
			name:        "success: surrounding whitespace is trimmed",
			items:       3,
			suggestions: []string{"  hire a designer ", "cut burn\n", "\traise seed"},
			want:        []string{"hire a designer", "cut burn", "raise seed"},
			wantErr:     false,
		},
		{
			name:        "failure: too few suggestions",
			items:       5,
			suggestions: []string{"a", "b", "c", "d"},
			wantErr:     true,
		},
		{
			name:        "failure: too many suggestions",
			items:       5,
			suggestions: []string{"a", "b", "c", "d", "e", "f"},
			wantErr:     true,
		},
		{
			name:        "failure: empty element",
			items:       3,
			suggestions: []string{"a", "", "c"},
			wantErr:     true,
		},
		{
			name:        "failure: whitespace-only element",
			items:       3,
			suggestions: []string{"a", "   ", "c"},
			wantErr:     true,
		},
		{
			name:        "failure: nil input",
			items:       5,
			suggestions: nil,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			schema := SuggestionSchema{Items: tt.items}
			got, err := schema.Validate(tt.suggestions)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSuggestionSchema_Validate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	schema := SuggestionSchema{Items: 2}
	input := []string{" a ", " b "}

	got, err := schema.Validate(input)

	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, []string{" a ", " b "}, input, "input slice should be left untouched")
}
