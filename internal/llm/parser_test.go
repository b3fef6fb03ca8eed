package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassificationJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    ClassificationResponse
		wantErr bool
	}{
		{
			name:    "plain JSON",
			content: `{"category": "meals", "confidence": 0.9, "irs_guidance": "50% deductible."}`,
			want:    ClassificationResponse{Category: "meals", Confidence: 0.9, Guidance: "50% deductible."},
		},
		{
			name: "markdown fenced JSON",
			content: "```json\n" +
				`{"category": "travel", "confidence": 0.85}` +
				"\n```",
			want: ClassificationResponse{Category: "travel", Confidence: 0.85},
		},
		{
			name:    "empty category rejected",
			content: `{"category": "", "confidence": 0.9}`,
			wantErr: true,
		},
		{
			name:    "not JSON",
			content: "I think this is probably a travel expense",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseClassificationJSON(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanMarkdownWrapper(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper(`{"a":1}`))
}
