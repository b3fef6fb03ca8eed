package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      float64
		wantFound bool
	}{
		{
			name:      "currency with comma grouping",
			text:      "I bought a laptop for $3,000",
			want:      3000.0,
			wantFound: true,
		},
		{
			name:      "dollars word form",
			text:      "spent 3000 dollars on equipment",
			want:      3000.0,
			wantFound: true,
		},
		{
			name:      "currency shorthand k",
			text:      "a $3k laptop for my business",
			want:      3000.0,
			wantFound: true,
		},
		{
			name:      "bare shorthand thousand",
			text:      "about 3 thousand for the website",
			want:      3000.0,
			wantFound: true,
		},
		{
			name:      "decimal amount",
			text:      "coffee meeting $12.50",
			want:      12.50,
			wantFound: true,
		},
		{
			name:      "currency beats bare number",
			text:      "bought 2 monitors for $450",
			want:      450.0,
			wantFound: true,
		},
		{
			name:      "largest of several marked amounts",
			text:      "$200 deposit plus $1,800 balance",
			want:      1800.0,
			wantFound: true,
		},
		{
			name:      "sole bare number accepted",
			text:      "office rent 1200",
			want:      1200.0,
			wantFound: true,
		},
		{
			name:      "ambiguous bare numbers rejected",
			text:      "3 chairs and 2 desks",
			wantFound: false,
		},
		{
			name:      "no numbers",
			text:      "monthly software subscription",
			wantFound: false,
		},
		{
			name:      "empty string",
			text:      "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractAmount(tt.text)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}
