package llm

import (
	"encoding/json"
	"fmt"
)

// parseClassificationJSON extracts the category, confidence, and optional
// guidance from a model's JSON response.
func parseClassificationJSON(content string) (ClassificationResponse, error) {
	var jsonResp struct {
		Category   string  `json:"category"`
		Guidance   string  `json:"irs_guidance,omitempty"`
		Confidence float64 `json:"confidence"`
	}

	content = cleanMarkdownWrapper(content)

	if err := json.Unmarshal([]byte(content), &jsonResp); err != nil {
		return ClassificationResponse{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if jsonResp.Category == "" {
		return ClassificationResponse{}, fmt.Errorf("no category found in response")
	}

	return ClassificationResponse{
		Category:   jsonResp.Category,
		Confidence: jsonResp.Confidence,
		Guidance:   jsonResp.Guidance,
	}, nil
}
