package extraction

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
)

// LLMClient is the outbound extraction call: transcript in, raw assistant
// content out. One attempt per invocation, no retry.
type LLMClient interface {
	ExtractActionItems(ctx context.Context, transcript string) (string, error)
}

// Extractor turns transcript text into normalized action items via the LLM
type Extractor struct {
	llm    LLMClient
	logger *zap.Logger
}

// NewExtractor creates a new Extractor
func NewExtractor(llm LLMClient, logger *zap.Logger) *Extractor {
	return &Extractor{llm: llm, logger: logger}
}

// Extract returns the normalized action items for a transcript. Any upstream
// or parse failure degrades to an empty list: a meeting that yields no clear
// action items is a valid outcome, never an application error.
func (e *Extractor) Extract(ctx context.Context, transcript string) []Item {
	if strings.TrimSpace(transcript) == "" {
		return []Item{}
	}

	content, err := e.llm.ExtractActionItems(ctx, transcript)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("extraction call failed", zap.Error(err))
		}
		return []Item{}
	}

	var payload struct {
		Items interface{} `json:"items"`
	}
	if err := json.Unmarshal([]byte(extractJSON(content)), &payload); err != nil {
		if e.logger != nil {
			e.logger.Warn("extraction returned unparsable JSON", zap.Error(err))
		}
		return []Item{}
	}

	return NormalizeItems(payload.Items)
}

// extractJSON strips markdown code fences from model output. The prompt
// forbids fences but models still emit them occasionally.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
