package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/zenpixdev/meet-task-tracker/pkg/config"
)

// OpenAIClient is a minimal client for the OpenAI chat completions API used
// for action-item extraction and the LLM health probe
type OpenAIClient struct {
	apiKey      string
	baseURL     string
	model       string
	healthModel string
	client      *http.Client
}

// NewOpenAIClient creates an OpenAI client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	var apiKey, base, model, healthModel string
	if cfg != nil {
		apiKey = cfg.APIKey
		base = cfg.BaseURL
		model = cfg.Model
		healthModel = cfg.HealthModel
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if base == "" {
		base = os.Getenv("OPENAI_API_URL")
		if base == "" {
			base = "https://api.openai.com"
		}
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	if healthModel == "" {
		healthModel = "gpt-4.1-mini"
	}

	return &OpenAIClient{
		apiKey:      apiKey,
		baseURL:     base,
		model:       model,
		healthModel: healthModel,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

// ChatMessage is one entry of a chat completion conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat requests a structured output mode
type ResponseFormat struct {
	Type string `json:"type"`
}

// ChatRequest is the shape for chat completion requests. Temperature has no
// omitempty: extraction pins it to zero explicitly.
type ChatRequest struct {
	Model          string          `json:"model,omitempty"`
	Messages       []ChatMessage   `json:"messages,omitempty"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const extractionSystemPrompt = `You extract meeting action items from a transcript.

Return ONLY valid JSON. No markdown. No explanations. No code fences.

Output must be a JSON object with a single "items" array. Each element must be an object with EXACT keys:
- task (string, required)
- owner (string or null)
- dueDate (string in YYYY-MM-DD or null)
- done (boolean)

Rules:
- Only include real tasks (something someone must do).
- If owner is not mentioned, use null.
- If due date is not clearly stated, use null.
- done defaults to false unless the transcript clearly says the task is already completed.
- Keep tasks concise but specific.`

// ExtractActionItems sends the transcript to the model with deterministic
// sampling and strict JSON-object output, returning the assistant content.
// Single attempt; the caller decides how failure degrades.
func (c *OpenAIClient) ExtractActionItems(ctx context.Context, transcript string) (string, error) {
	user := fmt.Sprintf("Return JSON in this shape:\n{\n  \"items\": [ ...actionItems ]\n}\n\nTranscript:\n%s", transcript)

	req := ChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: extractionSystemPrompt},
			{Role: "user", Content: user},
		},
		Temperature:    0,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	return c.chat(ctx, req)
}

// HealthStatus is the result of the LLM health probe
type HealthStatus struct {
	OK    bool   `json:"ok"`
	Ms    int64  `json:"ms"`
	Model string `json:"model,omitempty"`
	Error string `json:"error,omitempty"`
}

// HealthCheck issues a cheap completion with a 5s deadline. Only this probe
// carries a deadline; extraction relies on the caller's context.
func (c *OpenAIClient) HealthCheck(ctx context.Context) HealthStatus {
	start := time.Now()

	if c.apiKey == "" {
		return HealthStatus{OK: false, Error: "OPENAI_API_KEY missing"}
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req := ChatRequest{
		Model:     c.healthModel,
		Messages:  []ChatMessage{{Role: "user", Content: "Reply with exactly: ok"}},
		MaxTokens: 16,
	}

	content, err := c.chat(ctx, req)
	if err != nil {
		return HealthStatus{
			OK:    false,
			Ms:    time.Since(start).Milliseconds(),
			Model: c.healthModel,
			Error: err.Error(),
		}
	}

	ok := strings.Contains(strings.ToLower(strings.TrimSpace(content)), "ok")
	return HealthStatus{OK: ok, Ms: time.Since(start).Milliseconds(), Model: c.healthModel}
}

// chat performs one chat completion call and returns the first choice content
func (c *OpenAIClient) chat(ctx context.Context, reqBody ChatRequest) (string, error) {
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := c.baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("openai returned status %d", resp.StatusCode)
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from openai")
	}
	return cr.Choices[0].Message.Content, nil
}
