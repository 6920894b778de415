// Package llm wraps an OpenAI-compatible chat-completions API for the two
// generative steps of the pipeline: cleaning raw OCR text and generating a
// structured exam from study material. The generation response is raw model
// text; locating and repairing the JSON inside it is the exam package's job.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ghori-academy/examgen/internal/pattern"
)

const (
	cleanMaxTokens    = 4096
	generateMaxTokens = 8192
)

// Client wraps an OpenAI-compatible API client.
type Client struct {
	api   *openai.Client
	model string
}

// New creates a new LLM client against the given base URL.
func New(baseURL, apiKey, modelName string) *Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	config.HTTPClient = &http.Client{Timeout: 3 * time.Minute}
	return &Client{
		api:   openai.NewClientWithConfig(config),
		model: modelName,
	}
}

// Clean asks the model to fix OCR artifacts in raw text. Callers fall back
// to ocr.LocalClean when this returns an error.
func (c *Client) Clean(ctx context.Context, subject, rawText string) (string, error) {
	system := "You are an OCR text fixer. Fix spelling, remove garbage, keep clean English. Output only cleaned text."
	user := fmt.Sprintf("Subject: %s\n\nFix:\n\n%s", subject, rawText)
	return c.chat(ctx, system, user, cleanMaxTokens)
}

// Generate asks the model for a complete exam paper following the subject
// pattern, built from the given study material. The returned string is the
// raw model output and usually, but not always, contains a JSON object.
func (c *Client) Generate(ctx context.Context, p pattern.Subject, material string) (string, error) {
	return c.chat(ctx, generateSystemPrompt, buildGeneratePrompt(p, material), generateMaxTokens)
}

func (c *Client) chat(ctx context.Context, system, user string, maxTokens int) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("LLM API call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}
	return stripThink(resp.Choices[0].Message.Content), nil
}

// stripThink drops a leading <think>...</think> block emitted by reasoning
// models, keeping only the answer that follows it.
func stripThink(raw string) string {
	if strings.Contains(raw, "<think>") {
		if idx := strings.Index(raw, "</think>"); idx != -1 {
			raw = raw[idx+len("</think>"):]
		}
	}
	return strings.TrimSpace(raw)
}
