package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

const (
	anthropicAPI     = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
	defaultModel     = "claude-sonnet-4-20250514"
)

// AnthropicClient implements LLMClient against the Anthropic messages API.
// Both calls share one retry policy.
type AnthropicClient struct {
	apiKey string
	model  string
	http   *http.Client
	retry  RetryPolicy
}

// NewAnthropicClient reads the API key from ANTHROPIC_API_KEY.
func NewAnthropicClient() (*AnthropicClient, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
	}

	return &AnthropicClient{
		apiKey: apiKey,
		model:  defaultModel,
		http:   http.DefaultClient,
		retry:  DefaultRetryPolicy(),
	}, nil
}

// Suggest asks for candidate matches and parses the JSON response.
func (c *AnthropicClient) Suggest(ctx context.Context, prompt SuggestionPrompt) (SuggestionResponse, error) {
	raw, err := c.callAPI(ctx, BuildSuggestionPrompt(prompt))
	if err != nil {
		return SuggestionResponse{}, fmt.Errorf("suggestion call: %w", err)
	}

	return ParseSuggestionResponse(raw)
}

// Amalgamate asks for a revised context document as plain text.
func (c *AnthropicClient) Amalgamate(ctx context.Context, documentText, newReasoning string) (string, error) {
	raw, err := c.callAPI(ctx, BuildAmalgamationPrompt(documentText, newReasoning))
	if err != nil {
		return "", fmt.Errorf("amalgamation call: %w", err)
	}

	return stripFences(raw), nil
}

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	Messages  []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *AnthropicClient) callAPI(ctx context.Context, prompt string) (string, error) {
	var text string

	err := c.retry.Do(ctx, func(ctx context.Context) error {
		var callErr error

		text, callErr = c.callOnce(ctx, prompt)

		return callErr
	})

	return text, err
}

func (c *AnthropicClient) callOnce(ctx context.Context, prompt string) (string, error) {
	reqBody := apiRequest{
		Model:     c.model,
		MaxTokens: 4096,
		Messages: []apiMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicAPI, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("api error: %s", apiResp.Error.Message)
	}

	if len(apiResp.Content) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return apiResp.Content[0].Text, nil
}
