package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"groupdine/internal/domain"
)

const extractionSystemPrompt = `Extract event dining preferences from text. Use the current time to resolve relative dates and the current location to align location preferences. Extract ALL dietary restrictions, allergies, intolerances and religious requirements mentioned, even casually. Respond with a single JSON object using these optional keys: occasion, date (YYYY-MM-DD), time, location, dietary_restrictions (array), cuisine_preferences (array), attendee_count (number), budget_min (number), budget_max (number), alcohol_preference ("required"|"none"|"no-preference"). Omit keys that are not mentioned.`

// ExtractorClient talks to an OpenAI-compatible chat-completions endpoint.
// It is passed into the planner as an explicit dependency; there is no
// package-level client state.
type ExtractorClient struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	HTTPClient  *http.Client
}

func NewExtractorClient(baseURL, apiKey, model string, timeout time.Duration) *ExtractorClient {
	return &ExtractorClient{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		APIKey:      apiKey,
		Model:       model,
		Temperature: 0,
		MaxTokens:   1500,
		HTTPClient:  &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Messages    []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *ExtractorClient) Extract(ctx context.Context, freeText string, now time.Time, defaultLocation string) (*domain.ExtractedPreferences, error) {
	prompt := fmt.Sprintf("Time: %s (%s), Location: %s\n\nInput: %s",
		now.Format("2006-01-02 15:04:05"), now.Weekday(), defaultLocation, freeText)

	body, err := json.Marshal(chatCompletionRequest{
		Model:       c.Model,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: extractionSystemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extractor request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extractor returned status %d", resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("failed to decode extractor response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("extractor returned no choices")
	}

	var extracted domain.ExtractedPreferences
	content := stripCodeFences(completion.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &extracted); err != nil {
		return nil, fmt.Errorf("extractor returned unparseable content: %w", err)
	}
	return &extracted, nil
}

// stripCodeFences unwraps ```json ... ``` blocks some models insist on.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.Contains(content, "```json") {
		content = strings.SplitN(content, "```json", 2)[1]
	} else if strings.Contains(content, "```") {
		content = strings.SplitN(content, "```", 2)[1]
	} else {
		return content
	}
	if idx := strings.Index(content, "```"); idx >= 0 {
		content = content[:idx]
	}
	return strings.TrimSpace(content)
}
