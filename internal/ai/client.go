// Package ai wraps the external generative-text service behind a narrow
// interface. Only diet plan text generation passes through here; its
// failure modes never reach the plan editor or macro calculator.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"flexzone/fitness-platform/internal/config"
	"flexzone/fitness-platform/internal/nutrition"
)

const defaultTimeout = 60 * time.Second

var ErrEmptyCompletion = errors.New("empty completion from AI API")

// Generator is the contract the diet service depends on.
type Generator interface {
	GenerateDietPlan(ctx context.Context, targets nutrition.MacroTargets, profile nutrition.BodyProfile) (string, error)
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	apiURL        string
	apiKey        string
	model         string
	fallbackModel string
	httpClient    *http.Client
}

// NewClient creates a generative-text client from config.
func NewClient(cfg config.AIConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiURL:        cfg.APIURL,
		apiKey:        cfg.APIKey,
		model:         cfg.Model,
		fallbackModel: cfg.FallbackModel,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// GenerateDietPlan asks the model for a diet plan matching the computed
// targets. The primary model is tried first, then the fallback.
func (c *Client) GenerateDietPlan(ctx context.Context, targets nutrition.MacroTargets, profile nutrition.BodyProfile) (string, error) {
	prompt := dietPrompt(targets, profile)

	models := []string{c.model}
	if c.fallbackModel != "" && c.fallbackModel != c.model {
		models = append(models, c.fallbackModel)
	}

	var lastErr error
	for _, model := range models {
		text, err := c.complete(ctx, model, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}
	return "", lastErr
}

func (c *Client) complete(ctx context.Context, model, prompt string) (string, error) {
	req := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a certified nutrition coach. Answer with practical, easy to follow plans."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   2048,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("parse chat response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("AI API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return chatResp.Choices[0].Message.Content, nil
}

// dietPrompt builds the generation prompt from the computed targets and
// the member's stated preference.
func dietPrompt(targets nutrition.MacroTargets, profile nutrition.BodyProfile) string {
	return fmt.Sprintf(`Generate a concise yet effective %s diet plan based on the following daily requirements:

Calories: %d kcal
Protein: %dg
Carbs: %dg
Fats: %dg
Goal: %s weight
Activity Level: %s
Diet Preference: %s

The plan should include:
1. Meal timings (breakfast, lunch, dinner, snacks)
2. Recommended foods (categorized: proteins, carbs, fats)
3. Foods to avoid
4. Quick meal suggestions

Format the response in bullet points. Keep it practical and easy to follow.
Don't use * symbol for bullets.
Ensure all meal suggestions comply with %s dietary restrictions.`,
		profile.DietPreference,
		targets.Calories, targets.ProteinG, targets.CarbsG, targets.FatsG,
		profile.Goal, profile.ActivityLevel,
		profile.DietPreference, profile.DietPreference)
}
