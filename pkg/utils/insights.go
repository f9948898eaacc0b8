package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// InsightClientInterface produces a short free-text destination brief.
// The text is attached to itineraries as opaque metadata; nothing in the
// scheduling pipeline reads it.
type InsightClientInterface interface {
	DestinationSummary(ctx context.Context, destination string, interests []string) (string, error)
	Close() error
}

type GeminiInsightClient struct {
	client *genai.Client
	model  string
}

func NewGeminiInsightClient(apiKey, model string) (InsightClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiInsightClient{client: client, model: model}, nil
}

func (c *GeminiInsightClient) DestinationSummary(ctx context.Context, destination string, interests []string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.3)

	prompt := fmt.Sprintf(
		"In 2-3 sentences, give a practical travel brief for %s: best season, one local tip, one thing to avoid. Plain text, no markdown.",
		destination)
	if len(interests) > 0 {
		prompt += fmt.Sprintf(" The traveler cares about: %s.", strings.Join(interests, ", "))
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content")
	}
	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), nil
}

func (c *GeminiInsightClient) Close() error { return c.client.Close() }
