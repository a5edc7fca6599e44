package feedback

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"ptpal/internal/exercise"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiEnhancer generates coaching through the Gemini API.
type GeminiEnhancer struct {
	client *genai.Client
	model  string
}

// NewGeminiEnhancer creates an enhancer backed by a Gemini client. An empty
// API key falls back to the SDK's environment lookup; an empty model selects
// the default.
func NewGeminiEnhancer(ctx context.Context, apiKey, model string) (*GeminiEnhancer, error) {
	config := &genai.ClientConfig{}
	if apiKey != "" {
		config.APIKey = apiKey
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiEnhancer{client: client, model: model}, nil
}

// Enhance implements Enhancer. Gemini takes a single prompt, so the system
// and user messages are concatenated.
func (e *GeminiEnhancer) Enhance(ctx context.Context, result *exercise.Result, opts Options) (*Coaching, error) {
	opts = opts.withDefaults()
	prompt := systemPrompt + "\n\n" + userPrompt(result, opts)

	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate coaching: %w", err)
	}

	return parseCoaching(resp.Text())
}
