package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"astgym/gym-ai/internal/config"
	"astgym/gym-ai/internal/logger"

	"google.golang.org/genai"
)

const defaultModel = "gemini-3-flash-preview"

// GeminiClient implements StructuredGenerator and MediaSearcher on the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
	log    *logger.Logger
}

// NewGeminiClient creates a Gemini API client.
func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig, log *logger.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{
		client: client,
		model:  model,
		log:    log.With("component", "GeminiClient", "model", model),
	}, nil
}

// GenerateStructured asks for a JSON response matching schema.
func (g *GeminiClient) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		g.log.Error("structured generation failed", "error", err, "elapsed", time.Since(start))
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := resp.Text()
	g.log.Debug("structured generation done", "elapsed", time.Since(start), "chars", len(text))
	return text, nil
}

// SearchMedia runs prompt with Google Search grounding and returns the web citations.
func (g *GeminiClient) SearchMedia(ctx context.Context, prompt string) ([]GroundingSource, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini search: %w", err)
	}
	return groundingSources(resp)
}

func groundingSources(resp *genai.GenerateContentResponse) ([]GroundingSource, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, ErrNoCandidates
	}
	gm := resp.Candidates[0].GroundingMetadata
	if gm == nil {
		return nil, ErrNoGroundingMetadata
	}
	sources := make([]GroundingSource, 0, len(gm.GroundingChunks))
	for _, chunk := range gm.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		sources = append(sources, GroundingSource{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return sources, nil
}
