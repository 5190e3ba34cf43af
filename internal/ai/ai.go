// Package ai holds the capability interfaces the pipeline uses to reach the generative model,
// the JSON response schemas it constrains the model with, and the Gemini adapter.
package ai

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

var (
	ErrNoCandidates        = errors.New("model returned no candidates")
	ErrNoGroundingMetadata = errors.New("model response carries no grounding metadata")
)

// StructuredGenerator produces a single text response constrained to a JSON schema.
// An empty string with a nil error means the model answered without text.
type StructuredGenerator interface {
	GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// GroundingSource is one citation returned by a search-augmented generation call.
// Either field may be empty; callers filter.
type GroundingSource struct {
	Title string
	URI   string
}

// MediaSearcher runs a web-search grounded generation and returns its citations in order.
type MediaSearcher interface {
	SearchMedia(ctx context.Context, prompt string) ([]GroundingSource, error)
}
