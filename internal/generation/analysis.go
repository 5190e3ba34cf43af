package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"astgym/gym-ai/internal/ai"
	"astgym/gym-ai/internal/domain"
	"astgym/gym-ai/internal/logger"
)

// Analyzer produces the onboarding body analysis from physical stats.
type Analyzer struct {
	generator ai.StructuredGenerator
	timeout   time.Duration
	log       *logger.Logger
}

func NewAnalyzer(generator ai.StructuredGenerator, timeout time.Duration, log *logger.Logger) *Analyzer {
	if timeout <= 0 {
		timeout = DefaultGenerateTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Analyzer{generator: generator, timeout: timeout, log: log.With("component", "Analyzer")}
}

func (a *Analyzer) Analyze(ctx context.Context, stats domain.UserPhysicalStats) (*domain.HealthAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := a.generator.GenerateStructured(ctx, analysisPrompt(stats), ai.HealthAnalysisSchema())
	if err != nil {
		a.log.Error("analysis call failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrAnalysisEmptyResponse
	}

	var analysis domain.HealthAnalysis
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &analysis); err != nil {
		a.log.Error("could not parse analysis", "error", err, "raw", truncate(text, 500))
		return nil, fmt.Errorf("%w: %v", ErrAnalysisParse, err)
	}
	return &analysis, nil
}
