package generation

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"astgym/gym-ai/internal/ai"
	"astgym/gym-ai/internal/domain"
	"astgym/gym-ai/internal/logger"

	"github.com/google/uuid"
)

const DefaultGenerateTimeout = 90 * time.Second

// Options tunes an Orchestrator. Zero values select the defaults.
type Options struct {
	NarrativeThreshold int
	GenerateTimeout    time.Duration
}

// Orchestrator turns a generator request into a finished, enriched program.
type Orchestrator struct {
	generator  ai.StructuredGenerator
	normalizer *Normalizer
	enricher   *Enricher
	opts       Options
	log        *logger.Logger

	now   func() time.Time
	newID func() string
}

func NewOrchestrator(generator ai.StructuredGenerator, enricher *Enricher, opts Options, log *logger.Logger) *Orchestrator {
	if opts.NarrativeThreshold <= 0 {
		opts.NarrativeThreshold = DefaultNarrativeThreshold
	}
	if opts.GenerateTimeout <= 0 {
		opts.GenerateTimeout = DefaultGenerateTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Orchestrator{
		generator:  generator,
		normalizer: NewNormalizer(log),
		enricher:   enricher,
		opts:       opts,
		log:        log.With("component", "Orchestrator"),
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

// Generate calls the model once, normalizes and enriches its answer, and stamps
// a fresh identity. Every error it returns wraps ErrGeneration.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*domain.WorkoutProgram, error) {
	narrative := req.UsesNarrative(o.opts.NarrativeThreshold)
	prompt := BuildProgramPrompt(req, o.opts.NarrativeThreshold)
	o.log.Info("generating program", "narrative", narrative, "goal", req.Goal, "level", req.Level, "days", req.DaysPerWeek)

	genCtx, cancel := context.WithTimeout(ctx, o.opts.GenerateTimeout)
	text, err := o.generator.GenerateStructured(genCtx, prompt, ai.ProgramSchema())
	cancel()
	if err != nil {
		o.log.Error("generator call failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrGenerationEmptyResponse
	}

	program, err := o.normalizer.Normalize(text, Fallback{Goal: req.Goal, Level: req.Level})
	if err != nil {
		o.log.Error("could not normalize generator output", "error", err, "raw", truncate(text, 500))
		return nil, err
	}

	stats := o.enricher.Enrich(ctx, program)

	program.ID = o.newID()
	program.CreatedAt = o.now()
	o.log.Info("program generated",
		"id", program.ID,
		"name", program.ProgramName,
		"days", len(program.Days),
		"exercises", program.ExerciseCount(),
		"unique", stats.UniqueNames,
		"links", stats.LinksFound)
	return program, nil
}

// truncate cuts s to at most n bytes without splitting a multi-byte character.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
