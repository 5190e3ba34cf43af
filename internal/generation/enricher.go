package generation

import (
	"context"

	"astgym/gym-ai/internal/domain"
	"astgym/gym-ai/internal/logger"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultBatchSize = 3
	// PlaceholderHowTo is the guide text for exercises the model gave no guide for.
	PlaceholderHowTo = "Bilgi yok"
)

// LinkLookup resolves video links for a single exercise name and never fails.
type LinkLookup interface {
	Lookup(ctx context.Context, exerciseName string) []domain.VideoLink
}

// EnrichStats describes one Enrich run.
type EnrichStats struct {
	UniqueNames int
	Batches     int
	LinksFound  int
}

// Enricher attaches video links to every exercise of a program, looking each
// distinct name up once, batchSize lookups at a time.
type Enricher struct {
	lookup    LinkLookup
	batchSize int
	log       *logger.Logger
}

func NewEnricher(lookup LinkLookup, batchSize int, log *logger.Logger) *Enricher {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Enricher{lookup: lookup, batchSize: batchSize, log: log.With("component", "Enricher")}
}

// Enrich mutates p in place. Batches run strictly one after another; a batch
// is complete only when all of its lookups have returned.
func (e *Enricher) Enrich(ctx context.Context, p *domain.WorkoutProgram) EnrichStats {
	names := uniqueExerciseNames(p)
	found := make(map[string][]domain.VideoLink, len(names))
	stats := EnrichStats{UniqueNames: len(names)}

	for _, batch := range chunk(names, e.batchSize) {
		if err := ctx.Err(); err != nil {
			e.log.Warn("enrichment cancelled, remaining exercises get no links", "error", err, "done", len(found))
			break
		}
		results := make([][]domain.VideoLink, len(batch))
		var g errgroup.Group
		g.SetLimit(e.batchSize)
		for i, name := range batch {
			g.Go(func() error {
				results[i] = e.lookup.Lookup(ctx, name)
				return nil
			})
		}
		_ = g.Wait()

		for i, name := range batch {
			found[name] = results[i]
			stats.LinksFound += len(results[i])
		}
		stats.Batches++
	}

	for d := range p.Days {
		exercises := p.Days[d].Exercises
		for x := range exercises {
			ex := &exercises[x]
			if ex.Guide == nil {
				ex.Guide = &domain.ExerciseGuide{HowTo: PlaceholderHowTo}
			}
			ex.Guide.VideoLinks = append([]domain.VideoLink{}, found[ex.Name]...)
		}
	}

	e.log.Debug("enrichment done", "unique", stats.UniqueNames, "batches", stats.Batches, "links", stats.LinksFound)
	return stats
}

// uniqueExerciseNames returns non-empty names in first-occurrence order (exact match).
func uniqueExerciseNames(p *domain.WorkoutProgram) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, day := range p.Days {
		for _, ex := range day.Exercises {
			if ex.Name == "" {
				continue
			}
			if _, ok := seen[ex.Name]; ok {
				continue
			}
			seen[ex.Name] = struct{}{}
			names = append(names, ex.Name)
		}
	}
	return names
}

func chunk(names []string, size int) [][]string {
	var out [][]string
	for i := 0; i < len(names); i += size {
		end := i + size
		if end > len(names) {
			end = len(names)
		}
		out = append(out, names[i:end])
	}
	return out
}
