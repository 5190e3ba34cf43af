package service

import (
	"context"
	"sync"

	"astgym/gym-ai/internal/ai"
	"astgym/gym-ai/internal/domain"
	"astgym/gym-ai/internal/generation"
	"astgym/gym-ai/internal/repository"
	"astgym/gym-ai/internal/repository/memory"

	"google.golang.org/genai"
)

func newStore() *repository.AppStore {
	return repository.NewAppStore(memory.NewKVStore())
}

type stubModel struct {
	text string
	err  error
}

func (m stubModel) GenerateStructured(context.Context, string, *genai.Schema) (string, error) {
	return m.text, m.err
}

type noMedia struct{}

func (noMedia) SearchMedia(context.Context, string) ([]ai.GroundingSource, error) {
	return nil, nil
}

// pipeline wires a real orchestrator over a canned model answer.
func pipeline(text string, err error) *generation.Orchestrator {
	lookup := generation.NewMediaLookup(noMedia{}, generation.DefaultMaxVideoLinks, 0, nil)
	enricher := generation.NewEnricher(lookup, generation.DefaultBatchSize, nil)
	return generation.NewOrchestrator(stubModel{text: text, err: err}, enricher, generation.Options{}, nil)
}

type capturingGenerator struct {
	mu   sync.Mutex
	reqs []generation.Request
	out  *domain.WorkoutProgram
}

func (g *capturingGenerator) Generate(_ context.Context, req generation.Request) (*domain.WorkoutProgram, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reqs = append(g.reqs, req)
	return g.out, nil
}

type stubAnalyzer struct {
	analysis *domain.HealthAnalysis
	err      error
	calls    int
}

func (a *stubAnalyzer) Analyze(context.Context, domain.UserPhysicalStats) (*domain.HealthAnalysis, error) {
	a.calls++
	return a.analysis, a.err
}

func twoDayProgram() *domain.WorkoutProgram {
	return &domain.WorkoutProgram{
		ID:          "p1",
		ProgramName: "Test Program",
		Days: []domain.WorkoutDay{
			{DayName: "Gün 1", Exercises: []domain.Exercise{{Name: "Squat"}}},
			{DayName: "Gün 2", Exercises: []domain.Exercise{{Name: "Row"}}},
		},
	}
}

func validStats() domain.UserPhysicalStats {
	return domain.UserPhysicalStats{Age: 28, Gender: domain.GenderMale, Height: 180, Weight: 80, Waist: 84, Neck: 38}
}
