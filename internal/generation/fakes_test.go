package generation

import (
	"context"
	"strings"
	"sync"
	"time"

	"astgym/gym-ai/internal/ai"
	"astgym/gym-ai/internal/domain"

	"google.golang.org/genai"
)

type fakeGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateStructured(_ context.Context, prompt string, _ *genai.Schema) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

// fakeSearcher answers per exercise name, matched against the quoted name in the prompt.
type fakeSearcher struct {
	mu      sync.Mutex
	sources map[string][]ai.GroundingSource
	errs    map[string]error
	calls   int
}

func (f *fakeSearcher) SearchMedia(_ context.Context, prompt string) ([]ai.GroundingSource, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	for name, err := range f.errs {
		if strings.Contains(prompt, `"`+name+`"`) {
			return nil, err
		}
	}
	for name, src := range f.sources {
		if strings.Contains(prompt, `"`+name+`"`) {
			return src, nil
		}
	}
	return nil, nil
}

// recordingLookup tracks calls, concurrency and how many calls had finished
// when each call started.
type recordingLookup struct {
	mu               sync.Mutex
	delay            time.Duration
	links            map[string][]domain.VideoLink
	calls            map[string]int
	inflight         int
	maxInflight      int
	completed        int
	completedAtStart map[string]int
}

func newRecordingLookup(delay time.Duration) *recordingLookup {
	return &recordingLookup{
		delay:            delay,
		links:            map[string][]domain.VideoLink{},
		calls:            map[string]int{},
		completedAtStart: map[string]int{},
	}
}

func (r *recordingLookup) Lookup(_ context.Context, name string) []domain.VideoLink {
	r.mu.Lock()
	r.calls[name]++
	r.inflight++
	if r.inflight > r.maxInflight {
		r.maxInflight = r.inflight
	}
	r.completedAtStart[name] = r.completed
	r.mu.Unlock()

	time.Sleep(r.delay)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.inflight--
	r.completed++
	return r.links[name]
}

func program(days ...domain.WorkoutDay) *domain.WorkoutProgram {
	return &domain.WorkoutProgram{ProgramName: "Test", Days: days}
}

func day(name string, exerciseNames ...string) domain.WorkoutDay {
	d := domain.WorkoutDay{DayName: name, Exercises: []domain.Exercise{}}
	for _, n := range exerciseNames {
		d.Exercises = append(d.Exercises, domain.Exercise{Name: n, Sets: "3", Reps: "10"})
	}
	return d
}
