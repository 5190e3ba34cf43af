// Package catalog serves the pre-authored programs shipped inside the binary.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"astgym/gym-ai/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed programs/*.yaml
var programFiles embed.FS

var ErrProgramNotFound = errors.New("static program not found")

// Summary describes a catalog program without its days.
type Summary struct {
	ID          string `json:"id"`
	ProgramName string `json:"programName"`
	TargetGoal  string `json:"targetGoal"`
	Difficulty  string `json:"difficulty"`
	DayCount    int    `json:"dayCount"`
}

// Catalog holds parsed programs keyed by ID.
type Catalog struct {
	programs map[string]domain.WorkoutProgram
	ids      []string
	now      func() time.Time
}

// Load parses every embedded program file.
func Load() (*Catalog, error) {
	return load(programFiles, "programs")
}

func load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c := &Catalog{
		programs: make(map[string]domain.WorkoutProgram, len(entries)),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, dir+"/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		var p domain.WorkoutProgram
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", e.Name(), err)
		}
		if p.ID == "" {
			return nil, fmt.Errorf("%s: program has no id", e.Name())
		}
		if _, dup := c.programs[p.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate program id %q", e.Name(), p.ID)
		}
		c.programs[p.ID] = p
		c.ids = append(c.ids, p.ID)
	}
	sort.Strings(c.ids)
	return c, nil
}

// Get returns a fresh copy of the program, stamped with the current time.
// Callers may mutate the result freely.
func (c *Catalog) Get(id string) (*domain.WorkoutProgram, error) {
	p, ok := c.programs[id]
	if !ok {
		return nil, ErrProgramNotFound
	}
	out := clone(p)
	out.CreatedAt = c.now()
	return out, nil
}

func (c *Catalog) List() []Summary {
	out := make([]Summary, 0, len(c.ids))
	for _, id := range c.ids {
		p := c.programs[id]
		out = append(out, Summary{
			ID:          p.ID,
			ProgramName: p.ProgramName,
			TargetGoal:  p.TargetGoal,
			Difficulty:  p.Difficulty,
			DayCount:    len(p.Days),
		})
	}
	return out
}

func clone(p domain.WorkoutProgram) *domain.WorkoutProgram {
	out := p
	out.Days = make([]domain.WorkoutDay, len(p.Days))
	for i, d := range p.Days {
		exercises := make([]domain.Exercise, len(d.Exercises))
		for j, ex := range d.Exercises {
			guide := &domain.ExerciseGuide{VideoLinks: []domain.VideoLink{}}
			if ex.Guide != nil {
				guide.HowTo = ex.Guide.HowTo
				guide.VideoLinks = append(guide.VideoLinks, ex.Guide.VideoLinks...)
			}
			ex.Guide = guide
			exercises[j] = ex
		}
		out.Days[i] = domain.WorkoutDay{DayName: d.DayName, Exercises: exercises}
	}
	return &out
}
