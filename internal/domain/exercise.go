// internal/domain/exercise.go
package domain

// VideoLink is a short demonstration video found for an exercise.
type VideoLink struct {
	Title string `json:"title" yaml:"title"`
	URI   string `json:"uri" yaml:"uri"`
}

// Valid reports whether both title and URI carry something usable.
func (v VideoLink) Valid() bool {
	return trimmed(v.Title) != "" && trimmed(v.URI) != ""
}

// ExerciseGuide holds the short how-to tip and any video references for an exercise.
type ExerciseGuide struct {
	HowTo      string      `json:"howTo" yaml:"howTo"`
	VideoLinks []VideoLink `json:"videoLinks" yaml:"videoLinks"`
}

// Exercise is a single movement inside a WorkoutDay.
// Sets, Reps and Rest are free text because the model returns ranges like "6-8" or "45 sn".
type Exercise struct {
	Name  string         `json:"name" yaml:"name"` // Key for deduplication and enrichment
	Sets  string         `json:"sets" yaml:"sets"`
	Reps  string         `json:"reps" yaml:"reps"`
	Rest  string         `json:"rest" yaml:"rest"`
	Notes string         `json:"notes,omitempty" yaml:"notes,omitempty"`
	Guide *ExerciseGuide `json:"guide,omitempty" yaml:"guide,omitempty"`
}
