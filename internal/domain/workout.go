package domain

import (
	"strings"
	"time"
)

// WorkoutDay is one named session of a program, e.g. "Gün 1 - Göğüs & Arka Kol".
type WorkoutDay struct {
	DayName   string     `json:"dayName" yaml:"dayName"`
	Exercises []Exercise `json:"exercises" yaml:"exercises"`
}

// WorkoutProgram is a multi-day plan, either generated or pre-authored.
// Days is never nil once a program leaves the generation pipeline.
type WorkoutProgram struct {
	ID          string       `json:"id" yaml:"id"`
	ProgramName string       `json:"programName" yaml:"programName"`
	TargetGoal  string       `json:"targetGoal" yaml:"targetGoal"`
	Difficulty  string       `json:"difficulty" yaml:"difficulty"`
	Days        []WorkoutDay `json:"days" yaml:"days"`
	CreatedAt   time.Time    `json:"createdAt" yaml:"-"`
}

// ExerciseCount returns the number of exercise occurrences across all days.
func (p *WorkoutProgram) ExerciseCount() int {
	n := 0
	for _, d := range p.Days {
		n += len(d.Exercises)
	}
	return n
}

// CompletedExercise is what the user actually did for one exercise in a session.
type CompletedExercise struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"` // kg, 0 for bodyweight
	Reps   float64 `json:"reps"`
}

// WorkoutLogEntry records one finished session.
type WorkoutLogEntry struct {
	ID                 string              `json:"id"`
	Date               time.Time           `json:"date"`
	ProgramName        string              `json:"programName"`
	DayName            string              `json:"dayName"`
	ExercisesCompleted []CompletedExercise `json:"exercisesCompleted"`
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
