package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"astgym/gym-ai/internal/domain"
	"astgym/gym-ai/internal/repository"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrInvalidDay    = errors.New("day index is out of range for the active program")
	ErrNothingLogged = errors.New("at least one exercise with reps is required")
)

// LogWorkoutInput is what the user entered for one session of the active program.
type LogWorkoutInput struct {
	DayIndex  int
	Exercises []domain.CompletedExercise
}

// --- Service Interface ---
type WorkoutLogService interface {
	LogWorkout(ctx context.Context, in LogWorkoutInput) (*domain.WorkoutLogEntry, error)
	History(ctx context.Context) ([]domain.WorkoutLogEntry, error)
}

// --- Service Implementation ---

type workoutLogService struct {
	store *repository.AppStore
	now   func() time.Time
	newID func() string
}

func NewWorkoutLogService(store *repository.AppStore) WorkoutLogService {
	return &workoutLogService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// LogWorkout records a session against the active program. Exercises without
// reps are dropped before saving.
func (s *workoutLogService) LogWorkout(ctx context.Context, in LogWorkoutInput) (*domain.WorkoutLogEntry, error) {
	program, err := s.store.Program(ctx)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, ErrNoActiveProgram
	}
	if in.DayIndex < 0 || in.DayIndex >= len(program.Days) {
		return nil, fmt.Errorf("%w: %d (program has %d days)", ErrInvalidDay, in.DayIndex, len(program.Days))
	}

	completed := make([]domain.CompletedExercise, 0, len(in.Exercises))
	for _, ex := range in.Exercises {
		if ex.Reps > 0 {
			completed = append(completed, ex)
		}
	}
	if len(completed) == 0 {
		return nil, ErrNothingLogged
	}

	entry := domain.WorkoutLogEntry{
		ID:                 s.newID(),
		Date:               s.now(),
		ProgramName:        program.ProgramName,
		DayName:            program.Days[in.DayIndex].DayName,
		ExercisesCompleted: completed,
	}
	if _, err := s.store.AppendLog(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// History returns every logged session, newest first.
func (s *workoutLogService) History(ctx context.Context) ([]domain.WorkoutLogEntry, error) {
	return s.store.Logs(ctx)
}
