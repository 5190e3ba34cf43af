package service

import (
	"context"
	"errors"
	"fmt"

	"astgym/gym-ai/internal/catalog"
	"astgym/gym-ai/internal/domain"
	"astgym/gym-ai/internal/generation"
	"astgym/gym-ai/internal/logger"
	"astgym/gym-ai/internal/repository"
)

// --- Error Definitions ---
var (
	ErrNoActiveProgram       = errors.New("no active program")
	ErrStaticProgramNotFound = errors.New("static program not found")
)

// ProgramGenerator is satisfied by *generation.Orchestrator.
type ProgramGenerator interface {
	Generate(ctx context.Context, req generation.Request) (*domain.WorkoutProgram, error)
}

// StaticCatalog is satisfied by *catalog.Catalog.
type StaticCatalog interface {
	Get(id string) (*domain.WorkoutProgram, error)
	List() []catalog.Summary
}

// --- Service Interface ---
type ProgramService interface {
	GenerateProgram(ctx context.Context, req generation.Request) (*domain.WorkoutProgram, error)
	LoadStaticProgram(ctx context.Context, id string) (*domain.WorkoutProgram, error)
	StaticPrograms() []catalog.Summary
	CurrentProgram(ctx context.Context) (*domain.WorkoutProgram, error)
	ClearProgram(ctx context.Context) error
}

// --- Service Implementation ---

type programService struct {
	store     *repository.AppStore
	generator ProgramGenerator
	catalog   StaticCatalog
	log       *logger.Logger
}

func NewProgramService(store *repository.AppStore, generator ProgramGenerator, catalog StaticCatalog, log *logger.Logger) ProgramService {
	if log == nil {
		log = logger.Nop()
	}
	return &programService{
		store:     store,
		generator: generator,
		catalog:   catalog,
		log:       log.With("component", "ProgramService"),
	}
}

// GenerateProgram runs the pipeline and makes the result the active program.
// A failed run leaves the stored program untouched.
func (s *programService) GenerateProgram(ctx context.Context, req generation.Request) (*domain.WorkoutProgram, error) {
	if req.Stats == nil {
		profile, err := s.store.Profile(ctx)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			stats := profile.Stats
			req.Stats = &stats
		}
	}

	program, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveProgram(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

// LoadStaticProgram replaces the active program with a catalog program.
func (s *programService) LoadStaticProgram(ctx context.Context, id string) (*domain.WorkoutProgram, error) {
	program, err := s.catalog.Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProgramNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrStaticProgramNotFound, id)
		}
		return nil, err
	}
	if err := s.store.SaveProgram(ctx, program); err != nil {
		return nil, err
	}
	s.log.Info("static program loaded", "id", id, "days", len(program.Days))
	return program, nil
}

func (s *programService) StaticPrograms() []catalog.Summary {
	return s.catalog.List()
}

func (s *programService) CurrentProgram(ctx context.Context) (*domain.WorkoutProgram, error) {
	program, err := s.store.Program(ctx)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, ErrNoActiveProgram
	}
	return program, nil
}

func (s *programService) ClearProgram(ctx context.Context) error {
	return s.store.ClearProgram(ctx)
}
