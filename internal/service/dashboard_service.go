package service

import (
	"context"

	"astgym/gym-ai/internal/domain"
	"astgym/gym-ai/internal/repository"
)

// DashboardSummary is the landing screen state.
type DashboardSummary struct {
	TotalWorkouts      int                     `json:"totalWorkouts"`
	LastWorkout        *domain.WorkoutLogEntry `json:"lastWorkout,omitempty"`
	ActiveProgramName  string                  `json:"activeProgramName,omitempty"`
	ActiveProgramDays  int                     `json:"activeProgramDays"`
	OnboardingRequired bool                    `json:"onboardingRequired"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

type dashboardService struct {
	store *repository.AppStore
}

func NewDashboardService(store *repository.AppStore) DashboardService {
	return &dashboardService{store: store}
}

func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	logs, err := s.store.Logs(ctx)
	if err != nil {
		return nil, err
	}
	program, err := s.store.Program(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.store.Profile(ctx)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		TotalWorkouts:      len(logs),
		OnboardingRequired: profile == nil,
	}
	if len(logs) > 0 {
		summary.LastWorkout = &logs[0]
	}
	if program != nil {
		summary.ActiveProgramName = program.ProgramName
		summary.ActiveProgramDays = len(program.Days)
	}
	return summary, nil
}
