package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"astgym/gym-ai/internal/domain"
	"astgym/gym-ai/internal/repository"
)

// --- Error Definitions ---
var (
	ErrInvalidStats    = errors.New("invalid physical stats")
	ErrProfileNotFound = errors.New("user has not completed onboarding")
)

// HealthAnalyzer is satisfied by *generation.Analyzer.
type HealthAnalyzer interface {
	Analyze(ctx context.Context, stats domain.UserPhysicalStats) (*domain.HealthAnalysis, error)
}

// --- Service Interface ---
type ProfileService interface {
	Onboard(ctx context.Context, name string, stats domain.UserPhysicalStats) (*domain.UserProfile, error)
	Profile(ctx context.Context) (*domain.UserProfile, error)
}

// --- Service Implementation ---

type profileService struct {
	store    *repository.AppStore
	analyzer HealthAnalyzer
}

func NewProfileService(store *repository.AppStore, analyzer HealthAnalyzer) ProfileService {
	return &profileService{store: store, analyzer: analyzer}
}

// Onboard analyzes the stats and saves the profile. Nothing is saved when the analysis fails.
func (s *profileService) Onboard(ctx context.Context, name string, stats domain.UserPhysicalStats) (*domain.UserProfile, error) {
	if err := validateStats(stats); err != nil {
		return nil, err
	}

	analysis, err := s.analyzer.Analyze(ctx, stats)
	if err != nil {
		return nil, err
	}

	profile := &domain.UserProfile{
		Stats:    stats,
		Analysis: analysis,
		Name:     strings.TrimSpace(name),
	}
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) Profile(ctx context.Context) (*domain.UserProfile, error) {
	profile, err := s.store.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func validateStats(s domain.UserPhysicalStats) error {
	switch {
	case s.Gender != domain.GenderMale && s.Gender != domain.GenderFemale:
		return fmt.Errorf("%w: gender must be male or female", ErrInvalidStats)
	case s.Age <= 0:
		return fmt.Errorf("%w: age must be positive", ErrInvalidStats)
	case s.Height <= 0, s.Weight <= 0, s.Waist <= 0, s.Neck <= 0:
		return fmt.Errorf("%w: height, weight, waist and neck must be positive", ErrInvalidStats)
	case s.Hip != nil && *s.Hip <= 0:
		return fmt.Errorf("%w: hip must be positive when given", ErrInvalidStats)
	}
	return nil
}
