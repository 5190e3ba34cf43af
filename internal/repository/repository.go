package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"astgym/gym-ai/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Storage keys of the three persistent slots. They match the keys the web client
// has always written, so existing data reads back unchanged.
const (
	KeyProgram = "gym_ai_program"
	KeyLogs    = "gym_ai_logs"
	KeyProfile = "gym_ai_user_profile_v1"
)

// KeyValueStore is the storage port every backend implements.
// Get on a missing key returns ErrNotFound.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// AppStore reads and writes the typed slots as JSON documents.
type AppStore struct {
	kv KeyValueStore
	mu sync.Mutex // serializes the read-modify-write of AppendLog
}

func NewAppStore(kv KeyValueStore) *AppStore {
	return &AppStore{kv: kv}
}

// Program returns the active program, or nil when none is saved.
func (s *AppStore) Program(ctx context.Context) (*domain.WorkoutProgram, error) {
	var p domain.WorkoutProgram
	found, err := s.load(ctx, KeyProgram, &p)
	if err != nil || !found {
		return nil, err
	}
	if p.Days == nil {
		p.Days = []domain.WorkoutDay{}
	}
	return &p, nil
}

// SaveProgram overwrites the active program.
func (s *AppStore) SaveProgram(ctx context.Context, p *domain.WorkoutProgram) error {
	return s.save(ctx, KeyProgram, p)
}

func (s *AppStore) ClearProgram(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyProgram); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	return nil
}

// Logs returns the workout history, newest first. Never nil.
func (s *AppStore) Logs(ctx context.Context) ([]domain.WorkoutLogEntry, error) {
	logs := []domain.WorkoutLogEntry{}
	if _, err := s.load(ctx, KeyLogs, &logs); err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []domain.WorkoutLogEntry{}
	}
	return logs, nil
}

// AppendLog puts entry at the front of the history and writes the whole list back.
func (s *AppStore) AppendLog(ctx context.Context, entry domain.WorkoutLogEntry) ([]domain.WorkoutLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs, err := s.Logs(ctx)
	if err != nil {
		return nil, err
	}
	logs = append([]domain.WorkoutLogEntry{entry}, logs...)
	if err := s.save(ctx, KeyLogs, logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// Profile returns the onboarding profile, or nil when the user has not onboarded.
func (s *AppStore) Profile(ctx context.Context) (*domain.UserProfile, error) {
	var p domain.UserProfile
	found, err := s.load(ctx, KeyProfile, &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *AppStore) SaveProfile(ctx context.Context, p *domain.UserProfile) error {
	return s.save(ctx, KeyProfile, p)
}

func (s *AppStore) load(ctx context.Context, key string, v any) (bool, error) {
	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

func (s *AppStore) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUpdateFailed, key, err)
	}
	return nil
}
