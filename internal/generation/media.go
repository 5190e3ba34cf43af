package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"astgym/gym-ai/internal/ai"
	"astgym/gym-ai/internal/domain"
	"astgym/gym-ai/internal/logger"
)

const (
	DefaultMaxVideoLinks = 2
	DefaultLookupTimeout = 20 * time.Second
)

// MediaLookup finds short demonstration videos for one exercise.
type MediaLookup struct {
	searcher ai.MediaSearcher
	maxLinks int
	timeout  time.Duration
	log      *logger.Logger
}

// NewMediaLookup builds a lookup client. maxLinks < 0 and timeout <= 0 select the defaults.
func NewMediaLookup(searcher ai.MediaSearcher, maxLinks int, timeout time.Duration, log *logger.Logger) *MediaLookup {
	if maxLinks < 0 {
		maxLinks = DefaultMaxVideoLinks
	}
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &MediaLookup{
		searcher: searcher,
		maxLinks: maxLinks,
		timeout:  timeout,
		log:      log.With("component", "MediaLookup"),
	}
}

func mediaPrompt(exerciseName string) string {
	return fmt.Sprintf(`Find "YouTube Shorts" or short video tutorials (under 1 minute) demonstrating the gym exercise: "%s". Return only valid links.`, exerciseName)
}

// Lookup never fails: every error is logged and mapped to no links.
func (m *MediaLookup) Lookup(ctx context.Context, exerciseName string) []domain.VideoLink {
	links, err := m.lookup(ctx, exerciseName)
	if err != nil {
		m.log.Warn("could not fetch media", "exercise", exerciseName, "error", err)
		return []domain.VideoLink{}
	}
	return links
}

func (m *MediaLookup) lookup(ctx context.Context, exerciseName string) (links []domain.VideoLink, err error) {
	if strings.TrimSpace(exerciseName) == "" {
		return nil, fmt.Errorf("%w: empty exercise name", ErrMediaLookup)
	}
	defer func() {
		if r := recover(); r != nil {
			links, err = nil, fmt.Errorf("%w: panic: %v", ErrMediaLookup, r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	sources, err := m.searcher.SearchMedia(ctx, mediaPrompt(exerciseName))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaLookup, err)
	}
	return selectLinks(sources, m.maxLinks), nil
}

// selectLinks keeps sources with both title and URI, in order, up to max.
func selectLinks(sources []ai.GroundingSource, max int) []domain.VideoLink {
	links := make([]domain.VideoLink, 0, max)
	for _, s := range sources {
		if len(links) >= max {
			break
		}
		link := domain.VideoLink{Title: s.Title, URI: s.URI}
		if !link.Valid() {
			continue
		}
		links = append(links, link)
	}
	return links
}
