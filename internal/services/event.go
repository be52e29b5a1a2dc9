package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"devevents/internal/domain"
	"devevents/internal/listing"
	"devevents/internal/normalize"

	"github.com/google/uuid"
)

// DefaultSimilarLimit caps the similar-events list when the caller passes no limit.
const DefaultSimilarLimit = 3

type eventService struct {
	eventRepo      domain.EventRepository
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

func NewEventService(eventRepo domain.EventRepository, logger *slog.Logger, timeout time.Duration) domain.EventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &eventService{
		eventRepo:      eventRepo,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, candidate *domain.EventCandidate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	normalized, err := normalize.Event(candidate)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	event := domain.NewEvent(normalized, now, now)
	event.ID = uuid.NewString()

	if err := s.eventRepo.Create(ctx, event); err != nil {
		switch domain.KindOf(err) {
		case domain.KindDuplicateSlug, domain.KindValidation:
			return nil, err
		}
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.logger.InfoContext(ctx, "event created", "id", event.ID, "slug", event.Slug)
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, query domain.EventQuery) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return listing.Apply(events, query), nil
}

func (s *eventService) ListLocations(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return listing.Locations(events), nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// ListSimilarEvents returns up to limit events sharing a tag with the event
// identified by slug, newest first.
func (s *eventService) ListSimilarEvents(ctx context.Context, slug string, limit int) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	target, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return listing.Similar(events, target, limit), nil
}
