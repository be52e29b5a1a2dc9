package domain

import (
	"context"
	"time"
)

// Event modes accepted by the store.
const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeHybrid  = "hybrid"
)

// Event represents a developer event listing.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Agenda      []string  `json:"agenda"`
	Organizer   string    `json:"organizer"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventCandidate is an unvalidated set of field values submitted for creation.
type EventCandidate struct {
	Title       string
	Description string
	Overview    string
	Image       string
	Venue       string
	Location    string
	Date        string
	Time        string
	Mode        string
	Audience    string
	Agenda      []string
	Organizer   string
	Tags        []string
}

// NormalizedEvent is a candidate that passed validation: slug derived, fields
// trimmed, date and time canonical. Only a NormalizedEvent can be persisted.
type NormalizedEvent struct {
	Title       string
	Slug        string
	Description string
	Overview    string
	Image       string
	Venue       string
	Location    string
	Date        string
	Time        string
	Mode        string
	Audience    string
	Agenda      []string
	Organizer   string
	Tags        []string
}

// NewEvent returns an Event built from a normalized candidate. ID is set by the caller.
func NewEvent(n *NormalizedEvent, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       n.Title,
		Slug:        n.Slug,
		Description: n.Description,
		Overview:    n.Overview,
		Image:       n.Image,
		Venue:       n.Venue,
		Location:    n.Location,
		Date:        n.Date,
		Time:        n.Time,
		Mode:        n.Mode,
		Audience:    n.Audience,
		Agenda:      n.Agenda,
		Organizer:   n.Organizer,
		Tags:        n.Tags,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventQuery selects and orders events from an already-fetched listing.
// Empty fields mean "no filter"; Sort defaults to newest first.
type EventQuery struct {
	Search   string
	Mode     string
	Location string
	Sort     string
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	// Create inserts the event. Returns ErrDuplicateSlug when the slug is taken.
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	// List returns every event ordered by created_at descending.
	List(ctx context.Context) ([]*Event, error)
}

// EventService defines event creation and read operations.
type EventService interface {
	CreateEvent(ctx context.Context, candidate *EventCandidate) (*Event, error)
	ListEvents(ctx context.Context, query EventQuery) ([]*Event, error)
	ListLocations(ctx context.Context) ([]string, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListSimilarEvents(ctx context.Context, slug string, limit int) ([]*Event, error)
}
