package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"devevents/internal/domain"

	"github.com/lib/pq"
)

const eventColumns = `id, title, slug, description, overview, image, venue, location, date, time,
		mode, audience, agenda, organizer, tags, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue, e.Location, e.Date, e.Time,
		e.Mode, e.Audience, pq.Array(e.Agenda), e.Organizer, pq.Array(e.Tags), e.CreatedAt, e.UpdatedAt,
	)
	if err == nil {
		return nil
	}
	if perr, ok := pqError(err, codeUniqueViolation); ok && (perr.Constraint == constraintEventsSlug || perr.Constraint == "") {
		return domain.ErrDuplicateSlug
	}
	if perr, ok := pqError(err, codeCheckViolation); ok {
		field := checkConstraintField(perr.Constraint)
		return domain.ValidationError(&domain.Error{
			Kind:    domain.KindInvalidFormat,
			Field:   field,
			Message: fmt.Sprintf("%s failed check %s", field, perr.Constraint),
			Err:     err,
		})
	}
	if _, ok := pqError(err, codeUntranslatable); ok {
		return domain.ValidationError(&domain.Error{
			Kind:    domain.KindInvalidFormat,
			Field:   "event",
			Message: "event text must be valid UTF-8",
			Err:     err,
		})
	}
	return err
}

// checkConstraintField maps "events_<field>_check" to <field>.
func checkConstraintField(constraint string) string {
	s := strings.TrimPrefix(constraint, "events_")
	s = strings.TrimSuffix(s, "_check")
	if s == "" {
		return "event"
	}
	return s
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if _, ok := pqError(err, codeInvalidText); ok {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(slug))))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Overview, &e.Image, &e.Venue, &e.Location, &e.Date, &e.Time,
		&e.Mode, &e.Audience, pq.Array(&e.Agenda), &e.Organizer, pq.Array(&e.Tags), &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if e.Agenda == nil {
		e.Agenda = []string{}
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return e, nil
}
