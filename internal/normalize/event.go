package normalize

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"devevents/internal/domain"
)

// MaxTextLength bounds description and overview, in characters.
const MaxTextLength = 500

var validModes = map[string]struct{}{
	domain.ModeOnline:  {},
	domain.ModeOffline: {},
	domain.ModeHybrid:  {},
}

// Event validates a candidate and returns its normalized form. Every problem
// found is reported in a single Validation error; nothing is returned on failure.
func Event(c *domain.EventCandidate) (*domain.NormalizedEvent, error) {
	errs := missingFields(c)
	errs = append(errs, invalidEncoding(c)...)

	n := &domain.NormalizedEvent{
		Title:       strings.TrimSpace(c.Title),
		Description: strings.TrimSpace(c.Description),
		Overview:    strings.TrimSpace(c.Overview),
		Image:       strings.TrimSpace(c.Image),
		Venue:       strings.TrimSpace(c.Venue),
		Location:    strings.TrimSpace(c.Location),
		Mode:        strings.TrimSpace(c.Mode),
		Audience:    strings.TrimSpace(c.Audience),
		Organizer:   strings.TrimSpace(c.Organizer),
		Agenda:      CleanList(c.Agenda),
		Tags:        CleanList(c.Tags),
	}

	if len(n.Agenda) == 0 {
		errs = append(errs, domain.EmptyList("agenda"))
	}
	if len(n.Tags) == 0 {
		errs = append(errs, domain.EmptyList("tags"))
	}

	if utf8.RuneCountInString(n.Description) > MaxTextLength {
		errs = append(errs, tooLong("description", "Description"))
	}
	if utf8.RuneCountInString(n.Overview) > MaxTextLength {
		errs = append(errs, tooLong("overview", "Overview"))
	}

	if n.Mode != "" {
		if _, ok := validModes[n.Mode]; !ok {
			errs = append(errs, &domain.Error{
				Kind:    domain.KindInvalidFormat,
				Field:   "mode",
				Value:   n.Mode,
				Message: fmt.Sprintf("mode %q must be one of online, offline, hybrid", n.Mode),
			})
		}
	}

	if n.Title != "" {
		n.Slug = GenerateSlug(n.Title)
		if n.Slug == "" {
			errs = append(errs, &domain.Error{
				Kind:    domain.KindInvalidFormat,
				Field:   "title",
				Value:   n.Title,
				Message: "title must contain at least one letter or digit",
			})
		}
	}

	if s := strings.TrimSpace(c.Date); s != "" {
		d, err := NormalizeDate(s)
		if err != nil {
			errs = append(errs, err)
		}
		n.Date = d
	}
	if s := strings.TrimSpace(c.Time); s != "" {
		t, err := NormalizeTime(s)
		if err != nil {
			errs = append(errs, err)
		}
		n.Time = t
	}

	if err := domain.ValidationError(errs...); err != nil {
		return nil, err
	}
	return n, nil
}

func tooLong(field, label string) error {
	return &domain.Error{
		Kind:    domain.KindInvalidFormat,
		Field:   field,
		Message: fmt.Sprintf("%s cannot exceed %d characters", label, MaxTextLength),
	}
}
