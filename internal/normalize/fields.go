package normalize

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"devevents/internal/domain"
)

type field struct {
	name  string
	value string
}

// requiredFields lists the candidate's required scalar fields in reporting order.
func requiredFields(c *domain.EventCandidate) []field {
	return []field{
		{"title", c.Title},
		{"description", c.Description},
		{"overview", c.Overview},
		{"image", c.Image},
		{"venue", c.Venue},
		{"location", c.Location},
		{"date", c.Date},
		{"time", c.Time},
		{"mode", c.Mode},
		{"audience", c.Audience},
		{"organizer", c.Organizer},
	}
}

// missingFields returns a MissingField error for every blank required scalar, in reporting order.
func missingFields(c *domain.EventCandidate) []error {
	var errs []error
	for _, f := range requiredFields(c) {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, domain.MissingField(f.name))
		}
	}
	return errs
}

// ValidateRequiredFields returns MissingField for the first blank required
// scalar, or EmptyList when agenda or tags has no non-blank entry.
func ValidateRequiredFields(c *domain.EventCandidate) error {
	if errs := missingFields(c); len(errs) > 0 {
		return errs[0]
	}
	if len(CleanList(c.Agenda)) == 0 {
		return domain.EmptyList("agenda")
	}
	if len(CleanList(c.Tags)) == 0 {
		return domain.EmptyList("tags")
	}
	return nil
}

// invalidEncoding reports every text field, agenda and tags included, that is
// not valid UTF-8.
func invalidEncoding(c *domain.EventCandidate) []error {
	var errs []error
	check := func(name string, values ...string) {
		for _, v := range values {
			if !utf8.ValidString(v) {
				errs = append(errs, &domain.Error{
					Kind:    domain.KindInvalidFormat,
					Field:   name,
					Message: fmt.Sprintf("%s must be valid UTF-8 text", name),
				})
				return
			}
		}
	}
	for _, f := range requiredFields(c) {
		check(f.name, f.value)
	}
	check("agenda", c.Agenda...)
	check("tags", c.Tags...)
	return errs
}

// CleanList trims every entry and drops the blank ones. It never returns nil.
func CleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
