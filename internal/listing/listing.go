// Package listing holds the in-memory search, filter and sort transforms applied
// to an already-fetched set of events. None of them touch the store.
package listing

import (
	"slices"
	"sort"
	"strings"

	"devevents/internal/domain"
)

// Sort options.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortTitleAsc  = "title-asc"
	SortTitleDesc = "title-desc"
)

// filterAll is the UI sentinel for "no filter".
const filterAll = "all"

// Transform maps one event sequence to another.
type Transform func([]*domain.Event) []*domain.Event

// Search keeps events whose title, description, location or any tag contains
// q, case-insensitively. A blank q keeps everything.
func Search(q string) Transform {
	q = strings.ToLower(strings.TrimSpace(q))
	return func(events []*domain.Event) []*domain.Event {
		if q == "" {
			return events
		}
		return filter(events, func(e *domain.Event) bool {
			if strings.Contains(strings.ToLower(e.Title), q) ||
				strings.Contains(strings.ToLower(e.Description), q) ||
				strings.Contains(strings.ToLower(e.Location), q) {
				return true
			}
			return slices.ContainsFunc(e.Tags, func(tag string) bool {
				return strings.Contains(strings.ToLower(tag), q)
			})
		})
	}
}

// FilterMode keeps events whose mode equals mode exactly.
func FilterMode(mode string) Transform {
	return func(events []*domain.Event) []*domain.Event {
		if mode == "" || mode == filterAll {
			return events
		}
		return filter(events, func(e *domain.Event) bool { return e.Mode == mode })
	}
}

// FilterLocation keeps events whose location equals location exactly.
func FilterLocation(location string) Transform {
	return func(events []*domain.Event) []*domain.Event {
		if location == "" || location == filterAll {
			return events
		}
		return filter(events, func(e *domain.Event) bool { return e.Location == location })
	}
}

// Sort orders events by createdAt or title. Unknown options fall back to newest first.
func Sort(option string) Transform {
	return func(events []*domain.Event) []*domain.Event {
		out := slices.Clone(events)
		var less func(a, b *domain.Event) bool
		switch option {
		case SortOldest:
			less = func(a, b *domain.Event) bool { return a.CreatedAt.Before(b.CreatedAt) }
		case SortTitleAsc:
			less = func(a, b *domain.Event) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
		case SortTitleDesc:
			less = func(a, b *domain.Event) bool { return strings.ToLower(a.Title) > strings.ToLower(b.Title) }
		default:
			less = func(a, b *domain.Event) bool { return a.CreatedAt.After(b.CreatedAt) }
		}
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
		return out
	}
}

// Apply runs the search, mode, location and sort transforms described by q.
func Apply(events []*domain.Event, q domain.EventQuery) []*domain.Event {
	return Pipe(events, Search(q.Search), FilterMode(q.Mode), FilterLocation(q.Location), Sort(q.Sort))
}

// Pipe applies transforms left to right.
func Pipe(events []*domain.Event, transforms ...Transform) []*domain.Event {
	for _, t := range transforms {
		events = t(events)
	}
	if events == nil {
		return []*domain.Event{}
	}
	return events
}

// Locations returns the sorted unique locations of events.
func Locations(events []*domain.Event) []string {
	seen := make(map[string]struct{}, len(events))
	out := make([]string, 0, len(events))
	for _, e := range events {
		if _, ok := seen[e.Location]; ok {
			continue
		}
		seen[e.Location] = struct{}{}
		out = append(out, e.Location)
	}
	sort.Strings(out)
	return out
}

// Similar returns up to limit events sharing at least one tag with target,
// excluding target itself, preserving the input order. limit <= 0 means no limit.
func Similar(events []*domain.Event, target *domain.Event, limit int) []*domain.Event {
	tags := make(map[string]struct{}, len(target.Tags))
	for _, t := range target.Tags {
		tags[strings.ToLower(t)] = struct{}{}
	}
	out := make([]*domain.Event, 0)
	for _, e := range events {
		if e.ID == target.ID || e.Slug == target.Slug {
			continue
		}
		if !slices.ContainsFunc(e.Tags, func(t string) bool {
			_, ok := tags[strings.ToLower(t)]
			return ok
		}) {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func filter(events []*domain.Event, keep func(*domain.Event) bool) []*domain.Event {
	out := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
