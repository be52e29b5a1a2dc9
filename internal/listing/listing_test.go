package listing

import (
	"testing"
	"time"

	"devevents/internal/domain"

	"github.com/stretchr/testify/assert"
)

var base = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func fixtures() []*domain.Event {
	return []*domain.Event{
		{ID: "1", Slug: "react-summit", Title: "React Summit", Description: "Frontend talks", Location: "Amsterdam", Mode: "offline", Tags: []string{"react", "frontend"}, CreatedAt: base.Add(1 * time.Hour)},
		{ID: "2", Slug: "cloud-expo", Title: "Cloud Expo", Description: "Infra day", Location: "Berlin", Mode: "hybrid", Tags: []string{"Cloud", "devops"}, CreatedAt: base.Add(3 * time.Hour)},
		{ID: "3", Slug: "ai-meetup", Title: "ai meetup", Description: "Models and agents", Location: "Amsterdam", Mode: "online", Tags: []string{"ai"}, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func ids(events []*domain.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name string
		q    string
		want []string
	}{
		{"tag match is case-insensitive", "cloud", []string{"2"}},
		{"title", "SUMMIT", []string{"1"}},
		{"description", "agents", []string{"3"}},
		{"location", "amsterdam", []string{"1", "3"}},
		{"blank keeps all", "  ", []string{"1", "2", "3"}},
		{"no match", "rust", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Search(tt.q)(fixtures())))
		})
	}
}

func TestFilters(t *testing.T) {
	assert.Equal(t, []string{"3"}, ids(FilterMode("online")(fixtures())))
	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterMode("all")(fixtures())))
	assert.Equal(t, []string{"1", "3"}, ids(FilterLocation("Amsterdam")(fixtures())))
	assert.Empty(t, FilterLocation("amsterdam")(fixtures()), "location match is exact")
}

func TestSort(t *testing.T) {
	assert.Equal(t, []string{"2", "3", "1"}, ids(Sort(SortNewest)(fixtures())))
	assert.Equal(t, []string{"1", "3", "2"}, ids(Sort(SortOldest)(fixtures())))
	assert.Equal(t, []string{"3", "2", "1"}, ids(Sort(SortTitleAsc)(fixtures())))
	assert.Equal(t, []string{"1", "2", "3"}, ids(Sort(SortTitleDesc)(fixtures())))
	assert.Equal(t, []string{"2", "3", "1"}, ids(Sort("bogus")(fixtures())))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	in := fixtures()
	_ = Sort(SortTitleAsc)(in)
	assert.Equal(t, []string{"1", "2", "3"}, ids(in))
}

func TestApply(t *testing.T) {
	got := Apply(fixtures(), domain.EventQuery{Location: "Amsterdam", Sort: SortOldest})
	assert.Equal(t, []string{"1", "3"}, ids(got))

	got = Apply(nil, domain.EventQuery{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLocations(t *testing.T) {
	assert.Equal(t, []string{"Amsterdam", "Berlin"}, Locations(fixtures()))
}

func TestSimilar(t *testing.T) {
	events := append(fixtures(), &domain.Event{ID: "4", Slug: "devops-days", Title: "DevOps Days", Tags: []string{"devops", "cloud"}})
	target := events[1]

	assert.Equal(t, []string{"4"}, ids(Similar(events, target, 0)))
	assert.Empty(t, Similar(events, events[2], 3))
}
