package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"devevents/internal/delivery/http/controllers"
	"devevents/internal/domain"
	"devevents/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore backs both repositories in memory with the same uniqueness and
// ordering rules as the postgres tables.
type memoryStore struct {
	mu       sync.Mutex
	events   []*domain.Event
	bookings []*domain.Booking
	seq      int
}

type memoryEvents struct{ s *memoryStore }

type memoryBookings struct{ s *memoryStore }

func (r memoryEvents) Create(ctx context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.events {
		if existing.Slug == e.Slug {
			return domain.ErrDuplicateSlug
		}
	}
	// CreatedAt must be strictly increasing for a deterministic newest-first order.
	r.s.seq++
	e.CreatedAt = time.Date(2025, 1, 1, 0, r.s.seq, 0, 0, time.UTC)
	e.UpdatedAt = e.CreatedAt
	r.s.events = append(r.s.events, e)
	return nil
}

func (r memoryEvents) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memoryEvents) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.events {
		if e.Slug == strings.ToLower(strings.TrimSpace(slug)) {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memoryEvents) List(ctx context.Context) ([]*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := append([]*domain.Event{}, r.s.events...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memoryBookings) Create(ctx context.Context, b *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.bookings = append(r.s.bookings, b)
	return nil
}

func (r memoryBookings) CountByEventID(ctx context.Context, eventID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, b := range r.s.bookings {
		if b.EventID == eventID {
			n++
		}
	}
	return n, nil
}

type okPinger struct{}

func (okPinger) Ping(ctx context.Context) error { return nil }

func newTestServer(t *testing.T) (*httptest.Server, *memoryStore) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := &memoryStore{}
	events := memoryEvents{store}
	bookings := memoryBookings{store}

	eventSvc := services.NewEventService(events, logger, 5*time.Second)
	bookingSvc := services.NewBookingService(bookings, events, nil, "", logger, 5*time.Second)

	mux := NewRouter(
		controllers.NewEventController(logger, eventSvc, bookingSvc, controllers.DefaultMaxUploadBytes),
		controllers.NewBookingController(logger, bookingSvc),
		controllers.NewHealthController(logger, okPinger{}),
	)
	srv := httptest.NewServer(WithMiddleware(mux, logger, []string{"http://localhost:3000"}))
	t.Cleanup(srv.Close)
	return srv, store
}

func postEvent(t *testing.T, srv *httptest.Server, title string, tags string) *http.Response {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fields := [][2]string{
		{"title", title},
		{"description", "A conference for developers"},
		{"overview", "Two days of talks"},
		{"venue", "Hall A"},
		{"location", "Berlin"},
		{"date", "2024-03-05"},
		{"time", "9:00 AM"},
		{"mode", "hybrid"},
		{"audience", "Developers"},
		{"organizer", "DevOrg"},
		{"tags", tags},
		{"agenda", `["Registration"," ","Keynote"]`},
	}
	for _, f := range fields {
		require.NoError(t, w.WriteField(f[0], f[1]))
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="cover.png"`)
	h.Set("Content-Type", "image/png")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	resp, err := http.Post(srv.URL+"/api/events", w.FormDataContentType(), &body)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestRouter_EventLifecycle(t *testing.T) {
	srv, store := newTestServer(t)

	resp := postEvent(t, srv, "Dev Conf 2024", `["AI","Cloud"]`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	created := decode[controllers.CreateEventResponse](t, resp)
	assert.Equal(t, "dev-conf-2024", created.Event.Slug)
	assert.Len(t, created.Event.Tags, 2)
	assert.Equal(t, []string{"Registration", "Keynote"}, created.Event.Agenda)
	assert.Equal(t, "09:00", created.Event.Time)
	assert.Equal(t, "data:image/png;base64,iVBORw==", created.Event.Image)

	resp = postEvent(t, srv, "Dev Conf 2024", `["go"]`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
	assert.Len(t, store.events, 1)

	resp = postEvent(t, srv, "Go Meetup", `["go"]`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = postEvent(t, srv, "Kube Night", `["cloud"]`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	t.Run("list newest first", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/events")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list := decode[controllers.ListEventsResponse](t, resp)
		require.Len(t, list.Events, 3)
		assert.Equal(t, []string{"kube-night", "go-meetup", "dev-conf-2024"},
			[]string{list.Events[0].Slug, list.Events[1].Slug, list.Events[2].Slug})
	})

	t.Run("search", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/events?q=meetup")
		require.NoError(t, err)
		list := decode[controllers.ListEventsResponse](t, resp)
		require.Len(t, list.Events, 1)
		assert.Equal(t, "go-meetup", list.Events[0].Slug)
	})

	t.Run("locations route wins over slug", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/events/locations")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		locations := decode[controllers.ListLocationsResponse](t, resp)
		assert.Equal(t, []string{"Berlin"}, locations.Locations)
	})

	t.Run("book then read detail", func(t *testing.T) {
		payload := fmt.Sprintf(`{"eventId":%q,"email":" Dev@Example.com "}`, created.Event.ID)
		resp, err := http.Post(srv.URL+"/api/bookings", "application/json", strings.NewReader(payload))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		booked := decode[controllers.BookingResponse](t, resp)
		assert.True(t, booked.Success)

		resp, err = http.Get(srv.URL + "/api/events/dev-conf-2024")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		detail := decode[controllers.GetEventResponse](t, resp)
		assert.Equal(t, 1, detail.Bookings)
		require.Len(t, detail.SimilarEvents, 1)
		assert.Equal(t, "kube-night", detail.SimilarEvents[0].Slug)
	})

	t.Run("booking unknown event", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/bookings", "application/json",
			strings.NewReader(`{"eventId":"6f1f0f5e-3c3a-4d43-9d8b-0f5d7b2f8a11","email":"dev@example.com"}`))
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		out := decode[controllers.BookingResponse](t, resp)
		assert.False(t, out.Success)
		assert.Len(t, store.bookings, 1)
	})

	t.Run("unknown slug", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/events/nope")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("wrong method", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/events/dev-conf-2024", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}
