package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"
	"devevents/internal/ingestion"
)

// DefaultMaxUploadBytes bounds the multipart body of POST /api/events.
const DefaultMaxUploadBytes = 5 << 20

// CreateEventResponse is the 201 body for POST /api/events.
type CreateEventResponse struct {
	Message string        `json:"message"`
	Event   *domain.Event `json:"event"`
}

// ListEventsResponse is the 200 body for GET /api/events and GET /api/events/{slug}/similar.
type ListEventsResponse struct {
	Message string          `json:"message"`
	Events  []*domain.Event `json:"events"`
}

// ListLocationsResponse is the 200 body for GET /api/events/locations.
type ListLocationsResponse struct {
	Message   string   `json:"message"`
	Locations []string `json:"locations"`
}

// GetEventResponse is the 200 body for GET /api/events/{slug}.
type GetEventResponse struct {
	Message       string          `json:"message"`
	Event         *domain.Event   `json:"event"`
	Bookings      int             `json:"bookings"`
	SimilarEvents []*domain.Event `json:"similarEvents"`
}

type EventController struct {
	Logger         *slog.Logger
	Service        domain.EventService
	Bookings       domain.BookingService
	MaxUploadBytes int64
}

func NewEventController(logger *slog.Logger, svc domain.EventService, bookings domain.BookingService, maxUploadBytes int64) *EventController {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &EventController{
		Logger:         logger,
		Service:        svc,
		Bookings:       bookings,
		MaxUploadBytes: maxUploadBytes,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Multipart form with the event's text fields, a binary image part, and tags/agenda as JSON string arrays. The slug is derived from the title; id and timestamps are server-generated.
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description (max 500 characters)"
// @Param overview formData string true "Overview (max 500 characters)"
// @Param image formData file true "Event image"
// @Param venue formData string true "Venue"
// @Param location formData string true "Location"
// @Param date formData string true "Date (e.g. 2024-03-05)"
// @Param time formData string true "Time (e.g. 09:00 or 9:00 AM)"
// @Param mode formData string true "online, offline or hybrid"
// @Param audience formData string true "Audience"
// @Param agenda formData string true "JSON array of agenda items"
// @Param organizer formData string true "Organizer"
// @Param tags formData string true "JSON array of tags"
// @Success 201 {object} controllers.CreateEventResponse
// @Failure 400 {object} helpers.ValidationErrorResponse "message, plus errors[] for field validation"
// @Failure 409 {object} helpers.MessageResponse "an event with this title already exists"
// @Failure 500 {object} helpers.ServerErrorResponse
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, c.MaxUploadBytes)

	candidate, err := ingestion.FromRequest(r, ingestion.DefaultMaxMemory)
	if err != nil {
		c.writeError(w, r, err, "Event Creation Failed")
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), candidate)
	if err != nil {
		c.writeError(w, r, err, "Event Creation Failed")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, CreateEventResponse{Message: "Event created successfully", Event: event})
}

// ListEvents godoc
// @Summary List events
// @Description Returns all events newest first, optionally searched, filtered and re-sorted.
// @Tags events
// @Produce json
// @Param q query string false "Case-insensitive search over title, description, location and tags"
// @Param mode query string false "online, offline, hybrid or all"
// @Param location query string false "Exact location or all"
// @Param sort query string false "newest, oldest, title-asc or title-desc"
// @Success 200 {object} controllers.ListEventsResponse
// @Failure 500 {object} helpers.ServerErrorResponse
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := domain.EventQuery{
		Search:   q.Get("q"),
		Mode:     q.Get("mode"),
		Location: q.Get("location"),
		Sort:     q.Get("sort"),
	}
	events, err := c.Service.ListEvents(r.Context(), query)
	if err != nil {
		c.writeError(w, r, err, "Event fetching failed")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ListEventsResponse{Message: "Events fetched successfully", Events: events})
}

// ListLocations godoc
// @Summary List event locations
// @Description Sorted unique locations across all events, for building location filters.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListLocationsResponse
// @Failure 500 {object} helpers.ServerErrorResponse
// @Router /api/events/locations [get]
func (c *EventController) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := c.Service.ListLocations(r.Context())
	if err != nil {
		c.writeError(w, r, err, "Location fetching failed")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ListLocationsResponse{Message: "Locations fetched successfully", Locations: locations})
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Description Returns the event, its booking count and up to three similar events.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.GetEventResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ServerErrorResponse
// @Router /api/events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	event, err := c.Service.GetEventBySlug(r.Context(), slug)
	if err != nil {
		c.writeError(w, r, err, "Event fetching failed")
		return
	}

	bookings := 0
	if c.Bookings != nil {
		bookings, err = c.Bookings.CountBookings(r.Context(), event.ID)
		if err != nil {
			c.Logger.WarnContext(r.Context(), "booking count unavailable", "event_id", event.ID, "err", err)
			bookings = 0
		}
	}

	similar, err := c.Service.ListSimilarEvents(r.Context(), event.Slug, 0)
	if err != nil {
		c.Logger.WarnContext(r.Context(), "similar events unavailable", "slug", event.Slug, "err", err)
		similar = []*domain.Event{}
	}

	helpers.WriteJSON(w, http.StatusOK, GetEventResponse{
		Message:       "Event fetched successfully",
		Event:         event,
		Bookings:      bookings,
		SimilarEvents: similar,
	})
}

// ListSimilarEvents godoc
// @Summary List events similar to an event
// @Description Events sharing at least one tag with the given event, newest first.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Param limit query int false "Maximum number of events (default 3)"
// @Success 200 {object} controllers.ListEventsResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ServerErrorResponse
// @Router /api/events/{slug}/similar [get]
func (c *EventController) ListSimilarEvents(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}
	events, err := c.Service.ListSimilarEvents(r.Context(), r.PathValue("slug"), limit)
	if err != nil {
		c.writeError(w, r, err, "Event fetching failed")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ListEventsResponse{Message: "Similar events fetched successfully", Events: events})
}

// writeError maps err onto the event API's response shapes. failure is the
// summary message used for 500 responses.
func (c *EventController) writeError(w http.ResponseWriter, r *http.Request, err error, failure string) {
	kind := domain.KindOf(err)
	status := statusFor(kind)

	switch {
	case kind == domain.KindValidation:
		helpers.WriteJSON(w, status, helpers.ValidationErrorResponse{Message: "Validation error", Errors: validationMessages(err)})
	case kind == domain.KindDuplicateSlug:
		helpers.WriteMessage(w, status, "An event with this title already exists")
	case kind == domain.KindNotFound:
		helpers.WriteMessage(w, status, "Event not found")
	case status < http.StatusInternalServerError:
		helpers.WriteMessage(w, status, err.Error())
	case kind == domain.KindImageProcessing:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteServerError(w, "Failed to process image", err)
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteServerError(w, failure, err)
	}
}
