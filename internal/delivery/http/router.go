package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"devevents/internal/delivery/http/controllers"
	"devevents/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(events *controllers.EventController, bookings *controllers.BookingController, health *controllers.HealthController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /api/events", events.CreateEvent)
	mux.HandleFunc("GET /api/events", events.ListEvents)
	mux.HandleFunc("GET /api/events/locations", events.ListLocations)
	mux.HandleFunc("GET /api/events/{slug}", events.GetEventBySlug)
	mux.HandleFunc("GET /api/events/{slug}/similar", events.ListSimilarEvents)

	// Bookings
	mux.HandleFunc("POST /api/bookings", bookings.CreateBooking)

	mux.HandleFunc("GET /health", health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// WithMiddleware wraps h with the standard middleware chain, outermost first:
// request ID, request logging, panic recovery, CORS.
func WithMiddleware(h http.Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	h = middleware.CORS(allowedOrigins, h)
	h = middleware.Recover(logger, h)
	h = middleware.LoggingMiddleware(logger, h)
	return middleware.RequestID(h)
}
