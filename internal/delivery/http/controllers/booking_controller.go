package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"
)

// CreateBookingRequest is the request body for POST /api/bookings.
type CreateBookingRequest struct {
	EventID string `json:"eventId"`
	Email   string `json:"email"`
}

// Validate implements helpers.Validator.
func (c CreateBookingRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.EventID) == "" {
		errs = append(errs, "eventId is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// BookingResponse is the body for every POST /api/bookings response.
// swagger:model BookingResponse
type BookingResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBooking godoc
// @Summary Book a spot at an event
// @Description Records the email's interest in the event and sends a confirmation email. Repeated bookings are allowed.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Event id and attendee email"
// @Success 201 {object} controllers.BookingResponse
// @Failure 400 {object} controllers.BookingResponse "malformed body or invalid email"
// @Failure 404 {object} controllers.BookingResponse "event does not exist"
// @Failure 500 {object} controllers.BookingResponse
// @Router /api/bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := helpers.DecodeAndValidate(w, r, &req); err != nil {
		helpers.WriteJSON(w, http.StatusBadRequest, BookingResponse{Success: false, Error: err.Error()})
		return
	}
	if _, err := c.Service.CreateBooking(r.Context(), req.EventID, req.Email); err != nil {
		status := statusFor(domain.KindOf(err))
		if status == http.StatusInternalServerError {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		}
		helpers.WriteJSON(w, status, BookingResponse{Success: false, Error: err.Error()})
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, BookingResponse{Success: true})
}
