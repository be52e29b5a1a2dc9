package domain

import (
	"context"
	"time"
)

// Booking records an attendee's interest in an event.
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewBooking creates a new Booking. ID is set by the caller.
func NewBooking(eventID, email string, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		EventID:   eventID,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// BookingRepository defines storage operations for bookings.
type BookingRepository interface {
	// Create inserts the booking. Returns an EventNotFound error if the
	// referenced event row is missing.
	Create(ctx context.Context, booking *Booking) error
	CountByEventID(ctx context.Context, eventID string) (int, error)
}

// BookingService defines booking operations.
type BookingService interface {
	CreateBooking(ctx context.Context, eventID, email string) (*Booking, error)
	CountBookings(ctx context.Context, eventID string) (int, error)
}
