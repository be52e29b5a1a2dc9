package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"devevents/internal/domain"
	"devevents/internal/normalize"

	"github.com/google/uuid"
)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	publicBaseURL  string
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewBookingService returns a BookingService. emailService may be nil, in which
// case no confirmation email is sent.
func NewBookingService(bookingRepo domain.BookingRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	publicBaseURL string,
	logger *slog.Logger,
	timeout time.Duration,
) domain.BookingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingService{
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		publicBaseURL:  strings.TrimRight(publicBaseURL, "/"),
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, eventID, email string) (*domain.Booking, error) {
	normalizedEmail, err := normalize.Email(email)
	if err != nil {
		return nil, err
	}

	eventID = strings.TrimSpace(eventID)
	if _, err := uuid.Parse(eventID); err != nil {
		return nil, domain.EventNotFound(eventID)
	}

	opCtx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(opCtx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.EventNotFound(eventID)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := s.now().UTC()
	booking := domain.NewBooking(event.ID, normalizedEmail, now, now)
	booking.ID = uuid.NewString()

	if err := s.bookingRepo.Create(opCtx, booking); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}
	s.logger.InfoContext(ctx, "booking created", "id", booking.ID, "event_id", booking.EventID)

	s.sendConfirmation(ctx, event, booking)
	return booking, nil
}

func (s *bookingService) CountBookings(ctx context.Context, eventID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	n, err := s.bookingRepo.CountByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

// sendConfirmation never fails the booking; errors are only logged.
func (s *bookingService) sendConfirmation(ctx context.Context, event *domain.Event, booking *domain.Booking) {
	if s.emailService == nil {
		return
	}
	data := &domain.BookingConfirmationEmailData{
		Email:      booking.Email,
		EventTitle: event.Title,
		EventDate:  event.Date,
		EventTime:  event.Time,
		Venue:      event.Venue,
		Location:   event.Location,
		EventURL:   s.eventURL(event.Slug),
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "booking confirmation email failed", "booking_id", booking.ID, "err", err)
	}
}

func (s *bookingService) eventURL(slug string) string {
	if s.publicBaseURL == "" {
		return ""
	}
	return s.publicBaseURL + "/events/" + url.PathEscape(slug)
}
