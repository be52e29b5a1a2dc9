package services

import (
	"context"
	"errors"
	"testing"

	"devevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if m.err != nil {
		return m.err
	}
	m.to, m.subject, m.html, m.text = to, subject, html, text
	return nil
}

type fakeRenderer struct {
	name string
	err  error
}

func (r *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	if r.err != nil {
		return "", "", "", r.err
	}
	r.name = name
	d := data.(*domain.BookingConfirmationEmailData)
	return "You're booked: " + d.EventTitle, "<p>" + d.EventTitle + "</p>", d.EventTitle, nil
}

func TestEmailService_SendBookingConfirmation(t *testing.T) {
	ctx := context.Background()
	data := &domain.BookingConfirmationEmailData{Email: "dev@example.com", EventTitle: "Dev Conf 2024"}

	t.Run("success", func(t *testing.T) {
		mailer := &fakeMailer{}
		renderer := &fakeRenderer{}
		err := NewEmailService(mailer, renderer, nil).SendBookingConfirmation(ctx, data)
		require.NoError(t, err)
		assert.Equal(t, "booking_confirmation", renderer.name)
		assert.Equal(t, "dev@example.com", mailer.to)
		assert.Equal(t, "You're booked: Dev Conf 2024", mailer.subject)
		assert.Equal(t, "<p>Dev Conf 2024</p>", mailer.html)
	})

	t.Run("nil data", func(t *testing.T) {
		err := NewEmailService(&fakeMailer{}, &fakeRenderer{}, nil).SendBookingConfirmation(ctx, nil)
		require.Error(t, err)
	})

	t.Run("render failure", func(t *testing.T) {
		err := NewEmailService(&fakeMailer{}, &fakeRenderer{err: errors.New("bad template")}, nil).SendBookingConfirmation(ctx, data)
		require.ErrorContains(t, err, "render")
	})

	t.Run("send failure", func(t *testing.T) {
		err := NewEmailService(&fakeMailer{err: errors.New("throttled")}, &fakeRenderer{}, nil).SendBookingConfirmation(ctx, data)
		require.ErrorContains(t, err, "throttled")
	})
}
