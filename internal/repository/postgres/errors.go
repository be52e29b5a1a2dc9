package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres SQLSTATE codes translated into domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
	codeUntranslatable      = "22021"
)

// Constraint names declared in the migrations.
const (
	constraintEventsSlug    = "events_slug_key"
	constraintBookingsEvent = "bookings_event_id_fkey"
)

// pqError returns the *pq.Error in err's chain when its code matches.
func pqError(err error, code string) (*pq.Error, bool) {
	var perr *pq.Error
	if errors.As(err, &perr) && string(perr.Code) == code {
		return perr, true
	}
	return nil, false
}
