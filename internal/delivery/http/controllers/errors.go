package controllers

import (
	"errors"
	"net/http"

	"devevents/internal/domain"
)

// statusFor maps an error kind to its HTTP status code.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindMalformedRequest,
		domain.KindMissingField,
		domain.KindMissingImage,
		domain.KindInvalidListFormat,
		domain.KindEmptyList,
		domain.KindInvalidFormat,
		domain.KindInvalidEmail,
		domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindDuplicateSlug:
		return http.StatusConflict
	case domain.KindNotFound, domain.KindEventNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// validationMessages returns the per-field messages of a validation error.
func validationMessages(err error) []string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Messages()
	}
	return []string{err.Error()}
}
