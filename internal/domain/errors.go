package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies every error the service reports to clients.
type Kind int

const (
	KindInternal Kind = iota
	KindMalformedRequest
	KindMissingField
	KindMissingImage
	KindInvalidListFormat
	KindEmptyList
	KindInvalidFormat
	KindInvalidEmail
	KindValidation
	KindDuplicateSlug
	KindEventNotFound
	KindImageProcessing
	KindNotFound
)

var kindNames = map[Kind]string{
	KindInternal:          "internal",
	KindMalformedRequest:  "malformed_request",
	KindMissingField:      "missing_field",
	KindMissingImage:      "missing_image",
	KindInvalidListFormat: "invalid_list_format",
	KindEmptyList:         "empty_list",
	KindInvalidFormat:     "invalid_format",
	KindInvalidEmail:      "invalid_email",
	KindValidation:        "validation",
	KindDuplicateSlug:     "duplicate_slug",
	KindEventNotFound:     "event_not_found",
	KindImageProcessing:   "image_processing",
	KindNotFound:          "not_found",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the single error type carried across the domain boundary.
// Field names the offending input (if any). Causes holds the field-level
// errors aggregated by a KindValidation error.
type Error struct {
	Kind    Kind
	Field   string
	Value   string
	Message string
	Causes  []error
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("%s is required and cannot be empty", e.Field)
	case KindEmptyList:
		return fmt.Sprintf("%s is required and must contain at least one item", e.Field)
	case KindInvalidFormat:
		if e.Field != "" {
			return fmt.Sprintf("invalid %s format: %s", e.Field, e.Value)
		}
		return "invalid format: " + e.Value
	case KindValidation:
		if len(e.Causes) == 0 {
			return "validation error"
		}
		return "validation error: " + strings.Join(e.Messages(), "; ")
	case KindEventNotFound:
		if e.Value != "" {
			return fmt.Sprintf("event with ID %s does not exist", e.Value)
		}
		return "event does not exist"
	case KindImageProcessing:
		if e.Err != nil {
			return "failed to process image: " + e.Err.Error()
		}
		return "failed to process image"
	}
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return strings.ReplaceAll(e.Kind.String(), "_", " ")
}

// Unwrap exposes both the wrapped error and any aggregated causes so that
// errors.Is(validationErr, ErrEmptyList) matches.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, len(e.Causes)+1)
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return append(out, e.Causes...)
}

// Is matches on Kind. A target with a Field set also requires the same Field.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Field == "" || t.Field == e.Field
}

// Messages returns the client-facing message list. For a validation error
// that is one message per cause; otherwise the error text itself.
func (e *Error) Messages() []string {
	if len(e.Causes) == 0 {
		return []string{e.Error()}
	}
	msgs := make([]string, 0, len(e.Causes))
	for _, c := range e.Causes {
		msgs = append(msgs, c.Error())
	}
	return msgs
}

// Sentinels for errors.Is.
var (
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrMalformedRequest  = &Error{Kind: KindMalformedRequest}
	ErrMissingField      = &Error{Kind: KindMissingField}
	ErrMissingImage      = &Error{Kind: KindMissingImage}
	ErrInvalidListFormat = &Error{Kind: KindInvalidListFormat}
	ErrEmptyList         = &Error{Kind: KindEmptyList}
	ErrInvalidFormat     = &Error{Kind: KindInvalidFormat}
	ErrInvalidEmail      = &Error{Kind: KindInvalidEmail}
	ErrValidation        = &Error{Kind: KindValidation}
	ErrDuplicateSlug     = &Error{Kind: KindDuplicateSlug}
	ErrEventNotFound     = &Error{Kind: KindEventNotFound}
	ErrImageProcessing   = &Error{Kind: KindImageProcessing}
)

func MissingField(field string) *Error {
	return &Error{Kind: KindMissingField, Field: field}
}

func EmptyList(field string) *Error {
	return &Error{Kind: KindEmptyList, Field: field}
}

func InvalidFormat(field, value string) *Error {
	return &Error{Kind: KindInvalidFormat, Field: field, Value: value}
}

func InvalidEmail(value string) *Error {
	return &Error{Kind: KindInvalidEmail, Field: "email", Value: value, Message: "invalid email format"}
}

func EventNotFound(eventID string) *Error {
	return &Error{Kind: KindEventNotFound, Value: eventID}
}

func ImageProcessing(err error) *Error {
	return &Error{Kind: KindImageProcessing, Field: "image", Err: err}
}

func MalformedRequest(message string, err error) *Error {
	return &Error{Kind: KindMalformedRequest, Message: message, Err: err}
}

// ValidationError aggregates field-level errors. It returns nil when causes is empty.
func ValidationError(causes ...error) error {
	if len(causes) == 0 {
		return nil
	}
	return &Error{Kind: KindValidation, Causes: causes}
}

// KindOf reports the Kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
