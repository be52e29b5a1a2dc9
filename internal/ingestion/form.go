// Package ingestion decodes an event-creation submission (multipart fields,
// an image upload and JSON-encoded list fields) into a domain.EventCandidate.
package ingestion

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"devevents/internal/domain"
	"devevents/internal/normalize"
)

// DefaultImageMimeType is used when the image part carries no Content-Type.
const DefaultImageMimeType = "image/jpeg"

// DefaultMaxMemory is the multipart memory threshold before parts spill to disk.
const DefaultMaxMemory = 10 << 20

// Form field names.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldOverview    = "overview"
	FieldImage       = "image"
	FieldVenue       = "venue"
	FieldLocation    = "location"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldMode        = "mode"
	FieldAudience    = "audience"
	FieldAgenda      = "agenda"
	FieldOrganizer   = "organizer"
	FieldTags        = "tags"
)

// FromRequest parses r as a multipart form and decodes it into a candidate.
func FromRequest(r *http.Request, maxMemory int64) (*domain.EventCandidate, error) {
	if maxMemory <= 0 {
		maxMemory = DefaultMaxMemory
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, domain.MalformedRequest("Invalid form data format", err)
	}
	return FromForm(r.MultipartForm)
}

// FromForm decodes an already-parsed multipart form into a candidate.
func FromForm(form *multipart.Form) (*domain.EventCandidate, error) {
	if form == nil {
		return nil, domain.MalformedRequest("Invalid form data format", nil)
	}

	image := firstFile(form, FieldImage)
	if image == nil || image.Size == 0 {
		return nil, &domain.Error{Kind: domain.KindMissingImage, Field: FieldImage, Message: "Image file is required"}
	}

	tagsRaw, agendaRaw := firstValue(form, FieldTags), firstValue(form, FieldAgenda)
	if strings.TrimSpace(tagsRaw) == "" || strings.TrimSpace(agendaRaw) == "" {
		return nil, &domain.Error{Kind: domain.KindInvalidListFormat, Message: "Tags and agenda are required"}
	}
	tags, err := parseList(FieldTags, tagsRaw)
	if err != nil {
		return nil, err
	}
	agenda, err := parseList(FieldAgenda, agendaRaw)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 || len(agenda) == 0 {
		field := FieldTags
		if len(tags) > 0 {
			field = FieldAgenda
		}
		return nil, &domain.Error{
			Kind:    domain.KindEmptyList,
			Field:   field,
			Message: "Tags and agenda must contain at least one non-empty item",
		}
	}

	dataURL, err := ImageDataURL(image)
	if err != nil {
		return nil, err
	}

	return &domain.EventCandidate{
		Title:       firstValue(form, FieldTitle),
		Description: firstValue(form, FieldDescription),
		Overview:    firstValue(form, FieldOverview),
		Image:       dataURL,
		Venue:       firstValue(form, FieldVenue),
		Location:    firstValue(form, FieldLocation),
		Date:        firstValue(form, FieldDate),
		Time:        firstValue(form, FieldTime),
		Mode:        firstValue(form, FieldMode),
		Audience:    firstValue(form, FieldAudience),
		Agenda:      agenda,
		Organizer:   firstValue(form, FieldOrganizer),
		Tags:        tags,
	}, nil
}

// parseList decodes a JSON array of strings and drops blank entries.
func parseList(field, raw string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, &domain.Error{
			Kind:    domain.KindInvalidListFormat,
			Field:   field,
			Message: "Invalid tags or agenda format",
			Err:     err,
		}
	}
	if items == nil {
		return nil, &domain.Error{
			Kind:    domain.KindInvalidListFormat,
			Field:   field,
			Message: "Tags and agenda must be arrays",
		}
	}
	return normalize.CleanList(items), nil
}

// ImageDataURL reads the uploaded file and encodes it as a base64 data URL.
func ImageDataURL(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", domain.ImageProcessing(fmt.Errorf("open image: %w", err))
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", domain.ImageProcessing(fmt.Errorf("read image: %w", err))
	}

	return EncodeDataURL(imageMimeType(fh.Header.Get("Content-Type"), raw), raw), nil
}

// imageMimeType prefers the submitted type. A generic octet-stream part is
// sniffed and kept only if it is recognisably an image.
func imageMimeType(submitted string, raw []byte) string {
	submitted = strings.TrimSpace(submitted)
	switch submitted {
	case "":
		return DefaultImageMimeType
	case "application/octet-stream":
		if detected := http.DetectContentType(raw); strings.HasPrefix(detected, "image/") {
			return detected
		}
		return DefaultImageMimeType
	}
	return submitted
}

// EncodeDataURL builds a data:<mime>;base64,<payload> URI.
func EncodeDataURL(mimeType string, payload []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(payload)
}

func firstValue(form *multipart.Form, name string) string {
	if vs := form.Value[name]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func firstFile(form *multipart.Form, name string) *multipart.FileHeader {
	if fs := form.File[name]; len(fs) > 0 {
		return fs[0]
	}
	return nil
}
