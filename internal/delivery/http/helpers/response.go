package helpers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body for responses that carry only a message.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is the 400 body when one or more fields failed validation.
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// ServerErrorResponse is the 500 body: a summary message plus the underlying error text.
// swagger:model ServerErrorResponse
type ServerErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteMessage writes a MessageResponse with the given status.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteServerError writes a ServerErrorResponse with status 500.
func WriteServerError(w http.ResponseWriter, message string, err error) {
	body := ServerErrorResponse{Message: message, Error: "Unknown error"}
	if err != nil {
		body.Error = err.Error()
	}
	WriteJSON(w, http.StatusInternalServerError, body)
}
