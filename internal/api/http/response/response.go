// Package response writes the JSON envelopes of the HTTP API.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/dtroode/jobmarket-server/internal/api/http/apierror"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Message string             `json:"message,omitempty"`
	Content any                `json:"content,omitempty"`
	Error   *apierror.APIError `json:"error,omitempty"`
}

// JSON writes a success envelope with the given status code.
func JSON(w http.ResponseWriter, status int, message string, content any) {
	write(w, status, Envelope{Message: message, Content: content})
}

func OK(w http.ResponseWriter, message string, content any) {
	JSON(w, http.StatusOK, message, content)
}

func Created(w http.ResponseWriter, message string, content any) {
	JSON(w, http.StatusCreated, message, content)
}

// Error writes the error envelope for err.
func Error(w http.ResponseWriter, err error) {
	apiErr := apierror.FromError(err)
	write(w, apiErr.StatusCode, Envelope{Error: apiErr})
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
