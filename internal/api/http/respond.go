// Package http carries the REST handlers the mobile and web clients
// consume.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/7innovations/fixu/internal/notes"
	"github.com/7innovations/fixu/pkg/questionbank"
)

// envelope matches the wire shape the clients expect.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeData(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Status: "success", Data: data})
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Status: "success", Message: msg})
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case questionbank.IsValidation(err):
		code = http.StatusBadRequest
	case errors.Is(err, notes.ErrInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, notes.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, notes.ErrNotOwner):
		code = http.StatusForbidden
	}
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Status: "error", Message: msg})
}
