// internal/app/features/errors/render.go
package errors

import (
	"encoding/json"
	"net/http"
)

// envelope mirrors the content backend's response wrapper so the UI can
// treat both the same way.
type envelope struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// OK writes {success:true, data} with status 200.
func OK(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, envelope{Success: true, Data: data})
}

// Created writes {success:true, data} with status 201.
func Created(w http.ResponseWriter, data any) {
	write(w, http.StatusCreated, envelope{Success: true, Data: data})
}

// Deleted acknowledges a deletion.
func Deleted(w http.ResponseWriter, msg string) {
	write(w, http.StatusOK, envelope{Success: true, Message: msg})
}

// Fail writes {success:false, message, errors?}.
func Fail(w http.ResponseWriter, status int, msg string, fieldErrs map[string]string) {
	write(w, status, envelope{Success: false, Message: msg, Errors: fieldErrs})
}

// FailWithData is Fail plus a data payload, used by conflicts to return the
// live backend copy.
func FailWithData(w http.ResponseWriter, status int, msg string, data any) {
	write(w, status, envelope{Success: false, Message: msg, Data: data})
}
