// Package formutil decodes the JSON bodies the dashboard UI submits.
//
// Every editor form posts JSON. Decode caps the body size, rejects trailing
// data, and reports an empty body distinctly so handlers can answer with a
// precise 400.
//
//	var post models.CareerPost
//	if err := formutil.Decode(w, r, &post); err != nil {
//		h.ErrLog.LogBadRequest(w, r, "decode career post", err, formutil.Message(err))
//		return
//	}
package formutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MaxBodyBytes bounds a single form submission. A full program tree with
// every collection filled in stays well below this.
const MaxBodyBytes = 1 << 20

var (
	ErrEmptyBody    = errors.New("request body is empty")
	ErrTooLarge     = errors.New("request body is too large")
	ErrTrailingData = errors.New("request body must contain a single JSON value")
)

// Decode reads one JSON value from r's body into v.
func Decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return ErrEmptyBody
		case errors.As(err, &maxErr):
			return ErrTooLarge
		}
		return fmt.Errorf("malformed JSON: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// Message turns a Decode error into text fit for the editor.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrEmptyBody):
		return "The request was empty."
	case errors.Is(err, ErrTooLarge):
		return "The submission is too large."
	case errors.Is(err, ErrTrailingData):
		return "The submission contained more than one JSON value."
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("The field %s has the wrong type.", typeErr.Field)
	}
	return "The submission is not valid JSON."
}

// Bool reads a boolean query parameter such as ?force=true.
func Bool(r *http.Request, key string) bool {
	switch strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
