// internal/app/features/errors/errors.go
package errors

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/dalemusser/campusadmin/internal/app/system/cmsclient"
	"github.com/dalemusser/campusadmin/internal/app/system/inputval"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ErrorLogger logs a failure with request context and answers the client
// with the JSON error envelope.
type ErrorLogger struct {
	Log *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	fs := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if id := middleware.GetReqID(r.Context()); id != "" {
		fs = append(fs, zap.String("request_id", id))
	}
	if err != nil {
		fs = append(fs, zap.Error(err))
	}
	return fs
}

// LogServerError answers 500 with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.Log.Error(msg, e.fields(r, err)...)
	Fail(w, http.StatusInternalServerError, userMsg, nil)
}

// LogBadRequest answers 400 with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.Log.Warn(msg, e.fields(r, err)...)
	Fail(w, http.StatusBadRequest, userMsg, nil)
}

// LogNotFound answers 404 with userMsg.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, msg string, userMsg string) {
	e.Log.Info(msg, e.fields(r, nil)...)
	Fail(w, http.StatusNotFound, userMsg, nil)
}

// LogValidation answers 422 with one message per invalid field. Errors that
// are not validation errors are treated as bad requests.
func (e *ErrorLogger) LogValidation(w http.ResponseWriter, r *http.Request, err error) {
	errs, ok := inputval.AsErrors(err)
	if !ok {
		e.LogBadRequest(w, r, "invalid input", err, err.Error())
		return
	}
	e.Log.Info("validation failed", append(e.fields(r, nil), zap.Int("fields", len(errs)))...)
	Fail(w, http.StatusUnprocessableEntity, "Please correct the highlighted fields.", errs)
}

// BackendStatus maps a content backend error to the status the dashboard
// answers with.
func BackendStatus(err error) int {
	if stderrors.Is(err, cmsclient.ErrNotFound) {
		return http.StatusNotFound
	}
	var apiErr *cmsclient.APIError
	if stderrors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return apiErr.Status
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}

// LogBackendError answers a failed backend call. The backend's own message
// is passed through so editors see what the backend rejected.
func (e *ErrorLogger) LogBackendError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := BackendStatus(err)
	if status >= 500 {
		e.Log.Error(msg, e.fields(r, err)...)
	} else {
		e.Log.Warn(msg, e.fields(r, err)...)
	}
	Fail(w, status, cmsclient.Message(err), nil)
}

// Handler serves the router's fallback responses.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	Fail(w, http.StatusNotFound, "No such endpoint.", nil)
}

// MethodNotAllowed answers known routes called with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Fail(w, http.StatusMethodNotAllowed, "Method not allowed.", nil)
}
