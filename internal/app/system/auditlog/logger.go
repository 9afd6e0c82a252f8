// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/campusadmin/internal/app/store/audit"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// EditorHeader names the editor making a change. The dashboard has no login
// of its own; the fronting proxy or UI fills this in.
const EditorHeader = "X-Editor"

// Destinations for audit events.
const (
	All = "all" // MongoDB + zap
	DB  = "db"  // MongoDB only
	Log = "log" // zap only
	Off = "off"
)

// Config holds audit logging configuration.
type Config struct {
	// Content controls logging of content change events.
	// Values: "all", "db", "log", "off".
	Content string
}

// Logger records audit events to MongoDB (via audit.Store) and/or zap.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

// ClientIP extracts the client IP from the request, preferring proxy headers.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// Editor returns the editor named on the request, if any.
func Editor(r *http.Request) string {
	return r.Header.Get(EditorHeader)
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.Resource != "" {
		fields = append(fields, zap.String("resource", event.Resource))
	}
	if event.Actor != "" {
		fields = append(fields, zap.String("actor", event.Actor))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event according to configuration. A nil Logger is a
// no-op.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	setting := All
	if event.Category == audit.CategoryContent && l.config.Content != "" {
		setting = l.config.Content
	}
	if setting == Off {
		return
	}

	if setting == All || setting == Log {
		l.logToZap(event)
	}
	if (setting == All || setting == DB) && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

func content(r *http.Request, eventType, resource string, details map[string]string) audit.Event {
	return audit.Event{
		Category:  audit.CategoryContent,
		EventType: eventType,
		Resource:  resource,
		Actor:     Editor(r),
		IP:        ClientIP(r),
		UserAgent: r.UserAgent(),
		RequestID: middleware.GetReqID(r.Context()),
		Success:   true,
		Details:   details,
	}
}

// --- Program events ---

// ProgramCreated logs the creation of a program with its full tree.
func (l *Logger) ProgramCreated(ctx context.Context, r *http.Request, resource, slug string) {
	l.Log(ctx, content(r, audit.EventProgramCreated, resource, map[string]string{"slug": slug}))
}

// CollectionSaved logs the replacement of one nested collection.
func (l *Logger) CollectionSaved(ctx context.Context, r *http.Request, resource, collection string, items int, forced bool) {
	l.Log(ctx, content(r, audit.EventProgramCollectionSaved, resource, map[string]string{
		"collection": collection,
		"items":      strconv.Itoa(items),
		"forced":     strconv.FormatBool(forced),
	}))
}

// ProgramDeleted logs the removal of a program.
func (l *Logger) ProgramDeleted(ctx context.Context, r *http.Request, resource string) {
	l.Log(ctx, content(r, audit.EventProgramDeleted, resource, nil))
}

// ContentConflict logs a save refused because the backend copy changed
// since the draft was loaded.
func (l *Logger) ContentConflict(ctx context.Context, r *http.Request, resource, collection string) {
	e := content(r, audit.EventContentConflict, resource, map[string]string{"collection": collection})
	e.Success = false
	e.FailureReason = "collection changed on the backend"
	l.Log(ctx, e)
}

// --- Flat resource events ---

func (l *Logger) ResourceCreated(ctx context.Context, r *http.Request, resource string) {
	l.Log(ctx, content(r, audit.EventResourceCreated, resource, nil))
}

func (l *Logger) ResourceUpdated(ctx context.Context, r *http.Request, resource string) {
	l.Log(ctx, content(r, audit.EventResourceUpdated, resource, nil))
}

func (l *Logger) ResourceDeleted(ctx context.Context, r *http.Request, resource string) {
	l.Log(ctx, content(r, audit.EventResourceDeleted, resource, nil))
}

// ApplicantStatusChanged logs an applicant moving to a new status.
func (l *Logger) ApplicantStatusChanged(ctx context.Context, r *http.Request, resource, status string) {
	l.Log(ctx, content(r, audit.EventApplicantStatusChanged, resource, map[string]string{"status": status}))
}
