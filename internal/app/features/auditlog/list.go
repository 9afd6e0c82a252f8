// internal/app/features/auditlog/list.go
package auditlog

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	uierrors "github.com/dalemusser/campusadmin/internal/app/features/errors"
	"github.com/dalemusser/campusadmin/internal/app/store/audit"
	"github.com/dalemusser/campusadmin/internal/app/system/timeouts"
)

const (
	pageSize     = 50
	historyLimit = 20
)

// eventItem is one audit event as the dashboard shows it.
type eventItem struct {
	ID            string            `json:"id"`
	Timestamp     time.Time         `json:"timestamp"`
	Category      string            `json:"category"`
	EventType     string            `json:"eventType"`
	Resource      string            `json:"resource,omitempty"`
	Actor         string            `json:"actor,omitempty"`
	IP            string            `json:"ip,omitempty"`
	RequestID     string            `json:"requestId,omitempty"`
	Success       bool              `json:"success"`
	FailureReason string            `json:"failureReason,omitempty"`
	Details       map[string]string `json:"details,omitempty"`
}

type listData struct {
	Items      []eventItem `json:"items"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
	Total      int64       `json:"total"`
	HasPrev    bool        `json:"hasPrev"`
	HasNext    bool        `json:"hasNext"`
}

func toItems(events []audit.Event) []eventItem {
	items := make([]eventItem, 0, len(events))
	for _, e := range events {
		items = append(items, eventItem{
			ID:            e.ID.Hex(),
			Timestamp:     e.Timestamp,
			Category:      e.Category,
			EventType:     e.EventType,
			Resource:      e.Resource,
			Actor:         e.Actor,
			IP:            e.IP,
			RequestID:     e.RequestID,
			Success:       e.Success,
			FailureReason: e.FailureReason,
			Details:       e.Details,
		})
	}
	return items
}

// ServeList handles GET /audit-events with optional category, event_type,
// resource, start_date, end_date (YYYY-MM-DD) and page parameters.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "audit log list")
	defer cancel()

	q := r.URL.Query()
	page := 1
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		page = p
	}

	filter := audit.QueryFilter{
		Category:  strings.TrimSpace(q.Get("category")),
		EventType: strings.TrimSpace(q.Get("event_type")),
		Resource:  strings.Trim(strings.TrimSpace(q.Get("resource")), "/"),
		Limit:     pageSize,
		Offset:    int64((page - 1) * pageSize),
	}

	if s := strings.TrimSpace(q.Get("start_date")); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			h.ErrLog.LogBadRequest(w, r, "bad start_date", err, "start_date must be YYYY-MM-DD.")
			return
		}
		filter.StartTime = &t
	}
	if s := strings.TrimSpace(q.Get("end_date")); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			h.ErrLog.LogBadRequest(w, r, "bad end_date", err, "end_date must be YYYY-MM-DD.")
			return
		}
		// End of day
		endOfDay := t.Add(24*time.Hour - time.Second)
		filter.EndTime = &endOfDay
	}

	events, err := h.Store.Query(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to query audit events", err, "A database error occurred.")
		return
	}
	total, err := h.Store.Count(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to count audit events", err, "A database error occurred.")
		return
	}

	totalPages := int((total + pageSize - 1) / pageSize)
	if totalPages < 1 {
		totalPages = 1
	}

	uierrors.OK(w, listData{
		Items:      toItems(events),
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	})
}

// ServeHistory handles GET /audit-events/history?resource=courses/c1/programs/p1
// and returns the latest changes to that one document.
func (h *Handler) ServeHistory(w http.ResponseWriter, r *http.Request) {
	resource := strings.Trim(strings.TrimSpace(r.URL.Query().Get("resource")), "/")
	if resource == "" {
		h.ErrLog.LogBadRequest(w, r, "missing resource", nil, "resource is required.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "audit history")
	defer cancel()

	events, err := h.Store.History(ctx, resource, historyLimit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load audit history", err, "A database error occurred.")
		return
	}
	uierrors.OK(w, toItems(events))
}
