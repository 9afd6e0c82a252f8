// Package shared holds the pieces the content features have in common: the
// backend call context and a generic CRUD handler for the flat document
// families (about-us sections, career posts, campus-life sections).
package shared

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/campusadmin/internal/app/content"
	uierrors "github.com/dalemusser/campusadmin/internal/app/features/errors"
	"github.com/dalemusser/campusadmin/internal/app/system/auditlog"
	"github.com/dalemusser/campusadmin/internal/app/system/cmsclient"
	"github.com/dalemusser/campusadmin/internal/app/system/formutil"
	"github.com/dalemusser/campusadmin/internal/app/system/inputval"
	"github.com/dalemusser/campusadmin/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ItemParam is the URL parameter naming a document within a family.
const ItemParam = "itemID"

// BackendContext bounds a content backend call by the request and the
// backend timeout, and carries the request ID through to the backend.
func BackendContext(r *http.Request, log *zap.Logger, op string) (context.Context, context.CancelFunc) {
	ctx := cmsclient.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
	return timeouts.WithTimeout(ctx, timeouts.Backend(), log, op)
}

// Document is a pointer to a backend document with a string _id.
type Document[T any] interface {
	*T
	DocID() string
	SetDocID(string)
}

// CRUD serves list/show/create/update/delete for one document family.
type CRUD[T any, P Document[T]] struct {
	Res *content.Resource[T]

	// Prepare normalises a submitted document before validation, e.g.
	// trimming text and sanitising rich text. Optional.
	Prepare func(P)

	Audit  *auditlog.Logger
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// Mount registers the family's routes on r.
func (c *CRUD[T, P]) Mount(r chi.Router) {
	r.Get("/", c.List)
	r.Post("/", c.Create)
	r.Get("/{"+ItemParam+"}", c.Show)
	r.Put("/{"+ItemParam+"}", c.Update)
	r.Delete("/{"+ItemParam+"}", c.Delete)
}

// resource names a document for the audit trail, e.g. "about-us/statistics/42".
func (c *CRUD[T, P]) resource(id string) string {
	return strings.TrimPrefix(c.Res.Path(), "/") + "/" + id
}

func (c *CRUD[T, P]) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := BackendContext(r, c.Log, "list "+c.Res.Path())
	defer cancel()

	items, err := c.Res.List(ctx)
	if err != nil {
		c.ErrLog.LogBackendError(w, r, "list failed", err)
		return
	}
	uierrors.OK(w, items)
}

func (c *CRUD[T, P]) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, ItemParam)

	ctx, cancel := BackendContext(r, c.Log, "get "+c.Res.Path())
	defer cancel()

	item, err := c.Res.Get(ctx, id)
	if err != nil {
		c.ErrLog.LogBackendError(w, r, "get failed", err)
		return
	}
	if item == nil {
		c.ErrLog.LogNotFound(w, r, "document not found", "Not found.")
		return
	}
	uierrors.OK(w, item)
}

// decode reads and validates a submitted document. It answers the request
// itself when the document is unusable.
func (c *CRUD[T, P]) decode(w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	if err := formutil.Decode(w, r, &v); err != nil {
		c.ErrLog.LogBadRequest(w, r, "decode "+c.Res.Path(), err, formutil.Message(err))
		return v, false
	}
	P(&v).SetDocID("")
	if c.Prepare != nil {
		c.Prepare(&v)
	}
	if err := inputval.Struct(v); err != nil {
		c.ErrLog.LogValidation(w, r, err)
		return v, false
	}
	return v, true
}

func (c *CRUD[T, P]) Create(w http.ResponseWriter, r *http.Request) {
	v, ok := c.decode(w, r)
	if !ok {
		return
	}

	ctx, cancel := BackendContext(r, c.Log, "create "+c.Res.Path())
	defer cancel()

	created, err := c.Res.Create(ctx, v)
	if err != nil {
		c.ErrLog.LogBackendError(w, r, "create failed", err)
		return
	}
	c.Audit.ResourceCreated(r.Context(), r, c.resource(P(created).DocID()))
	uierrors.Created(w, created)
}

func (c *CRUD[T, P]) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, ItemParam)
	v, ok := c.decode(w, r)
	if !ok {
		return
	}

	ctx, cancel := BackendContext(r, c.Log, "update "+c.Res.Path())
	defer cancel()

	updated, err := c.Res.Update(ctx, id, v)
	if err != nil {
		c.ErrLog.LogBackendError(w, r, "update failed", err)
		return
	}
	c.Audit.ResourceUpdated(r.Context(), r, c.resource(id))
	uierrors.OK(w, updated)
}

func (c *CRUD[T, P]) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, ItemParam)

	ctx, cancel := BackendContext(r, c.Log, "delete "+c.Res.Path())
	defer cancel()

	if err := c.Res.Delete(ctx, id); err != nil {
		c.ErrLog.LogBackendError(w, r, "delete failed", err)
		return
	}
	c.Audit.ResourceDeleted(r.Context(), r, c.resource(id))
	uierrors.Deleted(w, "Deleted.")
}
