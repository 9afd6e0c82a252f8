// Package content holds the typed wrappers around the content backend's REST
// paths. Each subpackage covers one dashboard area; Resource covers the flat
// list/get/create/update/delete families they share.
package content

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dalemusser/campusadmin/internal/app/system/cmsclient"
)

// Resource is CRUD over one backend collection path, e.g. /about-us/statistics.
type Resource[T any] struct {
	c    *cmsclient.Client
	path string
}

// NewResource binds T to the collection at the given path segments.
func NewResource[T any](c *cmsclient.Client, segments ...string) *Resource[T] {
	return &Resource[T]{c: c, path: cmsclient.Path(segments...)}
}

// Path is the collection path, without a trailing slash.
func (r *Resource[T]) Path() string { return r.path }

func (r *Resource[T]) itemPath(id string) string {
	return r.path + cmsclient.Path(id)
}

// List returns every document. A missing collection is an empty list.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	items, err := cmsclient.List[T](ctx, r.c, r.path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.path, err)
	}
	return items, nil
}

// Get returns the document or nil when the backend does not have it.
func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	v, err := cmsclient.Find[T](ctx, r.c, r.itemPath(id))
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", r.path, id, err)
	}
	return v, nil
}

// Create posts v and returns the stored document. A create that is not
// echoed fails with cmsclient.ErrNoData, since the new id is unknown.
func (r *Resource[T]) Create(ctx context.Context, v T) (*T, error) {
	out, err := cmsclient.Send[T](ctx, r.c, http.MethodPost, r.path, v)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", r.path, err)
	}
	if out == nil {
		return nil, fmt.Errorf("create %s: %w", r.path, cmsclient.ErrNoData)
	}
	return out, nil
}

// Update replaces the document id with v. When the backend does not echo
// the document, v is returned as stored.
func (r *Resource[T]) Update(ctx context.Context, id string, v T) (*T, error) {
	out, err := cmsclient.Send[T](ctx, r.c, http.MethodPut, r.itemPath(id), v)
	if err != nil {
		return nil, fmt.Errorf("update %s/%s: %w", r.path, id, err)
	}
	if out == nil {
		return &v, nil
	}
	return out, nil
}

// Delete removes the document id.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	if err := r.c.Delete(ctx, r.itemPath(id), nil); err != nil {
		return fmt.Errorf("delete %s/%s: %w", r.path, id, err)
	}
	return nil
}
