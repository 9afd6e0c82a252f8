package cmsclient

import (
	"context"
	"errors"
)

// ErrNoData is returned when a write succeeded but the backend did not echo
// the stored document.
var ErrNoData = errors.New("backend returned no data")

// Find fetches one document. A 404 or a null data field is a soft failure:
// it returns nil, nil.
func Find[T any](ctx context.Context, c *Client, path string) (*T, error) {
	var v *T
	if err := c.Get(ctx, path, &v); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

// Send issues a POST or PUT and returns the echoed document, or nil when
// the envelope carried no data.
func Send[T any](ctx context.Context, c *Client, method, path string, body any) (*T, error) {
	var v *T
	if err := c.do(ctx, method, path, body, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// List fetches a collection. A 404 yields an empty, non-nil slice.
func List[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var v []T
	if err := c.Get(ctx, path, &v); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []T{}, nil
		}
		return nil, err
	}
	if v == nil {
		v = []T{}
	}
	return v, nil
}
