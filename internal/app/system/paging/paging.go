// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultLimit is the page size when the request does not ask for one.
const DefaultLimit = 25

// MaxLimit caps the page size a client may request.
const MaxLimit = 100

// Params are the paging inputs of a list request.
type Params struct {
	Before string // cursor of the first row of the current page
	After  string // cursor of the last row of the current page
	Limit  int
}

// ParseParams reads ?before=, ?after= and ?limit= from the request.
func ParseParams(r *http.Request) Params {
	return Params{
		Before: query.Get(r, "before"),
		After:  query.Get(r, "after"),
		Limit:  parseLimit(query.Get(r, "limit")),
	}
}

func parseLimit(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return DefaultLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// Direction indicates the pagination direction.
type Direction int

const (
	Forward  Direction = iota // ascending, "gt" cursor
	Backward                  // descending, "lt" cursor
)

// Keyset is a decoded paging request ready to be applied to a Mongo query.
type Keyset struct {
	Direction Direction
	SortOrder int // 1 or -1
	Cursor    *wafflemongo.Cursor
	Limit     int
}

// NewKeyset decodes the cursor in p. Before takes precedence over After.
// An undecodable cursor is treated as absent.
func NewKeyset(p Params) Keyset {
	k := Keyset{Direction: Forward, SortOrder: 1, Limit: p.Limit}
	if k.Limit <= 0 {
		k.Limit = DefaultLimit
	}

	cur := p.After
	if p.Before != "" {
		k.Direction = Backward
		k.SortOrder = -1
		cur = p.Before
	}
	if cur != "" {
		if c, ok := wafflemongo.DecodeCursor(cur); ok {
			k.Cursor = &c
		}
	}
	return k
}

// Window returns the filter clause selecting rows past the cursor, or nil.
func (k Keyset) Window(sortField string) bson.M {
	if k.Cursor == nil {
		return nil
	}
	dir := "gt"
	if k.Direction == Backward {
		dir = "lt"
	}
	return wafflemongo.KeysetWindow(sortField, dir, k.Cursor.CI, k.Cursor.ID)
}

// FindOptions sorts on (sortField, _id) and fetches one row more than the
// page size so Finish can tell whether another page exists.
func (k Keyset) FindOptions(sortField string) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{
			{Key: sortField, Value: k.SortOrder},
			{Key: "_id", Value: k.SortOrder},
		}).
		SetLimit(int64(k.Limit + 1))
}

// Page describes where a fetched page sits in the full list.
type Page struct {
	HasPrev bool   `json:"hasPrev"`
	HasNext bool   `json:"hasNext"`
	Prev    string `json:"prev,omitempty"`
	Next    string `json:"next,omitempty"`
}

// Finish trims the look-ahead row, restores ascending order when paging
// backwards, and builds the cursors of the page boundaries.
func Finish[T any](rows *[]T, k Keyset, keyFn func(T) string, idFn func(T) primitive.ObjectID) Page {
	var pg Page
	if k.Direction == Backward {
		if len(*rows) > k.Limit {
			*rows = (*rows)[:k.Limit]
			pg.HasPrev = true
		}
		Reverse(*rows)
		pg.HasNext = true
	} else {
		if len(*rows) > k.Limit {
			*rows = (*rows)[:k.Limit]
			pg.HasNext = true
		}
		pg.HasPrev = k.Cursor != nil
	}

	if n := len(*rows); n > 0 {
		first, last := (*rows)[0], (*rows)[n-1]
		pg.Prev = wafflemongo.EncodeCursor(keyFn(first), idFn(first))
		pg.Next = wafflemongo.EncodeCursor(keyFn(last), idFn(last))
	}
	return pg
}

// Reverse reverses a slice in place.
func Reverse[T any](rows []T) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
