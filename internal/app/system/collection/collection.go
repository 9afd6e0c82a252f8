// Package collection edits ordered lists of embedded sub-entities.
//
// Every function returns a fresh slice and leaves its input untouched, so a
// draft can be reduced step by step without aliasing earlier states. Indices
// are positional: callers address elements by where they sit in the list,
// not by identity.
package collection

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an index does not address an element.
var ErrIndexOutOfRange = errors.New("index out of range")

// Element is satisfied by pointers to editable sub-entities. Init resets the
// value to its defaults with the given 1-based order; Set parses a form value
// into the field named by its JSON key.
type Element[T any] interface {
	*T
	Init(order int)
	Set(field, value string) error
}

func checkIndex(n, i int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, n)
	}
	return nil
}

// Add appends a new element with default values and order len(list)+1.
func Add[T any, P Element[T]](list []T) []T {
	var v T
	P(&v).Init(len(list) + 1)
	return Append(list, v)
}

// Update sets one field of the element at i. Only that field of that
// element changes.
func Update[T any, P Element[T]](list []T, i int, field, value string) ([]T, error) {
	if err := checkIndex(len(list), i); err != nil {
		return nil, err
	}
	out := clone(list)
	if err := P(&out[i]).Set(field, value); err != nil {
		return nil, err
	}
	return out, nil
}

// Remove drops the element at i. It is an alias of Delete kept for symmetry
// with Add and Update.
func Remove[T any](list []T, i int) ([]T, error) {
	return Delete(list, i)
}

// Append returns a copy of list with v appended.
func Append[T any](list []T, v T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, v)
}

// Replace returns a copy of list with the element at i replaced by v.
func Replace[T any](list []T, i int, v T) ([]T, error) {
	if err := checkIndex(len(list), i); err != nil {
		return nil, err
	}
	out := clone(list)
	out[i] = v
	return out, nil
}

// Delete returns a copy of list without the element at i. The relative order
// of the remaining elements is preserved and their fields are not touched.
func Delete[T any](list []T, i int) ([]T, error) {
	if err := checkIndex(len(list), i); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...), nil
}

// Edit applies fn to a copy of the element at i. It is used to reach into a
// nested collection owned by that element.
func Edit[T any](list []T, i int, fn func(*T) error) ([]T, error) {
	if err := checkIndex(len(list), i); err != nil {
		return nil, err
	}
	out := clone(list)
	if err := fn(&out[i]); err != nil {
		return nil, err
	}
	return out, nil
}

func clone[T any](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	return out
}
