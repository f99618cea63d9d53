// Package store keeps users, portfolios and goals in memory, and provides a
// cache for computed results.
//
// Every store is safe for concurrent use.
package store

import (
	"errors"
	"time"

	"github.com/etnz/finpredictor/date"
	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Clock returns the current time. Stores use time.Now unless told otherwise.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c()
}

func (c Clock) today() date.Date {
	return date.New(c.now().Date())
}

// newID returns a random identifier.
func newID() string { return uuid.NewString() }

// ordered is a map that remembers insertion order.
type ordered[T any] struct {
	keys   []string
	values map[string]T
}

func (o *ordered[T]) put(key string, v T) {
	if o.values == nil {
		o.values = make(map[string]T)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

func (o *ordered[T]) get(key string) (T, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *ordered[T]) delete(key string) bool {
	if _, ok := o.values[key]; !ok {
		return false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// list returns a copy of the values in insertion order.
func (o *ordered[T]) list() []T {
	out := make([]T, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, o.values[k])
	}
	return out
}
