package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"tableflip.dev/fitlog/pkg/record"
)

// DateFilter narrows a list to one ISO date. NoFilter lists everything.
type DateFilter string

const NoFilter DateFilter = ""

func (f DateFilter) query() url.Values {
	if f == "" {
		return nil
	}
	return url.Values{"date_filter": {string(f)}}
}

// Resource is the CRUD surface of one collection of T.
type Resource[T any] struct {
	c   *Client
	col Collection
}

// Collection returns the path this resource talks to.
func (r Resource[T]) Collection() Collection { return r.col }

// List returns the records of the collection, optionally filtered to a date.
// A null body is an empty list.
func (r Resource[T]) List(ctx context.Context, filter DateFilter) ([]T, error) {
	if filter != NoFilter {
		if _, err := record.ParseDate(string(filter)); err != nil {
			return nil, fmt.Errorf("api: list %s: %w", r.col, err)
		}
	}
	var out []T
	if err := r.c.do(ctx, http.MethodGet, string(r.col), filter.query(), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Get fetches one record by id.
func (r Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	if id == "" {
		return out, fmt.Errorf("api: get from %s: empty id", r.col)
	}
	err := r.c.do(ctx, http.MethodGet, r.col.item(id), nil, nil, &out)
	return out, err
}

// Create validates v and POSTs it. Invalid records never reach the network.
func (r Resource[T]) Create(ctx context.Context, v T) (T, error) {
	var out T
	if err := record.Validate(&v); err != nil {
		return out, err
	}
	err := r.c.do(ctx, http.MethodPost, string(r.col), nil, &v, &out)
	return out, err
}

// Update validates v and PUTs it under id.
func (r Resource[T]) Update(ctx context.Context, id string, v T) (T, error) {
	var out T
	if id == "" {
		return out, fmt.Errorf("api: update in %s: empty id", r.col)
	}
	if err := record.Validate(&v); err != nil {
		return out, err
	}
	err := r.c.do(ctx, http.MethodPut, r.col.item(id), nil, &v, &out)
	return out, err
}

// Delete removes id from the collection.
func (r Resource[T]) Delete(ctx context.Context, id string) error {
	return r.c.Delete(ctx, r.col, id)
}
