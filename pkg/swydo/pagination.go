package swydo

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
)

// Page is one batch of a paginated list answer: the records of the
// current window plus the total number of matching records across all
// pages.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// PageIterator lazily walks a paginated list operation. Pages are fetched
// on demand while the caller consumes items, one network call per page,
// advancing a skip cursor by the number of items each page returned.
//
// The iterator keeps fetching while it has not made its first call or the
// cursor is still below the last reported total. The total is taken from
// every page; if the remote result set changes mid-iteration, items may be
// skipped or repeated. That is best-effort by contract, not a bug.
//
// An iterator is forward-only and exclusively owned by a single consumer;
// it must not be shared across goroutines.
type PageIterator[T any] struct {
	ctx       context.Context
	invoker   Invoker
	operation string
	params    Params

	buffer   []T
	offset   int
	total    int
	firstRun bool
	err      error
}

// NewPageIterator creates an iterator over the named list operation.
// params is copied; the iterator injects the skip cursor into its own
// copy before each fetch.
func NewPageIterator[T any](ctx context.Context, invoker Invoker, operation string, params Params) *PageIterator[T] {
	if params == nil {
		params = Params{}
	}

	return &PageIterator[T]{
		ctx:       ctx,
		invoker:   invoker,
		operation: operation,
		params:    maps.Clone(params),
		firstRun:  true,
	}
}

// HasNext reports whether another item is available, fetching the next
// page when the answer requires it. After an error it returns false and
// the error is surfaced by Next, All, or ForEach.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil {
		return false
	}

	for len(it.buffer) == 0 && (it.firstRun || it.offset < it.total) {
		if err := it.fetch(); err != nil {
			it.err = err

			return false
		}
	}

	return len(it.buffer) > 0
}

// Next returns the next item. It returns ErrNoMoreItems once the sequence
// is exhausted, or the first fetch error encountered.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		if it.err != nil {
			return zero, it.err
		}

		return zero, ErrNoMoreItems
	}

	item := it.buffer[0]
	it.buffer = it.buffer[1:]

	return item, nil
}

// All drains the iterator and returns every remaining item.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if it.err != nil {
		return nil, it.err
	}

	return items, nil
}

// ForEach applies fn to every remaining item, stopping at the first error
// from fn or from a page fetch.
func (it *PageIterator[T]) ForEach(fn func(item T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}

	return it.err
}

// fetch pulls the next page and advances the cursor.
func (it *PageIterator[T]) fetch() error {
	it.firstRun = false
	it.params["skip"] = it.offset

	raw, err := it.invoker.Invoke(it.ctx, it.operation, it.params)
	if err != nil {
		return fmt.Errorf("fetching page of %s: %w", it.operation, err)
	}

	var page Page[T]

	err = json.Unmarshal(raw, &page)
	if err != nil {
		return fmt.Errorf("parsing page of %s: %w", it.operation, err)
	}

	it.buffer = append(it.buffer, page.Items...)
	it.offset += len(page.Items)
	it.total = page.Total

	// A page with no items cannot advance the cursor; treat the sequence
	// as exhausted rather than refetching the same window forever.
	if len(page.Items) == 0 {
		it.total = it.offset
	}

	return nil
}
