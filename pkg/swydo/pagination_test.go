package swydo_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mayple/swydo/pkg/swydo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageInvoker serves pages of a fixed item list keyed by the skip cursor.
type pageInvoker struct {
	items    []string
	pageSize int

	calls []swydo.Params
}

func (inv *pageInvoker) Invoke(_ context.Context, _ string, params swydo.Params) (json.RawMessage, error) {
	copied := swydo.Params{}
	for k, v := range params {
		copied[k] = v
	}

	inv.calls = append(inv.calls, copied)

	skip, _ := params["skip"].(int)
	if skip > len(inv.items) {
		skip = len(inv.items)
	}

	end := skip + inv.pageSize
	if end > len(inv.items) {
		end = len(inv.items)
	}

	page := swydo.Page[string]{
		Items: inv.items[skip:end],
		Total: len(inv.items),
	}
	if page.Items == nil {
		page.Items = []string{}
	}

	return json.Marshal(page)
}

// failingInvoker fails every call with a fixed error.
type failingInvoker struct {
	err error
}

func (inv *failingInvoker) Invoke(context.Context, string, swydo.Params) (json.RawMessage, error) {
	return nil, inv.err
}

func TestPageIteratorAll(t *testing.T) {
	t.Parallel()
	t.Run("yields exactly total items across pages", func(t *testing.T) {
		t.Parallel()

		inv := &pageInvoker{
			items:    []string{"a", "b", "c", "d", "e", "f", "g"},
			pageSize: 3,
		}

		it := swydo.NewPageIterator[string](context.Background(), inv, "getTeams", nil)

		items, err := it.All()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, items)
	})

	t.Run("advances the skip cursor by items received", func(t *testing.T) {
		t.Parallel()

		inv := &pageInvoker{
			items:    []string{"a", "b", "c", "d", "e", "f", "g"},
			pageSize: 3,
		}

		it := swydo.NewPageIterator[string](context.Background(), inv, "getTeams", nil)

		_, err := it.All()
		require.NoError(t, err)

		require.Len(t, inv.calls, 3)
		assert.Equal(t, 0, inv.calls[0]["skip"])
		assert.Equal(t, 3, inv.calls[1]["skip"])
		assert.Equal(t, 6, inv.calls[2]["skip"])
	})

	t.Run("empty result set makes exactly one call", func(t *testing.T) {
		t.Parallel()

		inv := &pageInvoker{items: nil, pageSize: 3}

		it := swydo.NewPageIterator[string](context.Background(), inv, "getTeams", nil)

		items, err := it.All()
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Len(t, inv.calls, 1)
	})

	t.Run("single page smaller than total window", func(t *testing.T) {
		t.Parallel()

		inv := &pageInvoker{items: []string{"only"}, pageSize: 10}

		it := swydo.NewPageIterator[string](context.Background(), inv, "getTeams", nil)

		items, err := it.All()
		require.NoError(t, err)
		assert.Equal(t, []string{"only"}, items)
		assert.Len(t, inv.calls, 1)
	})
}

func TestPageIteratorNext(t *testing.T) {
	t.Parallel()
	t.Run("returns ErrNoMoreItems when exhausted", func(t *testing.T) {
		t.Parallel()

		inv := &pageInvoker{items: []string{"a"}, pageSize: 3}

		it := swydo.NewPageIterator[string](context.Background(), inv, "getTeams", nil)

		item, err := it.Next()
		require.NoError(t, err)
		assert.Equal(t, "a", item)

		_, err = it.Next()
		require.ErrorIs(t, err, swydo.ErrNoMoreItems)
	})

	t.Run("surfaces the fetch error", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("boom")
		it := swydo.NewPageIterator[string](context.Background(), &failingInvoker{err: wantErr}, "getTeams", nil)

		assert.False(t, it.HasNext())

		_, err := it.Next()
		require.ErrorIs(t, err, wantErr)
	})

	t.Run("does not mutate the caller's params", func(t *testing.T) {
		t.Parallel()

		inv := &pageInvoker{items: []string{"a"}, pageSize: 3}
		params := swydo.Params{"teamId": "team-1"}

		it := swydo.NewPageIterator[string](context.Background(), inv, "getTeamUsers", params)

		_, err := it.All()
		require.NoError(t, err)

		_, hasSkip := params["skip"]
		assert.False(t, hasSkip)
		assert.Equal(t, "team-1", inv.calls[0]["teamId"])
	})
}

func TestPageIteratorForEach(t *testing.T) {
	t.Parallel()
	t.Run("visits every item in order", func(t *testing.T) {
		t.Parallel()

		inv := &pageInvoker{items: []string{"a", "b", "c"}, pageSize: 2}

		it := swydo.NewPageIterator[string](context.Background(), inv, "getTeams", nil)

		var visited []string
		err := it.ForEach(func(item string) error {
			visited = append(visited, item)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, visited)
	})

	t.Run("stops at the first callback error", func(t *testing.T) {
		t.Parallel()

		inv := &pageInvoker{items: []string{"a", "b", "c"}, pageSize: 2}

		it := swydo.NewPageIterator[string](context.Background(), inv, "getTeams", nil)

		wantErr := errors.New("stop")
		count := 0
		err := it.ForEach(func(string) error {
			count++
			return wantErr
		})
		require.ErrorIs(t, err, wantErr)
		assert.Equal(t, 1, count)
	})
}
