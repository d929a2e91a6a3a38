package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOrNA(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", valueOrNA(""))
	assert.Equal(t, "value", valueOrNA("value"))
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	flat := flatten(map[string]interface{}{"operation": "getTeams"})
	require.Len(t, flat, 2)
	assert.Equal(t, "operation", flat[0])
	assert.Equal(t, "getTeams", flat[1])

	assert.Empty(t, flatten(nil))
}

func TestRemoveDataSourceUnknownProvider(t *testing.T) {
	t.Parallel()

	err := removeDataSource(context.Background(), nil, "team-1", "client-1", "bing")
	require.ErrorIs(t, err, ErrUnknownProvider)
}
