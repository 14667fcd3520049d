package pipeline

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEmbedder(t *testing.T) {
	ctx := context.Background()
	e := NewHashEmbedder(64)

	assert.Equal(t, 64, e.Dimension())

	a, err := e.Embed(ctx, "The Total Amount")
	require.NoError(t, err)
	require.Len(t, a, 64)

	// Deterministic and case-insensitive.
	b, err := e.Embed(ctx, "the total amount")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	var norm float64
	for _, v := range a {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-5)
}

func TestHashEmbedderDefaultDimension(t *testing.T) {
	assert.Equal(t, 256, NewHashEmbedder(0).Dimension())
	assert.Equal(t, 256, NewHashEmbedder(-3).Dimension())
}

func TestHashEmbedderEmptyText(t *testing.T) {
	vec, err := NewHashEmbedder(16).Embed(context.Background(), "")
	require.NoError(t, err)
	for _, v := range vec {
		assert.Zero(t, v)
	}
}

func TestHashEmbedderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHashEmbedder(16).Embed(ctx, "text")
	assert.ErrorIs(t, err, context.Canceled)
}
