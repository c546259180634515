package geometry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listslider/internal/domain"
)

func TestRecompute(t *testing.T) {
	g, err := Recompute(900, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 900.0, g.ViewportWidth)
	assert.InDelta(t, 300.0, g.SlideWidth, 1e-9)
	assert.InDelta(t, 1500.0, g.BoardWidth, 1e-9)
}

func TestRecomputeSlideWidthFillsViewport(t *testing.T) {
	for _, width := range []float64{0, 1, 97, 320.5, 1024, 1919} {
		for items := 1; items <= 12; items++ {
			for perViewport := 1; perViewport <= items; perViewport++ {
				g, err := Recompute(width, items, perViewport)
				require.NoError(t, err)
				assert.InDelta(t, width, g.SlideWidth*float64(perViewport), 1e-9)
				assert.InDelta(t, g.SlideWidth*float64(items), g.BoardWidth, 1e-9)
			}
		}
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	a, err := Recompute(777, 7, 2)
	require.NoError(t, err)
	b, err := Recompute(777, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRecomputeRejectsZeroItemsPerViewport(t *testing.T) {
	_, err := Recompute(800, 4, 0)
	require.Error(t, err)

	var cfgErr *domain.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "items_per_viewport", cfgErr.Option)
}

func TestOffset(t *testing.T) {
	g, err := Recompute(400, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, g.Offset(0))
	assert.InDelta(t, -600.0, g.Offset(3), 1e-9)
}
