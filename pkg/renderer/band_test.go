package renderer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBands(t *testing.T) {
	tests := []struct {
		name   string
		height int
		n      int
	}{
		{"even", 100, 4},
		{"uneven", 225, 16},
		{"single", 37, 1},
		{"one row each", 8, 8},
		{"more bands than rows", 3, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := SplitBands(tt.height, tt.n)
			require.Len(t, bands, tt.n)

			next := 0
			for i, band := range bands {
				assert.Equal(t, i, band.Index)
				assert.Equal(t, next, band.RowStart, "bands are contiguous")
				assert.GreaterOrEqual(t, band.Rows(), 0)
				next = band.RowEnd
			}
			assert.Equal(t, tt.height, next, "bands cover every row")
		})
	}
}

func TestRenderStats_SamplesPerSecond(t *testing.T) {
	assert.Equal(t, 0.0, RenderStats{TotalSamples: 100}.SamplesPerSecond())
	assert.InDelta(t, 50.0, RenderStats{TotalSamples: 100, Elapsed: 2 * time.Second}.SamplesPerSecond(), 1e-9)
}
