package renderer

import (
	"context"
	"time"

	"github.com/golang/glog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Band is a contiguous run of image rows [RowStart, RowEnd) rendered as one job
type Band struct {
	Index    int
	RowStart int
	RowEnd   int
}

// Rows returns the number of rows in the band
func (b Band) Rows() int {
	return b.RowEnd - b.RowStart
}

// SplitBands partitions height rows into n contiguous bands. Band i covers
// rows [height*i/n, height*(i+1)/n), so the bands are disjoint and together
// cover every row. Bands may be empty when n exceeds height.
func SplitBands(height, n int) []Band {
	bands := make([]Band, n)
	for i := range bands {
		bands[i] = Band{
			Index:    i,
			RowStart: height * i / n,
			RowEnd:   height * (i + 1) / n,
		}
	}
	return bands
}

// bandResult carries a finished band to the collector
type bandResult struct {
	band   Band
	pixels [][]core.Vec3
}

// BandRenderer renders bands of one scene. Everything it holds is read-only
// so any number of bands may render concurrently.
type BandRenderer struct {
	scene      *Scene
	integrator integrator.Integrator
	config     Config
}

// NewBandRenderer creates a band renderer for the scene
func NewBandRenderer(scene *Scene, integratorInst integrator.Integrator, config Config) *BandRenderer {
	return &BandRenderer{
		scene:      scene,
		integrator: integratorInst,
		config:     config,
	}
}

// RenderBand renders every pixel of band into a private buffer using its own
// random stream seeded from the config seed and the band index. It stops
// between rows when ctx is cancelled.
func (br *BandRenderer) RenderBand(ctx context.Context, band Band) ([][]core.Vec3, error) {
	tracer := otel.Tracer("go-pathtracer/renderer")
	var span trace.Span
	ctx, span = tracer.Start(ctx, "BandRenderer.RenderBand", trace.WithAttributes(
		attribute.Int("band", band.Index),
		attribute.Int("row_start", band.RowStart),
		attribute.Int("rows", band.Rows()),
	))
	defer span.End()

	start := time.Now()
	sampler := core.NewSeededSampler(br.config.Seed + int64(band.Index))
	width, height := br.config.Width, br.config.Height

	pixels := make([][]core.Vec3, band.Rows())
	for row := band.RowStart; row < band.RowEnd; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := make([]core.Vec3, width)
		// Row 0 is the top of the image while camera t=0 is the bottom
		y := height - 1 - row
		for x := 0; x < width; x++ {
			line[x] = integrator.SamplePixel(br.integrator, br.scene.Camera, br.scene.World, br.scene.Background, integrator.PixelRequest{
				X:       x,
				Y:       y,
				Width:   width,
				Height:  height,
				Samples: br.config.SamplesPerPixel,
			}, sampler)
		}
		pixels[row-band.RowStart] = line
	}

	glog.V(1).Infof("Rendered band %d (rows %d-%d) in %v", band.Index, band.RowStart, band.RowEnd, time.Since(start))
	return pixels, nil
}
