package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ErrIncompleteFrame is returned when fewer bands than expected reach the collector
var ErrIncompleteFrame = errors.New("frame is missing bands")

// Raytracer renders a frozen scene into a Frame
type Raytracer struct {
	scene      *Scene
	config     Config
	integrator integrator.Integrator
}

// NewRaytracer creates a raytracer using path tracing limited to config.MaxDepth
func NewRaytracer(scene *Scene, config Config) *Raytracer {
	return &Raytracer{
		scene:      scene,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Render splits the image into bands, renders them on at most
// config.Workers goroutines and assembles the results. A failing band
// (including a panic) cancels the rest and its error is returned; no partial
// frame is ever returned.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, fmt.Errorf("while validating render config: %w", err)
	}

	tracer := otel.Tracer("go-pathtracer/renderer")
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Raytracer.Render", trace.WithAttributes(
		attribute.Int("width", rt.config.Width),
		attribute.Int("height", rt.config.Height),
		attribute.Int("samples_per_pixel", rt.config.SamplesPerPixel),
		attribute.Int("bands", rt.config.Bands),
	))
	defer span.End()

	start := time.Now()
	glog.Infof("Rendering %dx%d at %d samples per pixel in %d bands on %d workers",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, rt.config.Bands, rt.config.Workers)

	bands := SplitBands(rt.config.Height, rt.config.Bands)
	bandRenderer := NewBandRenderer(rt.scene, rt.integrator, rt.config)
	frame := NewFrame(rt.config.Width, rt.config.Height)

	results := make(chan bandResult)
	collected := make(chan int, 1)
	go func() {
		count := 0
		for result := range results {
			copy(frame.Pixels[result.band.RowStart:result.band.RowEnd], result.pixels)
			count++
		}
		collected <- count
	}()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(rt.config.Workers)

	for _, band := range bands {
		band := band
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("while rendering band %d: panic: %v", band.Index, r)
				}
			}()

			pixels, err := bandRenderer.RenderBand(egCtx, band)
			if err != nil {
				return fmt.Errorf("while rendering band %d: %w", band.Index, err)
			}

			select {
			case results <- bandResult{band: band, pixels: pixels}:
				return nil
			case <-egCtx.Done():
				return egCtx.Err()
			}
		})
	}

	err := eg.Wait()
	close(results)
	count := <-collected

	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("while waiting for bands: %w", err)
	}
	if count != len(bands) {
		return nil, fmt.Errorf("%w: received %d of %d", ErrIncompleteFrame, count, len(bands))
	}

	frame.Stats = RenderStats{
		TotalPixels:  rt.config.Width * rt.config.Height,
		TotalSamples: rt.config.Width * rt.config.Height * rt.config.SamplesPerPixel,
		Bands:        len(bands),
		Elapsed:      time.Since(start),
	}
	glog.Infof("Rendered %d pixels in %v", frame.Stats.TotalPixels, frame.Stats.Elapsed)

	return frame, nil
}
