package scene

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// textureDir writes small stand-ins for the texture files scenes expect.
// Textures are sniffed by content, so PNG data behind a .jpg name loads.
func textureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.RGBA{R: 200, G: 180, B: 160, A: 255})
		img.Set(x, 1, color.RGBA{R: 20, G: 60, B: 140, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	for _, name := range []string{"earthmap.jpg", "moonmap.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644))
	}
	return dir
}

func tinyConfig() renderer.Config {
	return renderer.Config{
		Width:           8,
		Height:          6,
		SamplesPerPixel: 1,
		MaxDepth:        4,
		Bands:           3,
		Workers:         2,
		Seed:            5,
	}
}

func TestScenes_BuildAndRender(t *testing.T) {
	opts := Options{TextureDir: textureDir(t), Seed: 3}

	for _, entry := range All() {
		t.Run(entry.Name, func(t *testing.T) {
			description, err := entry.Build(opts)
			require.NoError(t, err)
			require.NotEmpty(t, description.Objects)
			assert.NoError(t, description.Defaults.Validate())

			scene, err := description.Build(tinyConfig())
			require.NoError(t, err)

			frame, err := renderer.NewRaytracer(scene, tinyConfig()).Render(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 8, frame.Width)
			assert.Equal(t, 6, frame.Height)
		})
	}
}

func TestScenes_MissingTextures(t *testing.T) {
	opts := Options{TextureDir: t.TempDir()}

	for _, name := range []string{"earth", "final", "moon"} {
		t.Run(name, func(t *testing.T) {
			entry, err := Lookup(name)
			require.NoError(t, err)

			_, err = entry.Build(opts)
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}

func TestRandomSpheres_Layout(t *testing.T) {
	first, err := RandomSpheres(Options{Seed: 9})
	require.NoError(t, err)
	again, err := RandomSpheres(Options{Seed: 9})
	require.NoError(t, err)
	other, err := RandomSpheres(Options{Seed: 10})
	require.NoError(t, err)

	assert.Equal(t, first.Objects, again.Objects)
	assert.NotEqual(t, first.Objects, other.Objects)

	// ground + up to 22x22 small spheres + 3 large ones
	assert.Greater(t, len(first.Objects), 4)
	assert.LessOrEqual(t, len(first.Objects), 1+22*22+3)
	assert.Equal(t, 0.1, first.Camera.Aperture)
	assert.Equal(t, 1.0, first.Camera.Time1)
}

func TestDescription_BuildUsesConfigAspect(t *testing.T) {
	description, err := CornellBox(Options{})
	require.NoError(t, err)

	config := tinyConfig()
	config.Width, config.Height = 20, 10
	scene, err := description.Build(config)
	require.NoError(t, err)

	// The viewport is twice as wide as it is tall
	sampler := core.NewSeededSampler(1)
	left := scene.Camera.GetRay(0, 0.5, sampler).Direction
	right := scene.Camera.GetRay(1, 0.5, sampler).Direction
	bottom := scene.Camera.GetRay(0.5, 0, sampler).Direction
	top := scene.Camera.GetRay(0.5, 1, sampler).Direction
	assert.InDelta(t, 2*top.Subtract(bottom).Length(), right.Subtract(left).Length(), 1e-9)
	assert.Equal(t, 1.0, description.Camera.AspectRatio)
}

func TestLookup(t *testing.T) {
	entry, err := Lookup("cornell")
	require.NoError(t, err)
	assert.Equal(t, "cornell", entry.Name)

	_, err = Lookup("teapot")
	assert.ErrorIs(t, err, ErrUnknownScene)
	assert.Contains(t, err.Error(), "random-spheres")

	names := map[string]bool{}
	for _, entry := range All() {
		assert.False(t, names[entry.Name], "duplicate scene %s", entry.Name)
		names[entry.Name] = true
		assert.NotEmpty(t, entry.Summary)
	}
}
