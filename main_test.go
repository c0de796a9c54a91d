package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func quickSettings(t *testing.T, sceneName, output string) config.Settings {
	t.Helper()
	return config.Settings{
		Scene:    sceneName,
		Width:    16,
		Height:   9,
		Samples:  2,
		MaxDepth: 4,
		Bands:    3,
		Workers:  2,
		Seed:     7,
		Output:   output,
	}
}

func TestRender_WritesPNG(t *testing.T) {
	output := filepath.Join(t.TempDir(), "nested", "two.png")
	var stdout bytes.Buffer

	require.NoError(t, render(context.Background(), quickSettings(t, "two-spheres", output), &stdout))

	file, err := os.Open(output)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 9, img.Bounds().Dy())

	assert.Contains(t, stdout.String(), "Rendered two-spheres at 16x9")
	assert.Contains(t, stdout.String(), "288 samples")
	assert.Contains(t, stdout.String(), output)
}

func TestRender_FormatFromExtension(t *testing.T) {
	output := filepath.Join(t.TempDir(), "cornell.ppm")

	require.NoError(t, render(context.Background(), quickSettings(t, "cornell", output), &bytes.Buffer{}))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "P3\n16 9\n255\n"), "got header %q", string(data[:12]))
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		settings config.Settings
	}{
		{"unknown scene", quickSettings(t, "teapot", filepath.Join(dir, "a.png"))},
		{"unknown format", quickSettings(t, "two-spheres", filepath.Join(dir, "b.gif"))},
		{"missing textures", func() config.Settings {
			s := quickSettings(t, "earth", filepath.Join(dir, "c.png"))
			s.TextureDir = filepath.Join(dir, "nowhere")
			return s
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, render(context.Background(), tt.settings, &bytes.Buffer{}))
		})
	}

	t.Run("unknown scene is reported", func(t *testing.T) {
		err := render(context.Background(), quickSettings(t, "teapot", filepath.Join(dir, "d.png")), &bytes.Buffer{})
		assert.ErrorIs(t, err, scene.ErrUnknownScene)
	})
}

func TestRender_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	output := filepath.Join(t.TempDir(), "never.png")
	err := render(ctx, quickSettings(t, "two-spheres", output), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(output)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestListScenes(t *testing.T) {
	var out bytes.Buffer
	listScenes(&out)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(scene.All()))
	assert.True(t, strings.HasPrefix(lines[0], "random-spheres"))
}
