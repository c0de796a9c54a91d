// pathtracer renders the demo scenes with a Monte-Carlo path tracer.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

const defaultScene = "random-spheres"

var cmdRoot = &cobra.Command{
	Use:          "pathtracer",
	Short:        "Monte-Carlo path tracer",
	SilenceUsage: true,
}

var (
	settingsPath string
	flagSettings config.Settings
)

var cmdRender = &cobra.Command{
	Use:   "render",
	Short: "Render a scene to an image file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		settings := config.Settings{}
		if settingsPath != "" {
			loaded, err := config.Load(settingsPath)
			if err != nil {
				return err
			}
			settings = *loaded
		}

		if err := render(ctx, settings.Merge(flagSettings), cmd.OutOrStdout()); err != nil {
			glog.Errorf("Render failed: %v", err)
			return err
		}
		return nil
	},
}

func init() {
	flags := cmdRender.Flags()
	flags.StringVar(&settingsPath, "config", "", "YAML or TOML settings file; flags override its values")
	flags.StringVar(&flagSettings.Scene, "scene", "", "Scene to render (see the scenes command)")
	flags.StringVar(&flagSettings.Output, "out", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	flags.StringVar(&flagSettings.Format, "format", "", "Output format: "+strings.Join(renderer.Formats, ", ")+" (default from --out, else png)")
	flags.IntVar(&flagSettings.Width, "width", 0, "Image width; height follows the scene's aspect ratio unless --height is set")
	flags.IntVar(&flagSettings.Height, "height", 0, "Image height")
	flags.IntVar(&flagSettings.Samples, "samples", 0, "Samples per pixel")
	flags.IntVar(&flagSettings.MaxDepth, "depth", 0, "Maximum bounces per path")
	flags.IntVar(&flagSettings.Bands, "bands", 0, "Number of horizontal bands the image is split into")
	flags.IntVar(&flagSettings.Workers, "workers", 0, "Bands rendered concurrently")
	flags.Int64Var(&flagSettings.Seed, "seed", 0, "Random seed for scene layout and sampling")
	flags.StringVar(&flagSettings.TextureDir, "textures", "", "Directory holding texture images")
}

var cmdScenes = &cobra.Command{
	Use:   "scenes",
	Short: "List the scenes that can be rendered",
	RunE: func(cmd *cobra.Command, args []string) error {
		listScenes(cmd.OutOrStdout())
		return nil
	},
}

func listScenes(w io.Writer) {
	for _, entry := range scene.All() {
		fmt.Fprintf(w, "%-16s %s\n", entry.Name, entry.Summary)
	}
}

// render builds the chosen scene, renders it and writes the image
func render(ctx context.Context, settings config.Settings, stdout io.Writer) error {
	if settings.Scene == "" {
		settings.Scene = defaultScene
	}
	if settings.Format == "" {
		settings.Format = strings.TrimPrefix(filepath.Ext(settings.Output), ".")
	}
	if settings.Format == "" {
		settings.Format = "png"
	}
	if settings.Output == "" {
		timestamp := time.Now().Format("20060102_150405")
		settings.Output = filepath.Join("output", settings.Scene, fmt.Sprintf("render_%s.%s", timestamp, settings.Format))
	}

	entry, err := scene.Lookup(settings.Scene)
	if err != nil {
		return err
	}

	description, err := entry.Build(scene.Options{
		TextureDir: settings.TextureDir,
		Seed:       settings.Apply(renderer.DefaultConfig()).Seed,
	})
	if err != nil {
		return fmt.Errorf("while composing scene %s: %w", entry.Name, err)
	}

	renderConfig := settings.Apply(description.Defaults)
	built, err := description.Build(renderConfig)
	if err != nil {
		return err
	}

	frame, err := renderer.NewRaytracer(built, renderConfig).Render(ctx)
	if err != nil {
		return fmt.Errorf("while rendering %s: %w", entry.Name, err)
	}

	size, err := writeImage(settings.Output, frame, settings.Format)
	if err != nil {
		return err
	}

	stats := frame.Stats
	fmt.Fprintf(stdout, "Rendered %s at %dx%d: %s samples in %v (%s)\n",
		entry.Name, frame.Width, frame.Height,
		humanize.Comma(int64(stats.TotalSamples)),
		stats.Elapsed.Round(time.Millisecond),
		humanize.SIWithDigits(stats.SamplesPerSecond(), 1, "samples/s"))
	fmt.Fprintf(stdout, "Saved %s (%s)\n", settings.Output, humanize.Bytes(uint64(size)))
	return nil
}

// writeImage encodes frame to path, creating parent directories, and
// returns the number of bytes written
func writeImage(path string, frame *renderer.Frame, format string) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("while creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("while creating output file: %w", err)
	}

	if err := renderer.Encode(file, frame.ToImage(), format); err != nil {
		file.Close()
		return 0, fmt.Errorf("while encoding %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("while closing %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("while checking %s: %w", path, err)
	}
	return info.Size(), nil
}

func main() {
	glog.CopyStandardLogTo("INFO")
	defer glog.Flush()

	cmdRoot.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	cmdRoot.AddCommand(cmdRender, cmdScenes)

	if err := cmdRoot.Execute(); err != nil {
		glog.Flush()
		os.Exit(1)
	}
}
