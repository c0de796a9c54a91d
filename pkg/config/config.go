// Package config loads render settings files. A settings file overrides the
// defaults a scene was composed with; fields left out keep those defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrUnknownExtension is returned for settings files that are neither YAML nor TOML
var ErrUnknownExtension = errors.New("unknown settings file extension")

// Settings are the user-facing render options. Zero values mean "not set".
type Settings struct {
	Scene      string `yaml:"scene" toml:"scene"`
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Samples    int    `yaml:"samples" toml:"samples"`
	MaxDepth   int    `yaml:"max_depth" toml:"max_depth"`
	Bands      int    `yaml:"bands" toml:"bands"`
	Workers    int    `yaml:"workers" toml:"workers"`
	Seed       int64  `yaml:"seed" toml:"seed"`
	Output     string `yaml:"output" toml:"output"`
	Format     string `yaml:"format" toml:"format"`
	TextureDir string `yaml:"texture_dir" toml:"texture_dir"`
}

// Load reads settings from path. The extension picks the codec: .yaml or
// .yml for YAML, .toml for TOML. Unknown keys are rejected. Paths inside the
// file may start with ~.
func Load(path string) (*Settings, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("while expanding settings path %q: %w", path, err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("while reading settings: %w", err)
	}

	settings, err := Parse(data, filepath.Ext(expanded))
	if err != nil {
		return nil, fmt.Errorf("while parsing %s: %w", expanded, err)
	}
	return settings, nil
}

// Parse decodes settings data in the format named by ext (".yaml", ".yml"
// or ".toml")
func Parse(data []byte, ext string) (*Settings, error) {
	settings := &Settings{}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("while decoding YAML: %w", err)
		}
	case ".toml":
		decoder := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := decoder.Decode(settings); err != nil {
			return nil, fmt.Errorf("while decoding TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w %q (want .yaml, .yml or .toml)", ErrUnknownExtension, ext)
	}

	if err := settings.expandPaths(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Settings) expandPaths() error {
	for _, path := range []*string{&s.Output, &s.TextureDir} {
		expanded, err := homedir.Expand(*path)
		if err != nil {
			return fmt.Errorf("while expanding %q: %w", *path, err)
		}
		*path = expanded
	}
	return nil
}

// Merge returns s with every field that is set in other replaced by other's
// value. Command-line flags are merged over a settings file this way.
func (s Settings) Merge(other Settings) Settings {
	mergeString(&s.Scene, other.Scene)
	mergeInt(&s.Width, other.Width)
	mergeInt(&s.Height, other.Height)
	mergeInt(&s.Samples, other.Samples)
	mergeInt(&s.MaxDepth, other.MaxDepth)
	mergeInt(&s.Bands, other.Bands)
	mergeInt(&s.Workers, other.Workers)
	if other.Seed != 0 {
		s.Seed = other.Seed
	}
	mergeString(&s.Output, other.Output)
	mergeString(&s.Format, other.Format)
	mergeString(&s.TextureDir, other.TextureDir)
	return s
}

// Apply overlays the set fields onto base. When only the width is given the
// height follows base's aspect ratio.
func (s Settings) Apply(base renderer.Config) renderer.Config {
	config := base
	if s.Width != 0 && s.Height == 0 {
		config.Height = int(float64(s.Width) / base.AspectRatio())
	}
	mergeInt(&config.Width, s.Width)
	mergeInt(&config.Height, s.Height)
	mergeInt(&config.SamplesPerPixel, s.Samples)
	mergeInt(&config.MaxDepth, s.MaxDepth)
	mergeInt(&config.Bands, s.Bands)
	mergeInt(&config.Workers, s.Workers)
	if s.Seed != 0 {
		config.Seed = s.Seed
	}
	return config
}

func mergeInt(dst *int, value int) {
	if value != 0 {
		*dst = value
	}
}

func mergeString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
