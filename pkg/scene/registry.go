package scene

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScene is returned by Lookup for names with no builder
var ErrUnknownScene = errors.New("unknown scene")

// Builder composes a scene description
type Builder func(opts Options) (*Description, error)

// Entry is a named scene builder
type Entry struct {
	Name    string
	Summary string
	Build   Builder
}

var registry = []Entry{
	{"random-spheres", "ground of small spheres, some in motion, around three large ones", RandomSpheres},
	{"two-spheres", "two checkered spheres touching at the origin", TwoSpheres},
	{"two-perlin", "marble sphere on a marble ground", TwoPerlinSpheres},
	{"earth", "image textured globe (earthmap.jpg)", Earth},
	{"simple-light", "marble spheres lit by a rectangle light", SimpleLight},
	{"cornell", "Cornell box with two rotated blocks", CornellBox},
	{"cornell-smoke", "Cornell box with blocks of smoke and fog", CornellSmoke},
	{"final", "every feature at once (earthmap.jpg, moonmap.jpg)", FinalScene},
	{"moon", "glowing textured moon over a glass planet (moonmap.jpg)", Moon},
	{"textures", "procedural image textures under a sky gradient", ProceduralTextures},
}

// All returns every registered scene in display order
func All() []Entry {
	entries := make([]Entry, len(registry))
	copy(entries, registry)
	return entries
}

// Lookup finds a scene builder by name
func Lookup(name string) (Entry, error) {
	for _, entry := range registry {
		if entry.Name == name {
			return entry, nil
		}
	}

	names := make([]string, len(registry))
	for i, entry := range registry {
		names[i] = entry.Name
	}
	return Entry{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownScene, name, strings.Join(names, ", "))
}
