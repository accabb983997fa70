package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned by Lookup for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Lookup key
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"`
	Objects     int    `json:"objects"` // Number of objects in the scene
}

type registration struct {
	description string
	build       func() *Preset
}

var builtInScenes = map[string]registration{
	"default": {"Axis spheres above a rounded slab, lit by two spherical lights", NewDefaultScene},
	"spheres": {"Four large diffuse spheres in a tall frame", NewSpheresScene},
	"room":    {"Corner of a room with a ball, a box and a tube light", NewRoomScene},
	"lattice": {"Ball model of a Prussian blue analog crystal", NewLatticeScene},
	"empty":   {"No objects; every pixel shows the background", NewEmptyScene},
}

// Lookup builds the built-in scene registered under name
func Lookup(name string) (*Preset, error) {
	reg, ok := builtInScenes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return reg.build(), nil
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtInScenes))
	for name := range builtInScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes describes every built-in scene, sorted by display name.
// Each scene is built to count its objects.
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, name := range Names() {
		reg := builtInScenes[name]
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name + "-scene"),
			Description: reg.description,
			Objects:     reg.build().Scene.Len(),
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes
}

// titleCase converts a lookup-style string to title case
// e.g., "room-scene" -> "Room Scene"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
