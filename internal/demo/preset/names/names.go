// Package names lists the scene presets by name. It has no dependencies so
// configuration can validate a preset without building one.
package names

import "errors"

// ErrUnknownPreset is returned for a name not in All.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset names, in menu and key (1..5) order.
const (
	Classic  = "classic"
	Orbit    = "orbit"
	TriLight = "tri-light"
	Sun      = "sun"
	Spot     = "spot"
)

// Default is the preset used when none is configured.
const Default = Classic

// All lists every preset in menu order.
var All = []string{Classic, Orbit, TriLight, Sun, Spot}

// Valid reports whether name is a known preset.
func Valid(name string) bool {
	for _, n := range All {
		if n == name {
			return true
		}
	}
	return false
}
