package ui

import (
	"strings"

	"torus-life/pkg/core"
)

// StatusLine summarizes a sim for the HUD, e.g. "life  gen 12  pop 40".
func StatusLine(name string, snap core.ParameterSnapshot, paused bool) string {
	parts := []string{name}
	if p, ok := snap.Lookup("generation"); ok {
		parts = append(parts, "gen "+p.Value)
	}
	if p, ok := snap.Lookup("population"); ok {
		parts = append(parts, "pop "+p.Value)
	}
	if paused {
		parts = append(parts, "[paused]")
	}
	return strings.Join(parts, "  ")
}
