package life

import "strconv"

// PatternRandom seeds the board with independent fair coin flips.
const PatternRandom = "random"

// Config controls the Life simulation dimensions and initial seed.
type Config struct {
	Width  int
	Height int

	Seed    int64
	Pattern string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 125, Height: 69, Seed: 42, Pattern: PatternRandom}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that do not parse keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	return c
}
