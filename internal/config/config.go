// Package config provides YAML-based configuration loading and speed
// presets for Keyfall.
package config

import (
	"fmt"

	"github.com/vovakirdan/keyfall/internal/core"
)

// KeyfallConfig contains all configuration for a Keyfall session.
type KeyfallConfig struct {
	Engine EngineConfig `yaml:"engine"`
	Render RenderConfig `yaml:"render"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// EngineConfig defines simulation timing.
type EngineConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second
}

// Render modes.
const (
	RenderBlocks = "blocks" // Every tile is a solid block in its color
	RenderASCII  = "ascii"  // Tiles use their ASCII glyphs, colored
)

// RenderConfig defines how the grid is drawn in the terminal.
type RenderConfig struct {
	Mode      string `yaml:"mode"`       // blocks or ascii
	CellWidth int    `yaml:"cell_width"` // Terminal columns per grid cell
	Glyph     string `yaml:"glyph"`      // Fill character in blocks mode
	ShowHelp  bool   `yaml:"show_help"`  // Key help line under the grid
}

// ThemeConfig holds the hex RGB color of each tile kind.
type ThemeConfig struct {
	Flux        string `yaml:"flux"`
	Unbreakable string `yaml:"unbreakable"`
	Stone       string `yaml:"stone"`
	Box         string `yaml:"box"`
	Key1        string `yaml:"key1"` // Key1 and every Lock1
	Key2        string `yaml:"key2"` // Key2 and every Lock2
	Player      string `yaml:"player"`
	HUD         string `yaml:"hud"`
}

// GlyphRune returns the first rune of the configured glyph, or a full block.
func (r RenderConfig) GlyphRune() rune {
	for _, g := range r.Glyph {
		return g
	}
	return '█'
}

// Validate checks the config for values the renderer or engine cannot use.
func (c KeyfallConfig) Validate() error {
	if c.Engine.TickRate <= 0 {
		return fmt.Errorf("config: engine.tick_rate must be positive, got %d", c.Engine.TickRate)
	}
	if c.Render.CellWidth <= 0 {
		return fmt.Errorf("config: render.cell_width must be positive, got %d", c.Render.CellWidth)
	}
	switch c.Render.Mode {
	case RenderBlocks, RenderASCII:
	default:
		return fmt.Errorf("config: render.mode must be %q or %q, got %q", RenderBlocks, RenderASCII, c.Render.Mode)
	}

	colors := []struct {
		name  string
		value string
	}{
		{"flux", c.Theme.Flux},
		{"unbreakable", c.Theme.Unbreakable},
		{"stone", c.Theme.Stone},
		{"box", c.Theme.Box},
		{"key1", c.Theme.Key1},
		{"key2", c.Theme.Key2},
		{"player", c.Theme.Player},
		{"hud", c.Theme.HUD},
	}
	for _, col := range colors {
		if !core.Color(col.value).Valid() {
			return fmt.Errorf("config: theme.%s is not a #rrggbb color: %q", col.name, col.value)
		}
	}
	return nil
}
