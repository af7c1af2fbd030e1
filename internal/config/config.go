// Package config provides YAML-based board preset loading for the
// minesweeper front-end.
package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-mines/internal/games/mines/board"
)

var (
	// ErrInvalidPreset is returned when a preset cannot produce a board.
	ErrInvalidPreset = errors.New("config: invalid preset")
	// ErrUnknownPreset is returned for preset names that are not configured.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// MinesConfig contains all configuration for the minesweeper game.
type MinesConfig struct {
	Default  Difficulty            `yaml:"default"`
	TickRate int                   `yaml:"tick_rate"` // Steps per game-clock second
	Presets  map[Difficulty]Preset `yaml:"presets"`
	Custom   Preset                `yaml:"custom"`
}

// Preset describes one board size.
type Preset struct {
	Title string `yaml:"title"`
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Mines int    `yaml:"mines"`
}

// String returns a short description like "9x9, 10 mines".
func (p Preset) String() string {
	return fmt.Sprintf("%dx%d, %d mines", p.Rows, p.Cols, p.Mines)
}

// Preset returns the board preset for a difficulty.
func (c MinesConfig) Preset(d Difficulty) (Preset, error) {
	if d == DifficultyCustom {
		return c.Custom, nil
	}
	p, ok := c.Presets[d]
	if !ok {
		return Preset{}, fmt.Errorf("%w %q", ErrUnknownPreset, d)
	}
	return p, nil
}

// Validate checks every preset against the board rules and the default
// against the configured names.
func (c MinesConfig) Validate() error {
	names := make([]string, 0, len(c.Presets))
	for d := range c.Presets {
		names = append(names, string(d))
	}
	sort.Strings(names)

	for _, name := range names {
		p := c.Presets[Difficulty(name)]
		if err := board.Validate(p.Rows, p.Cols, p.Mines); err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidPreset, name, err)
		}
	}
	if err := board.Validate(c.Custom.Rows, c.Custom.Cols, c.Custom.Mines); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidPreset, DifficultyCustom, err)
	}
	if _, err := c.Preset(c.Default); err != nil {
		return fmt.Errorf("config: default: %w", err)
	}
	if c.TickRate < 1 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}
	return nil
}
