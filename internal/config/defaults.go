package config

import (
	_ "embed"
	"strings"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// DefaultMinesConfig returns the built-in configuration.
func DefaultMinesConfig() MinesConfig {
	return MinesConfig{
		Default:  DifficultyBeginner,
		TickRate: 60,
		Presets: map[Difficulty]Preset{
			DifficultyBeginner:     {Title: "Beginner", Rows: 9, Cols: 9, Mines: 10},
			DifficultyIntermediate: {Title: "Intermediate", Rows: 16, Cols: 16, Mines: 40},
			DifficultyExpert:       {Title: "Expert", Rows: 16, Cols: 30, Mines: 99},
		},
		Custom: Preset{Title: "Custom", Rows: 12, Cols: 12, Mines: 20},
	}
}

// applyDefaults fills fields a partial YAML file left out.
func (c *MinesConfig) applyDefaults() {
	def := DefaultMinesConfig()

	if c.Default == "" {
		c.Default = def.Default
	}
	if c.TickRate == 0 {
		c.TickRate = def.TickRate
	}
	if c.Presets == nil {
		c.Presets = make(map[Difficulty]Preset, len(def.Presets))
	}
	for d, p := range def.Presets {
		if _, ok := c.Presets[d]; !ok {
			c.Presets[d] = p
		}
	}
	if c.Custom == (Preset{}) {
		c.Custom = def.Custom
	}
	for d, p := range c.Presets {
		if p.Title == "" {
			p.Title = titleFor(d)
			c.Presets[d] = p
		}
	}
	if c.Custom.Title == "" {
		c.Custom.Title = def.Custom.Title
	}
}

func titleFor(d Difficulty) string {
	s := string(d)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
