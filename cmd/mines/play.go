package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a board",
	Long: `Start playing the given board preset, or the configured default.

Controls:
  Arrows/WASD/hjkl  - Move cursor
  Space/Enter       - Reveal
  F/X               - Flag
  Left/Right click  - Reveal/Flag
  P                 - Pause
  R                 - New board
  Q/Ctrl+C          - Quit

Presets:
  beginner      (b, easy)    9x9, 10 mines
  intermediate  (i, normal)  16x16, 40 mines
  expert        (e, hard)    16x30, 99 mines
  custom        (c)          from mines.yaml

Examples:
  mines play
  mines play expert
  mines play b --seed 7
  mines play custom --config ./my-mines.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	d := config.DefaultMinesConfig().Default
	mcfg, err := loadConfig()
	if err != nil {
		// The game renders the configuration error itself.
		logger.Warn("invalid configuration", "err", err)
	} else {
		d = mcfg.Default
	}

	if len(args) == 1 {
		d, err = config.ParseDifficulty(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'mines list' to see available boards.")
			os.Exit(1)
		}
	}

	game, err := registry.Create(string(d))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// The game still works without history
		store = nil
	}

	_, runErr := tui.Run(game, store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed, // 0 lets the model seed from time
	}
}
