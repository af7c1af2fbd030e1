// mines is a terminal minesweeper.
//
// Usage:
//
//	mines list               - List board presets
//	mines play [preset]      - Play a board (default from config)
//	mines menu               - Pick boards interactively
//	mines scores <preset>    - Show best times for a board
//
// Global flags:
//
//	--fps <rate>       - Steps per second (default: 60)
//	--seed <value>     - RNG seed for reproducible boards (0 = time)
//	--db <path>        - Result database (default: ~/.mines/results.db)
//	--config <path>    - Custom mines.yaml
//	--log-file <path>  - Write logs to a file
//	--debug            - Log at debug level
//
// MINES_DB and MINES_CONFIG, from the environment or a .env file, replace
// the defaults of --db and --config.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/games/mines"
)

const defaultDBPath = "~/.mines/results.db"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool

	logger  *log.Logger
	logFile *os.File
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not read .env: %v\n", err)
	}

	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper for the terminal, played with the keyboard or the mouse.

Available commands:
  list     - Show the board presets
  play     - Play a board directly
  menu     - Interactive board picker
  scores   - View best times

Examples:
  mines list
  mines play expert
  mines play --seed 42
  mines menu --config ./mines.yaml
  mines scores beginner`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to results database (env MINES_DB)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom mines.yaml (env MINES_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup applies environment defaults and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if v := os.Getenv("MINES_DB"); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv("MINES_CONFIG"); v != "" && !flags.Changed("config") {
		flagConfig = v
	}
	if flagFPS < 1 {
		return fmt.Errorf("--fps must be at least 1, got %d", flagFPS)
	}

	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mines",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	mines.SetConfigPath(flagConfig)
	logger.Debug("starting", "command", cmd.Name(), "config", flagConfig, "db", flagDBPath)
	return nil
}

// loadConfig reads the board presets and pins them for every new game.
func loadConfig() (config.MinesConfig, error) {
	mcfg, err := config.LoadMines(flagConfig)
	if err != nil {
		return mcfg, err
	}
	mines.SetConfig(&mcfg)
	return mcfg, nil
}
