package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the board presets",
	Long:  `Shows every board preset with its size and mine count.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	mcfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Totals are optional; a missing database just hides the column.
	played := map[string]*storage.GameStats{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if all, err := store.AllStats(); err == nil {
			played = all
		}
		store.Close()
	}

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, d := range config.Difficulties() {
		if len(d) > maxIDLen {
			maxIDLen = len(d)
		}
	}

	fmt.Printf("  %-*s  %-14s %-18s %s\n", maxIDLen, "ID", "Title", "Board", "Played")
	fmt.Printf("  %-*s  %-14s %-18s %s\n", maxIDLen, "--", "-----", "-----", "------")

	for _, d := range config.Difficulties() {
		if !registry.Exists(string(d)) {
			continue
		}
		p, err := mcfg.Preset(d)
		if err != nil {
			continue
		}
		marker := ""
		if d == mcfg.Default {
			marker = "  (default)"
		}
		n := 0
		if st, ok := played[string(d)]; ok {
			n = st.Played
		}
		fmt.Printf("  %-*s  %-14s %-18s %-6d%s\n", maxIDLen, d, p.Title, p, n, marker)
	}

	fmt.Println()
	fmt.Println("Run 'mines play <id>' to play a board.")
}
