package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/games/survival"
)

var abilitiesCmd = &cobra.Command{
	Use:   "abilities",
	Short: "List the ability catalog",
	Long:  `Shows every ability with its tier, per-level values and cooldown.`,
	Args:  cobra.NoArgs,
	Run:   runAbilities,
}

func runAbilities(_ *cobra.Command, _ []string) {
	abilities := survival.AllAbilities()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, a := range abilities {
		maxIDLen = max(maxIDLen, len(a.String()))
	}

	fmt.Printf("  %-*s  %-8s  %-6s  %s\n", maxIDLen, "ID", "Tier", "Levels", "Description")
	fmt.Printf("  %-*s  %-8s  %-6s  %s\n", maxIDLen, "--", "----", "------", "-----------")

	for _, a := range abilities {
		info := a.Info()
		fmt.Printf("  %-*s  %-8s  %-6d  %s\n", maxIDLen, a, info.Tier, info.MaxLevel(), info.Description)

		values := make([]string, len(info.Levels))
		for i, v := range info.Levels {
			values[i] = fmt.Sprintf("%g", v)
		}
		detail := "values " + strings.Join(values, " / ")
		if info.Cooldown > 0 {
			detail += fmt.Sprintf(", every %gs", info.Cooldown/1000)
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, "", detail)
	}

	fmt.Println()
	fmt.Println("Premium abilities cost coins; admin abilities need --admin on the server.")
}
