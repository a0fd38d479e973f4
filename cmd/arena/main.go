// arena is a terminal survival arena: fend off waves of enemies, collect
// experience and pick abilities at each milestone.
//
// Usage:
//
//	arena play               - Start a run
//	arena menu               - Start the main menu
//	arena serve              - Start SSH server for remote play
//	arena scores             - Show the best runs
//	arena abilities          - List the ability catalog
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.arena/arena.db)
//	--config <path>      - Custom arena config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log destination (default: ~/.arena/arena.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "TUI Arena - survive the horde in your terminal",
	Long: `TUI Arena is a terminal survival game. Enemies pursue you across a
large arena; defeated enemies drop experience gems, and every experience
milestone lets you pick a new ability or level up one you own.

Available commands:
  play       - Start a run directly
  menu       - Main menu with runs and scores
  serve      - Start SSH server for remote play
  scores     - View the best runs
  abilities  - List every ability and its levels

Examples:
  arena play
  arena play --difficulty hard
  arena menu
  arena serve --ssh :2222 --admin alice
  arena scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arena/arena.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arena/arena.log", "Log file (the TUI owns the terminal)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(abilitiesCmd)
}
