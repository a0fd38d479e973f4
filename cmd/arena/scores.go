package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresLimit  int
	flagScoresClear  bool
	flagScoresCoins  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs ordered by kills, then experience.

Examples:
  arena scores
  arena scores --player alice
  arena scores --player "" --limit 20   # everyone
  arena scores --player alice --clear
  arena scores --player alice --set-coins 5`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", storage.DefaultPlayer, "Player whose runs to list (empty for everyone)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the player's runs")
	scoresCmd.Flags().IntVar(&flagScoresCoins, "set-coins", -1, "Overwrite the player's wallet balance")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear || flagScoresCoins >= 0 {
		if flagScoresPlayer == "" {
			return errors.New("--clear and --set-coins need a --player")
		}
		if flagScoresClear {
			if err := store.ClearRuns(flagScoresPlayer); err != nil {
				return err
			}
			fmt.Printf("Cleared runs of %s\n", flagScoresPlayer)
		}
		if flagScoresCoins >= 0 {
			if err := store.SetBalance(flagScoresPlayer, flagScoresCoins); err != nil {
				return err
			}
			fmt.Printf("Wallet of %s set to %d coins\n", flagScoresPlayer, flagScoresCoins)
		}
		fmt.Println()
	}

	runs, err := store.TopRuns(flagScoresPlayer, flagScoresLimit)
	if err != nil {
		return err
	}

	who := flagScoresPlayer
	if who == "" {
		who = "everyone"
	}
	fmt.Printf("Best runs - %s\n", who)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'arena play' to set the first record!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %s\n", "Rank", "Player", "Kills", "XP", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %s\n", "----", "------", "-----", "--", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-6d  %-6d  %s\n",
			i+1, r.Player, r.Kills, r.Experience, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if flagScoresPlayer == "" {
		return nil
	}

	fmt.Println()
	if stats, err := store.GetStats(flagScoresPlayer); err == nil {
		fmt.Printf("Runs: %d  Best: %d kills, %d XP  Avg XP: %.0f\n",
			stats.Runs, stats.BestKills, stats.BestXP, stats.AvgXP)
	}
	if balance, err := store.Balance(flagScoresPlayer); err == nil {
		fmt.Printf("Coins: %d\n", balance)
	}
	return nil
}
