package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leaderboard",
		Aliases: []string{"lb"},
		Short:   "Leaderboard commands",
	}

	cmd.AddCommand(newLeaderboardListCmd())
	cmd.AddCommand(newLeaderboardSubmitCmd())

	return cmd
}

func newLeaderboardListCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the ranked leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/leaderboard"
			if mode != "" {
				path += "?mode=" + url.QueryEscape(mode)
			}

			var entries []LeaderboardEntry
			if err := client.Get(path, &entries); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Filter by game mode: walls, pass-through")

	return cmd
}

func newLeaderboardSubmitCmd() *cobra.Command {
	var score int
	var mode string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a score (requires login)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"score": score,
				"mode":  mode,
			}

			var entry LeaderboardEntry
			if err := client.Post("/leaderboard", req, &entry); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(entry)
			return nil
		},
	}

	cmd.Flags().IntVar(&score, "score", 0, "Score to submit (required)")
	cmd.Flags().StringVar(&mode, "mode", "", "Game mode: walls, pass-through (required)")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("mode")

	return cmd
}
