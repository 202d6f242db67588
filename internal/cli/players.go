package cli

import (
	"github.com/spf13/cobra"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Active-player snapshot commands",
	}

	cmd.AddCommand(newPlayersListCmd())
	cmd.AddCommand(newPlayersGetCmd())

	return cmd
}

func newPlayersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List currently active players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var players []ActivePlayer
			if err := client.Get("/active-players", &players); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(players)
			return nil
		},
	}
}

func newPlayersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one active player's snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var player ActivePlayer
			if err := client.Get("/active-players/"+args[0], &player); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if player.ID == "" {
				// Soft not-found: the API returns success with null data
				out.PrintMessage("Player is not active")
				return nil
			}
			out.Print(player)
			return nil
		},
	}
}
