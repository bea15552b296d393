package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deptgov-org/deptgov-cli/internal/cli/render"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// NewVoteCmd creates the vote command
func NewVoteCmd() *cobra.Command {
	var (
		voteFor     bool
		voteAgainst bool
	)

	cmd := &cobra.Command{
		Use:   "vote <id>",
		Short: "Vote on an active proposal",
		Example: `  # Vote in favor of proposal 7
  deptgov vote 7 --for

  # Vote against it
  deptgov vote 7 --against`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if voteFor == voteAgainst {
				return fmt.Errorf("specify exactly one of --for or --against")
			}

			id, err := parseID(args[0], "proposal")
			if err != nil {
				return err
			}

			result, err := app.CastVote.Run(cmd.Context(), usecase.CastVoteParams{
				ProposalID: id,
				Support:    voteFor,
			})
			if err != nil {
				return err
			}

			direction := "against"
			if result.Vote.Support {
				direction = "for"
			}

			renderer := render.NewReceiptRenderer(cmd.OutOrStdout(), app.Config.Network, app.Config.JSON)
			return renderer.Render(fmt.Sprintf("Vote %s proposal %d confirmed", direction, id), result.Receipt)
		},
	}

	cmd.Flags().BoolVar(&voteFor, "for", false, "Vote in favor")
	cmd.Flags().BoolVar(&voteAgainst, "against", false, "Vote against")

	return cmd
}
