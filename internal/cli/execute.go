package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deptgov-org/deptgov-cli/internal/cli/render"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// NewExecuteCmd creates the execute command
func NewExecuteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "execute <id>",
		Short: "Execute a passed proposal",
		Long: `Execute a proposal whose voting period has ended with a FOR majority.
The new budget takes effect on the ledger as part of execution.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			id, err := parseID(args[0], "proposal")
			if err != nil {
				return err
			}

			result, err := app.ExecuteProposal.Run(cmd.Context(), usecase.ExecuteProposalParams{ProposalID: id})
			if err != nil {
				return err
			}

			renderer := render.NewReceiptRenderer(cmd.OutOrStdout(), app.Config.Network, app.Config.JSON)
			return renderer.Render(fmt.Sprintf("Proposal %d executed", id), result.Receipt)
		},
	}
}
