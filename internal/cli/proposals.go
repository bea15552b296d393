package cli

import (
	"github.com/spf13/cobra"

	"github.com/deptgov-org/deptgov-cli/internal/cli/render"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// NewProposalsCmd creates the proposals command group
func NewProposalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "proposals",
		Aliases: []string{"proposal", "prop"},
		Short:   "Inspect and open budget-change proposals",
	}

	cmd.AddCommand(newProposalsListCmd())
	cmd.AddCommand(newProposalsShowCmd())
	cmd.AddCommand(newProposalsProposeCmd())

	return cmd
}

func newProposalsListCmd() *cobra.Command {
	var executableOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List active proposals",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListProposals.Run(cmd.Context(), usecase.ListProposalsParams{
				ExecutableOnly: executableOnly,
			})
			if err != nil {
				return err
			}

			renderer := render.NewProposalsRenderer(cmd.OutOrStdout(), app.Config.Network.NativeSymbol, app.Config.JSON)
			return renderer.RenderList(result)
		},
	}

	cmd.Flags().BoolVar(&executableOnly, "executable", false, "Only show proposals ready to execute")

	return cmd
}

func newProposalsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one proposal with its live tally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			id, err := parseID(args[0], "proposal")
			if err != nil {
				return err
			}

			result, err := app.ShowProposal.Run(cmd.Context(), usecase.ShowProposalParams{ProposalID: id})
			if err != nil {
				return err
			}

			renderer := render.NewProposalsRenderer(cmd.OutOrStdout(), app.Config.Network.NativeSymbol, app.Config.JSON)
			return renderer.RenderDetail(result)
		},
	}
}

func newProposalsProposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "propose <department> <amount>",
		Short: "Open a budget-change proposal for a department",
		Example: `  # Propose a 500 token budget for Education
  deptgov proposals propose Education 500`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			result, err := app.ProposeBudget.Run(cmd.Context(), usecase.ProposeBudgetParams{
				DepartmentRef:  args[0],
				ProposedBudget: amount,
			})
			if err != nil {
				return err
			}

			renderer := render.NewReceiptRenderer(cmd.OutOrStdout(), app.Config.Network, app.Config.JSON)
			return renderer.Render("Proposal created for "+result.Department.Name, result.Receipt)
		},
	}
}
