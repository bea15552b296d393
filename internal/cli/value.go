package cli

import (
	"github.com/spf13/cobra"

	"github.com/deptgov-org/deptgov-cli/internal/cli/render"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// NewValueCmd creates the value command
func NewValueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "value [department]",
		Short: "Express department budgets in USD",
		Long: `Value department budgets at the current exchange rate. With no
argument the whole fleet is valued; ledger figures are always re-read,
only the rate itself may come from the short-lived cache.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ValueDepartmentsParams{}
			if len(args) == 1 {
				params.Ref = args[0]
			}

			result, err := app.ValueDepartments.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewValuationsRenderer(cmd.OutOrStdout(), app.Config.Network.NativeSymbol, app.Config.JSON)
			return renderer.RenderList(result)
		},
	}
}
