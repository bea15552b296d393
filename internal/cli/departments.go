package cli

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/deptgov-org/deptgov-cli/internal/cli/render"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// NewDepartmentsCmd creates the departments command group
func NewDepartmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"dept", "depts"},
		Short:   "Inspect and manage registered departments",
	}

	cmd.AddCommand(newDepartmentsListCmd())
	cmd.AddCommand(newDepartmentsShowCmd())
	cmd.AddCommand(newDepartmentsRegisterCmd())

	return cmd
}

func newDepartmentsListCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered departments",
		Example: `  # List all departments
  deptgov departments list

  # Only active departments
  deptgov departments list --active`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListDepartments.Run(cmd.Context(), usecase.ListDepartmentsParams{
				ActiveOnly: activeOnly,
			})
			if err != nil {
				return err
			}

			renderer := render.NewDepartmentsRenderer(cmd.OutOrStdout(), app.Config.Network.NativeSymbol, app.Config.JSON)
			return renderer.RenderList(result)
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only show active departments")

	return cmd
}

func newDepartmentsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <department>",
		Short: "Show one department by name or address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowDepartment.Run(cmd.Context(), usecase.ShowDepartmentParams{Ref: args[0]})
			if err != nil {
				return err
			}

			renderer := render.NewDepartmentsRenderer(cmd.OutOrStdout(), app.Config.Network.NativeSymbol, app.Config.JSON)
			return renderer.RenderDetail(result)
		},
	}
}

func newDepartmentsRegisterCmd() *cobra.Command {
	var (
		name    string
		budget  string
		head    string
		logoURI string
	)

	cmd := &cobra.Command{
		Use:   "register <address>",
		Short: "Register a new department (super-admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			initialBudget, err := parseAmount(budget)
			if err != nil {
				return err
			}

			params := usecase.RegisterDepartmentParams{
				Address:       common.HexToAddress(args[0]),
				Name:          name,
				InitialBudget: initialBudget,
				LogoURI:       logoURI,
			}
			if head != "" {
				params.Head = common.HexToAddress(head)
			}

			result, err := app.RegisterDepartment.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewReceiptRenderer(cmd.OutOrStdout(), app.Config.Network, app.Config.JSON)
			return renderer.Render("Department registered", result.Receipt)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Department name (required)")
	cmd.Flags().StringVar(&budget, "budget", "0", "Initial budget in native tokens")
	cmd.Flags().StringVar(&head, "head", "", "Department head address (defaults to the department address)")
	cmd.Flags().StringVar(&logoURI, "logo", "", "Logo URI")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
