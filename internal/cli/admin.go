package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/deptgov-org/deptgov-cli/internal/cli/render"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// NewAdminCmd creates the admin command group
func NewAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage registry super admins",
		Long: `Super admins may register departments and apply direct budget updates.
Granting admin rights is itself restricted to existing super admins by
the registry.`,
	}

	cmd.AddCommand(newAdminGrantCmd())

	return cmd
}

func newAdminGrantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grant <address>",
		Short: "Grant super admin rights to an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if !common.IsHexAddress(args[0]) {
				return fmt.Errorf("invalid address: %s", args[0])
			}

			result, err := app.AddSuperAdmin.Run(cmd.Context(), usecase.AddSuperAdminParams{
				Account: common.HexToAddress(args[0]),
			})
			if err != nil {
				return err
			}

			renderer := render.NewReceiptRenderer(cmd.OutOrStdout(), app.Config.Network, app.Config.JSON)
			return renderer.Render("Admin rights granted to "+result.Account.Hex(), result.Receipt)
		},
	}
}
