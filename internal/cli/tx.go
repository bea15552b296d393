package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deptgov-org/deptgov-cli/internal/cli/render"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// NewTxCmd creates the tx command group
func NewTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "Inspect and manage department transactions",
	}

	cmd.AddCommand(newTxListCmd())
	cmd.AddCommand(newTxCreateCmd())
	cmd.AddCommand(newTxProcessCmd())

	return cmd
}

func newTxListCmd() *cobra.Command {
	var (
		department  string
		pendingOnly bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List department transactions",
		Example: `  # All transactions for a department
  deptgov tx list --department Education

  # Only pending ones
  deptgov tx list --department Education --pending`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListTransactions.Run(cmd.Context(), usecase.ListTransactionsParams{
				DepartmentRef: department,
				PendingOnly:   pendingOnly,
			})
			if err != nil {
				return err
			}

			renderer := render.NewTransactionsRenderer(cmd.OutOrStdout(), app.Config.Network.NativeSymbol, app.Config.JSON)
			return renderer.RenderList(result)
		},
	}

	cmd.Flags().StringVarP(&department, "department", "d", "", "Department name or address")
	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "Only show pending transactions")

	return cmd
}

func newTxCreateCmd() *cobra.Command {
	var (
		txType      string
		amount      string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create <department>",
		Short: "Record a new department transaction",
		Example: `  # Record an expense
  deptgov tx create Education --type EXPENSE --amount 1.5 --description "textbooks"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			parsedType, err := models.ParseTransactionType(txType)
			if err != nil {
				return err
			}

			parsedAmount, err := parseAmount(amount)
			if err != nil {
				return err
			}

			result, err := app.CreateTransaction.Run(cmd.Context(), usecase.CreateTransactionParams{
				DepartmentRef: args[0],
				Type:          parsedType,
				Amount:        parsedAmount,
				Description:   description,
			})
			if err != nil {
				return err
			}

			renderer := render.NewReceiptRenderer(cmd.OutOrStdout(), app.Config.Network, app.Config.JSON)
			return renderer.Render(
				fmt.Sprintf("%s transaction recorded for %s", parsedType, result.Department.Name),
				result.Receipt)
		},
	}

	cmd.Flags().StringVar(&txType, "type", "EXPENSE", "Transaction type (BUDGET_ALLOCATION, PROJECT_FUNDING, BUDGET_UPDATE, EXPENSE)")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount in native tokens (required)")
	cmd.Flags().StringVar(&description, "description", "", "Description (required)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newTxProcessCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "process <id>",
		Short: "Mark a pending transaction processed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			id, err := parseID(args[0], "transaction")
			if err != nil {
				return err
			}

			result, err := app.ProcessTransaction.Run(cmd.Context(), usecase.ProcessTransactionParams{
				TransactionID: id,
				Note:          note,
			})
			if err != nil {
				return err
			}

			renderer := render.NewReceiptRenderer(cmd.OutOrStdout(), app.Config.Network, app.Config.JSON)
			return renderer.Render(fmt.Sprintf("Transaction %d processed", id), result.Receipt)
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Processing note recorded on the ledger")

	return cmd
}
