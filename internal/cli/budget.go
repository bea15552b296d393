package cli

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/deptgov-org/deptgov-cli/internal/cli/render"
	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// NewBudgetCmd creates the budget command group
func NewBudgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Validate and apply direct budget updates",
		Long: `Direct budget updates bypass the proposal process and are restricted
to authorized admins by the ledger. The update always runs as a two-step
pipeline: validate against fresh on-chain figures, then apply.`,
	}

	cmd.AddCommand(newBudgetValidateCmd())
	cmd.AddCommand(newBudgetUpdateCmd())

	return cmd
}

func newBudgetValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <department> <amount>",
		Short: "Check a budget update without submitting anything",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			check, err := runValidation(cmd, app.ValidateBudgetUpdate, args[0], args[1])
			if err != nil {
				return err
			}

			if check.IsValid {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Budget update for %s is valid (%s → %s wei, %+d)\n",
					check.Department.Name, check.CurrentBudget, check.NewAmount, check.Delta)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✗ Invalid: %s\n", check.Reason)
			return nil
		},
	}
}

func newBudgetUpdateCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "update <department> <amount>",
		Short: "Validate and apply a budget update",
		Example: `  # Set the Education budget to 500 tokens
  deptgov budget update Education 500`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			check, err := runValidation(cmd, app.ValidateBudgetUpdate, args[0], args[1])
			if err != nil {
				return err
			}
			if !check.IsValid {
				return fmt.Errorf("budget update rejected: %s", check.Reason)
			}

			if !yes && !app.Config.NonInteractive {
				if err := confirmUpdate(check); err != nil {
					return err
				}
			}

			result, err := app.ApplyBudgetUpdate.Run(cmd.Context(), usecase.ApplyBudgetUpdateParams{Check: check})
			if err != nil {
				var partial *domain.PartialApplyError
				if errors.As(err, &partial) {
					// The budget change itself is final; tell the operator
					// exactly what committed before failing.
					renderer := render.NewReceiptRenderer(cmd.OutOrStdout(), app.Config.Network, app.Config.JSON)
					_ = renderer.Render("Budget updated (audit record FAILED)", partial.Receipt)
				}
				return err
			}

			renderer := render.NewReceiptRenderer(cmd.OutOrStdout(), app.Config.Network, app.Config.JSON)
			if err := renderer.Render("Budget updated for "+check.Department.Name, result.UpdateReceipt); err != nil {
				return err
			}
			return renderer.Render("Audit transaction recorded", result.AuditReceipt)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runValidation(cmd *cobra.Command, uc *usecase.ValidateBudgetUpdate, ref, amountArg string) (*usecase.BudgetCheck, error) {
	amount, err := parseAmount(amountArg)
	if err != nil {
		return nil, err
	}

	return uc.Run(cmd.Context(), usecase.ValidateBudgetUpdateParams{
		DepartmentRef: ref,
		NewAmount:     amount,
	})
}

// confirmUpdate asks the operator to confirm before money moves.
func confirmUpdate(check *usecase.BudgetCheck) error {
	prompt := promptui.Prompt{
		Label: fmt.Sprintf("Set %s budget from %s to %s wei (%+d)",
			check.Department.Name, check.CurrentBudget, check.NewAmount, check.Delta),
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		return fmt.Errorf("budget update cancelled")
	}
	return nil
}
