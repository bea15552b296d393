package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deptgov-org/deptgov-cli/internal/adapters/progress"
	"github.com/deptgov-org/deptgov-cli/internal/app"
	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root deptgov command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deptgov",
		Short: "Department budget governance on an EVM ledger",
		Long: `deptgov inspects and governs per-department budgets recorded on an
EVM ledger: department registry, budget-change proposals and voting,
transaction workflow, and fiat valuation of on-chain budgets.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				// A project file is optional; built-in networks still work.
				projectRoot = "."
			}

			v := config.SetupViper(projectRoot, cmd)
			bindGlobalFlags(v, cmd)

			cfg, err := config.Provider(v)
			if err != nil {
				return err
			}

			sink := newSink(cfg)

			appInstance, err := app.InitApp(cfg, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output machine-readable JSON")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., flow-testnet, anvil)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "read",
		Title: "Inspection Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "governance",
		Title: "Governance Commands",
	})

	departmentsCmd := NewDepartmentsCmd()
	departmentsCmd.GroupID = "read"
	rootCmd.AddCommand(departmentsCmd)

	proposalsCmd := NewProposalsCmd()
	proposalsCmd.GroupID = "governance"
	rootCmd.AddCommand(proposalsCmd)

	voteCmd := NewVoteCmd()
	voteCmd.GroupID = "governance"
	rootCmd.AddCommand(voteCmd)

	executeCmd := NewExecuteCmd()
	executeCmd.GroupID = "governance"
	rootCmd.AddCommand(executeCmd)

	txCmd := NewTxCmd()
	txCmd.GroupID = "governance"
	rootCmd.AddCommand(txCmd)

	budgetCmd := NewBudgetCmd()
	budgetCmd.GroupID = "governance"
	rootCmd.AddCommand(budgetCmd)

	valueCmd := NewValueCmd()
	valueCmd.GroupID = "read"
	rootCmd.AddCommand(valueCmd)

	adminCmd := NewAdminCmd()
	adminCmd.GroupID = "governance"
	rootCmd.AddCommand(adminCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "read"
	rootCmd.AddCommand(networksCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// newSink picks the progress sink for the resolved output mode.
func newSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.JSON {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerSink()
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that exist and have been changed
	if f := cmd.Flag("debug"); f != nil && f.Changed {
		v.Set("debug", f.Value.String())
	}
	if f := cmd.Flag("non-interactive"); f != nil && f.Changed {
		v.Set("non_interactive", f.Value.String())
	}
	if f := cmd.Flag("json"); f != nil && f.Changed {
		v.Set("json", f.Value.String())
	}
	if f := cmd.Flag("network"); f != nil && f.Changed {
		v.Set("network", f.Value.String())
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}
