//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/deptgov-org/deptgov-cli/internal/adapters"
	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/logging"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(cfg *config.RuntimeConfig, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewListDepartments,
		usecase.NewShowDepartment,
		usecase.NewRegisterDepartment,
		usecase.NewAddSuperAdmin,
		usecase.NewListProposals,
		usecase.NewShowProposal,
		usecase.NewProposeBudget,
		usecase.NewCastVote,
		usecase.NewExecuteProposal,
		usecase.NewListTransactions,
		usecase.NewCreateTransaction,
		usecase.NewProcessTransaction,
		usecase.NewValidateBudgetUpdate,
		usecase.NewApplyBudgetUpdate,
		usecase.NewValueDepartments,

		// App
		NewApp,
	)
	return nil, nil
}
