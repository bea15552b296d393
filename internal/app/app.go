package app

import (
	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Resolver usecase.DepartmentResolver

	// Use cases
	ListDepartments      *usecase.ListDepartments
	ShowDepartment       *usecase.ShowDepartment
	RegisterDepartment   *usecase.RegisterDepartment
	AddSuperAdmin        *usecase.AddSuperAdmin
	ListProposals        *usecase.ListProposals
	ShowProposal         *usecase.ShowProposal
	ProposeBudget        *usecase.ProposeBudget
	CastVote             *usecase.CastVote
	ExecuteProposal      *usecase.ExecuteProposal
	ListTransactions     *usecase.ListTransactions
	CreateTransaction    *usecase.CreateTransaction
	ProcessTransaction   *usecase.ProcessTransaction
	ValidateBudgetUpdate *usecase.ValidateBudgetUpdate
	ApplyBudgetUpdate    *usecase.ApplyBudgetUpdate
	ValueDepartments     *usecase.ValueDepartments

	// Rates are exposed for commands that print the raw snapshot
	Rates usecase.RateResolver
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	resolver usecase.DepartmentResolver,
	listDepartments *usecase.ListDepartments,
	showDepartment *usecase.ShowDepartment,
	registerDepartment *usecase.RegisterDepartment,
	addSuperAdmin *usecase.AddSuperAdmin,
	listProposals *usecase.ListProposals,
	showProposal *usecase.ShowProposal,
	proposeBudget *usecase.ProposeBudget,
	castVote *usecase.CastVote,
	executeProposal *usecase.ExecuteProposal,
	listTransactions *usecase.ListTransactions,
	createTransaction *usecase.CreateTransaction,
	processTransaction *usecase.ProcessTransaction,
	validateBudgetUpdate *usecase.ValidateBudgetUpdate,
	applyBudgetUpdate *usecase.ApplyBudgetUpdate,
	valueDepartments *usecase.ValueDepartments,
	rates usecase.RateResolver,
) (*App, error) {
	return &App{
		Config:               cfg,
		Resolver:             resolver,
		ListDepartments:      listDepartments,
		ShowDepartment:       showDepartment,
		RegisterDepartment:   registerDepartment,
		AddSuperAdmin:        addSuperAdmin,
		ListProposals:        listProposals,
		ShowProposal:         showProposal,
		ProposeBudget:        proposeBudget,
		CastVote:             castVote,
		ExecuteProposal:      executeProposal,
		ListTransactions:     listTransactions,
		CreateTransaction:    createTransaction,
		ProcessTransaction:   processTransaction,
		ValidateBudgetUpdate: validateBudgetUpdate,
		ApplyBudgetUpdate:    applyBudgetUpdate,
		ValueDepartments:     valueDepartments,
		Rates:                rates,
	}, nil
}
