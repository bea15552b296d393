package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// ProposeBudgetParams contains parameters for proposing a budget change
type ProposeBudgetParams struct {
	DepartmentRef  string
	ProposedBudget *big.Int
}

// ProposeBudgetResult is the result of proposing a budget change
type ProposeBudgetResult struct {
	Department *models.Department
	Receipt    *models.Receipt
}

// ProposeBudget is the use case for opening a budget-change proposal
type ProposeBudget struct {
	config   *config.RuntimeConfig
	resolver DepartmentResolver
	writer   LedgerWriter
	journal  ReceiptJournal
	clock    Clock
	sink     ProgressSink
}

// NewProposeBudget creates a new ProposeBudget use case
func NewProposeBudget(cfg *config.RuntimeConfig, resolver DepartmentResolver, writer LedgerWriter, journal ReceiptJournal, clock Clock, sink ProgressSink) *ProposeBudget {
	return &ProposeBudget{
		config:   cfg,
		resolver: resolver,
		writer:   writer,
		journal:  journal,
		clock:    clock,
		sink:     sink,
	}
}

// Run executes the propose budget use case
func (uc *ProposeBudget) Run(ctx context.Context, params ProposeBudgetParams) (*ProposeBudgetResult, error) {
	if params.ProposedBudget == nil || params.ProposedBudget.Sign() <= 0 {
		return nil, &domain.InvalidAmountError{
			Amount: amountString(params.ProposedBudget),
			Reason: "proposed budget must be greater than 0",
		}
	}

	dept, err := uc.resolver.ResolveDepartment(ctx, params.DepartmentRef)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "submitting",
		Message: fmt.Sprintf("Proposing new budget for %s", dept.Name),
		Spinner: true,
	})

	receipt, err := uc.writer.ProposeBudget(ctx, dept.Address, params.ProposedBudget)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Proposal created"})

	recordReceipt(ctx, uc.journal, uc.clock, uc.sink, "propose_budget", dept.Name, receipt)

	return &ProposeBudgetResult{Department: dept, Receipt: receipt}, nil
}
