package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// ApplyBudgetUpdateParams contains parameters for applying a budget update
type ApplyBudgetUpdateParams struct {
	// Check must be a passing verdict from ValidateBudgetUpdate.
	Check *BudgetCheck
}

// ApplyBudgetUpdateResult is the result of applying a budget update
type ApplyBudgetUpdateResult struct {
	UpdateReceipt *models.Receipt
	AuditReceipt  *models.Receipt
}

// ApplyBudgetUpdate is the second half of the budget-update pipeline: the
// budget mutation followed by a companion audit transaction recording the
// change. The two submissions are not atomic. When the mutation confirms
// but the audit record fails, the result is a PartialApplyError carrying
// the successful receipt so the caller can reconcile instead of retrying a
// mutation that already took effect.
type ApplyBudgetUpdate struct {
	config  *config.RuntimeConfig
	writer  LedgerWriter
	journal ReceiptJournal
	clock   Clock
	sink    ProgressSink
}

// NewApplyBudgetUpdate creates a new ApplyBudgetUpdate use case
func NewApplyBudgetUpdate(cfg *config.RuntimeConfig, writer LedgerWriter, journal ReceiptJournal, clock Clock, sink ProgressSink) *ApplyBudgetUpdate {
	return &ApplyBudgetUpdate{
		config:  cfg,
		writer:  writer,
		journal: journal,
		clock:   clock,
		sink:    sink,
	}
}

// Run executes the apply budget update use case
func (uc *ApplyBudgetUpdate) Run(ctx context.Context, params ApplyBudgetUpdateParams) (*ApplyBudgetUpdateResult, error) {
	check := params.Check
	if check == nil || !check.IsValid {
		reason := "no validation verdict"
		var amount *big.Int
		if check != nil {
			reason = check.Reason
			amount = check.NewAmount
		}
		return nil, &domain.InvalidAmountError{
			Amount: amountString(amount),
			Reason: reason,
		}
	}

	dept := check.Department

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "submitting",
		Message: fmt.Sprintf("Updating budget for %s", dept.Name),
		Spinner: true,
	})

	updateReceipt, err := uc.writer.UpdateBudget(ctx, dept.Address, check.NewAmount)
	if err != nil {
		return nil, err
	}

	recordReceipt(ctx, uc.journal, uc.clock, uc.sink, "update_budget", dept.Name, updateReceipt)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "audit",
		Message: "Recording audit transaction",
		Spinner: true,
	})

	auditReceipt, err := uc.writer.CreateTransaction(ctx, dept.Address,
		models.TransactionTypeBudgetUpdate, check.NewAmount,
		fmt.Sprintf("Budget updated to %s", check.NewAmount))
	if err != nil {
		// The budget change is already final on the ledger.
		return nil, &domain.PartialApplyError{Receipt: updateReceipt, Err: err}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Budget updated"})

	recordReceipt(ctx, uc.journal, uc.clock, uc.sink, "budget_update_audit", dept.Name, auditReceipt)

	return &ApplyBudgetUpdateResult{
		UpdateReceipt: updateReceipt,
		AuditReceipt:  auditReceipt,
	}, nil
}
